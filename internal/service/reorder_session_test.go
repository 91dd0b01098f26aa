// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSaver collects the orders a session saves.
type recordingSaver struct {
	mu    sync.Mutex
	saved [][]string
}

func (r *recordingSaver) save(_ context.Context, order []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, order)
	return nil
}

func (r *recordingSaver) calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.saved...)
}

func newRecordedSession(t *testing.T, delay time.Duration, items ...string) (*ReorderSession, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	s := newReorderSession(context.Background(), items, delay, saver.save, logger.Nop())
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s, saver
}

func TestReorderSession_Moves(t *testing.T) {
	s, _ := newRecordedSession(t, time.Hour, "a", "b", "c", "d")

	require.NoError(t, s.MoveUp("c"))
	assert.Equal(t, []string{"a", "c", "b", "d"}, s.Order())

	require.NoError(t, s.MoveDown("a"))
	assert.Equal(t, []string{"c", "a", "b", "d"}, s.Order())

	require.NoError(t, s.MoveBefore("d", "c"))
	assert.Equal(t, []string{"d", "c", "a", "b"}, s.Order())

	require.NoError(t, s.MoveBefore("d", ""))
	assert.Equal(t, []string{"c", "a", "b", "d"}, s.Order())
}

func TestReorderSession_EdgeMovesDoNotSchedule(t *testing.T) {
	s, saver := newRecordedSession(t, time.Hour, "a", "b")

	require.NoError(t, s.MoveUp("a"))
	require.NoError(t, s.MoveDown("b"))
	require.NoError(t, s.MoveBefore("a", "b"))
	require.NoError(t, s.MoveBefore("a", "a"))

	assert.False(t, s.Pending())
	require.NoError(t, s.Flush(context.Background()))
	assert.Empty(t, saver.calls())
}

func TestReorderSession_UnknownItem(t *testing.T) {
	s, _ := newRecordedSession(t, time.Hour, "a", "b")

	assert.ErrorIs(t, s.MoveUp("zzz"), ErrUnknownItem)
	assert.ErrorIs(t, s.MoveDown("zzz"), ErrUnknownItem)
	assert.ErrorIs(t, s.MoveBefore("zzz", "a"), ErrUnknownItem)
	assert.ErrorIs(t, s.MoveBefore("a", "zzz"), ErrUnknownItem)
}

func TestReorderSession_BurstSavesOnce(t *testing.T) {
	s, saver := newRecordedSession(t, 30*time.Millisecond, "a", "b", "c")

	require.NoError(t, s.MoveUp("c"))
	require.NoError(t, s.MoveUp("c"))
	require.NoError(t, s.MoveDown("a"))

	assert.Eventually(t, func() bool { return len(saver.calls()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	calls := saver.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"c", "b", "a"}, calls[0])
	assert.False(t, s.Pending())
}

func TestReorderSession_FlushSavesNow(t *testing.T) {
	s, saver := newRecordedSession(t, time.Hour, "a", "b")

	require.NoError(t, s.MoveDown("a"))
	assert.True(t, s.Pending())

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, [][]string{{"b", "a"}}, saver.calls())
}

func TestReorderSession_CloseKeepsPendingOrder(t *testing.T) {
	saver := &recordingSaver{}
	s := newReorderSession(context.Background(), []string{"a", "b"}, time.Hour, saver.save, logger.Nop())

	require.NoError(t, s.MoveUp("b"))
	require.NoError(t, s.Close(context.Background()))

	assert.Equal(t, [][]string{{"b", "a"}}, saver.calls())
}

func TestEditorService_ReorderSessionPersistsThroughMetadata(t *testing.T) {
	store := newMemoryStore()
	editor := newTestEditor(store)

	s := editor.NewReorderSession(context.Background(), []string{"a.jpg", "b.jpg"})
	require.NoError(t, s.MoveUp("b.jpg"))

	assert.Eventually(t, func() bool {
		return store.has(testMetadataPath)
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Close(context.Background()))

	assert.Equal(t, []string{"b.jpg", "a.jpg"}, store.document(t, testMetadataPath).Order)
}
