// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/workers"
)

// ReorderSession holds a local order of catalog items. Every move that
// changes the order schedules a save; a burst of moves is saved once after
// the quiet window.
type ReorderSession struct {
	mu    sync.Mutex
	items []string
	saver workers.Debouncer[[]string]
}

func newReorderSession(ctx context.Context, items []string, delay time.Duration, save workers.SaveFunc[[]string], log *logger.Logger) *ReorderSession {
	onError := func(err error) {
		log.Err(err).Msg("saving order failed")
	}

	return &ReorderSession{
		items: slices.Clone(items),
		saver: workers.NewDebouncer(ctx, delay, save, onError),
	}
}

// Order returns the current local order.
func (s *ReorderSession) Order() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// MoveUp swaps name with its predecessor. The first item stays put.
func (s *ReorderSession) MoveUp(name string) error {
	return s.move(name, func(i int) bool {
		if i == 0 {
			return false
		}
		s.items[i-1], s.items[i] = s.items[i], s.items[i-1]
		return true
	})
}

// MoveDown swaps name with its successor. The last item stays put.
func (s *ReorderSession) MoveDown(name string) error {
	return s.move(name, func(i int) bool {
		if i == len(s.items)-1 {
			return false
		}
		s.items[i+1], s.items[i] = s.items[i], s.items[i+1]
		return true
	})
}

// MoveBefore places name directly before anchor. An empty anchor moves name
// to the end.
func (s *ReorderSession) MoveBefore(name, anchor string) error {
	if name == anchor {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from := slices.Index(s.items, name)
	if from < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	if anchor != "" && !slices.Contains(s.items, anchor) {
		return fmt.Errorf("%w: %q", ErrUnknownItem, anchor)
	}

	next := slices.Delete(slices.Clone(s.items), from, from+1)
	to := len(next)
	if anchor != "" {
		to = slices.Index(next, anchor)
	}
	next = slices.Insert(next, to, name)

	if slices.Equal(next, s.items) {
		return nil
	}
	s.items = next
	s.saver.Schedule(slices.Clone(next))
	return nil
}

func (s *ReorderSession) move(name string, swap func(i int) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.items, name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	if swap(i) {
		s.saver.Schedule(slices.Clone(s.items))
	}
	return nil
}

// Pending reports whether a move has not been saved yet.
func (s *ReorderSession) Pending() bool {
	return s.saver.Pending()
}

// Flush saves a pending order now.
func (s *ReorderSession) Flush(ctx context.Context) error {
	return s.saver.Flush(ctx)
}

// Close saves a pending order and stops the session.
func (s *ReorderSession) Close(ctx context.Context) error {
	err := s.saver.Flush(ctx)
	s.saver.Stop()
	return err
}
