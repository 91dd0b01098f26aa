// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInstallationRepository_CreatesOnceThenReuses(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer(""))
	ctx := context.Background()

	first, err := s.Installation.InstallationID(ctx)
	require.NoError(t, err)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	second, err := s.Installation.InstallationID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInstallationRepository_GeneratorError(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer(""))
	repo := &installationRepository{
		keyValueStore: newKeyValueStore(s.db),
		newID:         func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") },
	}

	_, err := repo.InstallationID(context.Background())
	assert.Error(t, err)
}

func TestReactionRepository_LikeUnlike(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer(""))
	ctx := context.Background()

	got, err := s.Reactions.Reactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Reactions.SetReaction(ctx, "a.jpg", models.ReactionLike))
	require.NoError(t, s.Reactions.SetReaction(ctx, "b.mp4", models.ReactionLike))
	require.NoError(t, s.Reactions.SetReaction(ctx, "a.jpg", models.ReactionUnlike))

	got, err = s.Reactions.Reactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Reaction{"b.mp4": models.ReactionLike}, got)
}

func TestReactionRepository_MalformedStoredValue(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer(""))
	rawSet(t, s, keyReactions, "[broken")

	got, err := s.Reactions.Reactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCredentialRepository_SaveLoadClear(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer("local-secret"))
	ctx := context.Background()

	_, err := s.Credentials.LoadCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	savedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.Credentials.SaveCredential(ctx, models.Credential{
		Token:   "ghp_secret",
		Login:   "owner",
		SavedAt: savedAt,
	}))

	raw, err := newKeyValueStore(s.db).get(ctx, keyCredential)
	require.NoError(t, err)
	assert.NotContains(t, raw, "ghp_secret")

	cred, err := s.Credentials.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", cred.Token)
	assert.Equal(t, "owner", cred.Login)
	assert.True(t, cred.SessionValid)
	assert.True(t, savedAt.Equal(cred.SavedAt))

	require.NoError(t, s.Credentials.ClearCredential(ctx))
	_, err = s.Credentials.LoadCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCredentialRepository_RequiresSessionMarker(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer(""))
	ctx := context.Background()

	require.NoError(t, s.Credentials.SaveCredential(ctx, models.Credential{Token: "t"}))
	require.NoError(t, newKeyValueStore(s.db).delete(ctx, keySessionValid))

	_, err := s.Credentials.LoadCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCredentialRepository_OtherSecretIsNotFound(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer("one"))
	ctx := context.Background()
	require.NoError(t, s.Credentials.SaveCredential(ctx, models.Credential{Token: "t"}))

	repo := NewCredentialRepository(s.db, crypto.NewTokenSealer("two"))
	_, err := repo.LoadCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCredentialRepository_SealFailureStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sealer := mock.NewMockTokenSealer(ctrl)
	sealer.EXPECT().Seal("t").Return("", errors.New("no key"))

	s := newTestStorages(t, sealer)
	ctx := context.Background()

	err := s.Credentials.SaveCredential(ctx, models.Credential{Token: "t"})
	require.Error(t, err)

	_, err = s.Credentials.LoadCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCredentialRepository_OpenFailureIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sealer := mock.NewMockTokenSealer(ctrl)
	sealer.EXPECT().Seal("t").Return("sealed", nil)
	sealer.EXPECT().Open("sealed").Return("", crypto.ErrSealedTokenCorrupt)

	s := newTestStorages(t, sealer)
	ctx := context.Background()
	require.NoError(t, s.Credentials.SaveCredential(ctx, models.Credential{Token: "t"}))

	_, err := s.Credentials.LoadCredential(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestPreferenceRepository_Language(t *testing.T) {
	s := newTestStorages(t, crypto.NewTokenSealer(""))
	ctx := context.Background()

	code, err := s.Preferences.Language(ctx)
	require.NoError(t, err)
	assert.Empty(t, code)

	require.NoError(t, s.Preferences.SetLanguage(ctx, "mr"))
	require.NoError(t, s.Preferences.SetLanguage(ctx, "en"))

	code, err = s.Preferences.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", code)
}
