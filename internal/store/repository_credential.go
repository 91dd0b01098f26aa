// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

const sessionValidMarker = "true"

type credentialRepository struct {
	*keyValueStore
	sealer crypto.TokenSealer
}

// NewCredentialRepository returns a [CredentialRepository] that seals the
// token with sealer before it reaches the database.
func NewCredentialRepository(db *DB, sealer crypto.TokenSealer) CredentialRepository {
	return &credentialRepository{
		keyValueStore: newKeyValueStore(db),
		sealer:        sealer,
	}
}

func (r *credentialRepository) LoadCredential(ctx context.Context) (models.Credential, error) {
	stored, ok, err := getJSON[models.Credential](ctx, r.keyValueStore, keyCredential)
	if err != nil {
		return models.Credential{}, err
	}
	if !ok || stored.Token == "" {
		return models.Credential{}, ErrCredentialNotFound
	}

	marker, err := r.get(ctx, keySessionValid)
	if errors.Is(err, errKeyNotFound) || (err == nil && marker != sessionValidMarker) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		return models.Credential{}, err
	}

	token, err := r.sealer.Open(stored.Token)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "credentialRepository.LoadCredential").
			Msg("stored token cannot be opened")
		return models.Credential{}, fmt.Errorf("%w: %v", ErrCredentialNotFound, err)
	}

	stored.Token = token
	stored.SessionValid = true
	return stored, nil
}

func (r *credentialRepository) SaveCredential(ctx context.Context, cred models.Credential) error {
	sealed, err := r.sealer.Seal(cred.Token)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	cred.Token = sealed
	if cred.SavedAt.IsZero() {
		cred.SavedAt = r.now().UTC()
	}

	pair, err := encodeJSON(keyCredential, cred)
	if err != nil {
		return err
	}

	return r.set(ctx, pair, keyValue{key: keySessionValid, value: sessionValidMarker})
}

func (r *credentialRepository) ClearCredential(ctx context.Context) error {
	return r.delete(ctx, keyCredential, keySessionValid)
}
