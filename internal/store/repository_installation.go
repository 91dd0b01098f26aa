// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type installationRepository struct {
	*keyValueStore
	newID func() (uuid.UUID, error)
}

// NewInstallationRepository returns an [InstallationRepository] that creates
// UUIDv7 ids.
func NewInstallationRepository(db *DB) InstallationRepository {
	return &installationRepository{
		keyValueStore: newKeyValueStore(db),
		newID:         uuid.NewV7,
	}
}

func (r *installationRepository) InstallationID(ctx context.Context) (string, error) {
	id, err := r.get(ctx, keyInstallationID)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, errKeyNotFound) {
		return "", err
	}

	generated, err := r.newID()
	if err != nil {
		return "", fmt.Errorf("generate installation id: %w", err)
	}

	id = generated.String()
	if err = r.set(ctx, keyValue{key: keyInstallationID, value: id}); err != nil {
		return "", err
	}

	return id, nil
}
