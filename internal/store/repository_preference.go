// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
)

type preferenceRepository struct {
	*keyValueStore
}

// NewPreferenceRepository returns a [PreferenceRepository] backed by db.
func NewPreferenceRepository(db *DB) PreferenceRepository {
	return &preferenceRepository{keyValueStore: newKeyValueStore(db)}
}

func (r *preferenceRepository) Language(ctx context.Context) (string, error) {
	code, err := r.get(ctx, keyLanguage)
	if errors.Is(err, errKeyNotFound) {
		return "", nil
	}
	return code, err
}

func (r *preferenceRepository) SetLanguage(ctx context.Context, code string) error {
	return r.set(ctx, keyValue{key: keyLanguage, value: code})
}
