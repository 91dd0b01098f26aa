// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// keyValueStore is the key-value view over the local_state table that all
// repositories share.
type keyValueStore struct {
	db  *DB
	now func() time.Time
}

func newKeyValueStore(db *DB) *keyValueStore {
	return &keyValueStore{db: db, now: time.Now}
}

func (s *keyValueStore) get(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errKeyNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueStore.get").
			Str("key", key).
			Msg("failed to query local state")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

type keyValue struct {
	key   string
	value string
}

// set upserts all pairs in one transaction.
func (s *keyValueStore) set(ctx context.Context, pairs ...keyValue) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "keyValueStore.set").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	now := s.now()
	for _, p := range pairs {
		query, args, buildErr := buildUpsertValueQuery(p.key, p.value, now)
		if buildErr != nil {
			return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "keyValueStore.set").
				Str("key", p.key).
				Msg("failed to upsert local state")
			return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "keyValueStore.set").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *keyValueStore) delete(ctx context.Context, keys ...string) error {
	query, args, err := buildDeleteKeysQuery(keys...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueStore.delete").
			Strs("keys", keys).
			Msg("failed to delete local state")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// getJSON decodes the value under key. An absent key or a value that is not
// valid JSON for T both report ok == false.
func getJSON[T any](ctx context.Context, s *keyValueStore, key string) (T, bool, error) {
	var out T

	raw, err := s.get(ctx, key)
	if errors.Is(err, errKeyNotFound) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}

	if err = json.Unmarshal([]byte(raw), &out); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "getJSON").
			Str("key", key).
			Msg("ignoring malformed local state")
		var zero T
		return zero, false, nil
	}

	return out, true, nil
}

func encodeJSON(key string, v any) (keyValue, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return keyValue{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return keyValue{key: key, value: string(b)}, nil
}
