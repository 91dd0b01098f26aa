// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/logger"
)

// ClientStorages groups the local repositories of one installation.
type ClientStorages struct {
	Installation InstallationRepository
	Reactions    ReactionRepository
	Credentials  CredentialRepository
	Preferences  PreferenceRepository

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN, applies
// pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.Storage, sealer crypto.TokenSealer, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Installation: NewInstallationRepository(db),
		Reactions:    NewReactionRepository(db),
		Credentials:  NewCredentialRepository(db, sealer),
		Preferences:  NewPreferenceRepository(db),
		db:           db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
