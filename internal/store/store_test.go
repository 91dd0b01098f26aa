// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/stretchr/testify/require"
)

// newTestStorages opens a migrated database in a temp dir.
func newTestStorages(t *testing.T, sealer crypto.TokenSealer) *ClientStorages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "nested", "state.db")}}
	s, err := NewClientStorages(context.Background(), cfg, sealer, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// rawSet writes a value bypassing the repositories.
func rawSet(t *testing.T, s *ClientStorages, key, value string) {
	t.Helper()
	require.NoError(t, newKeyValueStore(s.db).set(context.Background(), keyValue{key: key, value: value}))
}
