// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	return &config.StructuredConfig{
		App: config.App{HashKey: "test-key", Version: "1.2.3", Language: "en"},
		Repo: config.Repo{
			Owner:        "acme",
			Name:         "shop",
			Branch:       "main",
			MediaFolder:  "media",
			MetadataFile: "products.json",
		},
		Adapter: config.Adapter{
			APIAddress:     "http://127.0.0.1:1",
			RawAddress:     "http://127.0.0.1:1/raw",
			RequestTimeout: time.Second,
		},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "state.db")}},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0"},
		Workers: config.Workers{OrderSaveDelay: 10 * time.Millisecond},
	}
}

func TestNewApp_WiresServices(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	services := app.Services()
	require.NotNil(t, services)
	assert.NotNil(t, services.Catalog)
	assert.NotNil(t, services.Editor)
	assert.False(t, services.Auth.IsAuthenticated())
}

func TestNewApp_RestoresStoredCredential(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, crypto.NewTokenSealer(cfg.App.HashKey), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, storages.Credentials.SaveCredential(ctx, models.Credential{
		Token:        "ghp_stored",
		Login:        "octo",
		SessionValid: true,
		SavedAt:      time.Now(),
	}))
	require.NoError(t, storages.Close())

	app, err := NewApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.True(t, app.Services().Auth.IsAuthenticated())
}

func TestNewApp_InvalidAPIAddress(t *testing.T) {
	cfg := testConfig(t)
	cfg.Adapter.APIAddress = "http://"

	_, err := NewApp(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestApp_ServeStopsWithContext(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, app.Serve(ctx))
}
