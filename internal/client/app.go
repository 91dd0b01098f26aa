// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/crypto"
	"github.com/MKhiriev/go-storefront/internal/handler"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/server"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
)

var _ Client = (*App)(nil)

// App owns the wired services of one storefront process.
type App struct {
	cfg      *config.StructuredConfig
	services *service.Services
	storages *store.ClientStorages
	log      *logger.Logger
}

// NewApp opens the local state, connects the content store and restores a
// stored admin credential if there is one.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	sealer := crypto.NewTokenSealer(cfg.App.HashKey)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	contentStore, err := adapter.NewContentStore(cfg.Adapter, cfg.Repo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create content store: %w", err)
	}

	notifier := adapter.NewEventNotifier(cfg.Notify, log)
	services := service.NewServices(cfg, contentStore, notifier, storages, log)

	restored, err := services.Auth.Restore(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("stored credential could not be restored")
	} else if restored {
		log.Debug().Msg("stored credential restored")
	}

	return &App{
		cfg:      cfg,
		services: services,
		storages: storages,
		log:      log,
	}, nil
}

// Services exposes the wired services to the admin commands.
func (a *App) Services() *service.Services {
	return a.services
}

// Serve runs the storefront HTTP server.
func (a *App) Serve(ctx context.Context) error {
	handlers, err := handler.NewHandlers(a.services, a.cfg.Server, a.cfg.App.Version, a.log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return srv.RunServer(ctx)
}

// Close releases the local state database.
func (a *App) Close() error {
	return a.storages.Close()
}
