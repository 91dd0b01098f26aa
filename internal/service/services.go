// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"path"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

// Services groups the storefront use cases.
type Services struct {
	Metadata     MetadataSynchronizer
	Catalog      CatalogService
	Editor       EditorService
	Auth         AuthService
	Interactions InteractionService
	Preferences  PreferenceService
}

// NewServices wires the use cases over one content store and one set of
// local repositories. All metadata writes go through a single synchronizer.
func NewServices(cfg *config.StructuredConfig, contentStore adapter.ContentStore, notifier adapter.EventNotifier, storages *store.ClientStorages, log *logger.Logger) *Services {
	metadataPath := path.Join(cfg.Repo.MediaFolder, cfg.Repo.MetadataFile)
	metadata := NewMetadataSynchronizer(contentStore, metadataPath, cfg.Workers.ConflictBackoff, log)

	return &Services{
		Metadata:     metadata,
		Catalog:      NewCatalogService(contentStore, metadata, cfg.Repo.MediaFolder, cfg.App.ContactPhone, log),
		Editor:       NewEditorService(contentStore, metadata, cfg.Repo.MediaFolder, cfg.Workers, log),
		Auth:         NewAuthService(contentStore, storages.Credentials, log),
		Interactions: NewInteractionService(storages.Installation, storages.Reactions, notifier, log),
		Preferences:  NewPreferenceService(storages.Preferences, cfg.App.Language),
	}
}
