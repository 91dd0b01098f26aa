// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-storefront/models"
)

// MetadataSynchronizer is the only writer of the remote metadata document.
type MetadataSynchronizer interface {
	// Fetch returns the current document. An absent document is returned
	// empty.
	Fetch(ctx context.Context) (models.MetadataDocument, error)

	// Mutate applies fn to the latest document and writes it back guarded
	// by the content hash. On a hash conflict the document is fetched again
	// and fn reapplied until the write succeeds or ctx ends. Calls run one
	// at a time in arrival order.
	Mutate(ctx context.Context, fn models.MetadataMutation) error
}

// CatalogService projects the media listing and the metadata document into
// the ordered storefront catalog.
type CatalogService interface {
	ListDisplayItems(ctx context.Context) ([]models.DisplayItem, error)
	// Load returns the items together with the visibility flag.
	Load(ctx context.Context) (models.Catalog, error)
}

// EditorService is the admin editing surface.
type EditorService interface {
	Rename(ctx context.Context, filename, displayName string) error
	Delete(ctx context.Context, filename, sha string) error
	Reorder(ctx context.Context, order []string) error
	SetTrustedVisible(ctx context.Context, visible bool) error
	// ToggleTrusted flips the visibility flag and returns the new value.
	ToggleTrusted(ctx context.Context) (bool, error)
	Upload(ctx context.Context, files []models.UploadFile, control *UploadControl) (models.UploadReport, error)
	// NewReorderSession starts a local reorder over the given items whose
	// moves are saved after a quiet window.
	NewReorderSession(ctx context.Context, items []string) *ReorderSession
}

// AuthService manages the admin credential.
type AuthService interface {
	Login(ctx context.Context, token string) (models.Identity, error)
	Logout(ctx context.Context) error
	// Restore loads a stored credential into the content store. It reports
	// false when none is stored.
	Restore(ctx context.Context) (bool, error)
	IsAuthenticated() bool
}

// InteractionService records visitor reactions and views.
type InteractionService interface {
	ToggleReaction(ctx context.Context, filename string) (models.Reaction, error)
	Reactions(ctx context.Context) (map[string]models.Reaction, error)
	RecordView(ctx context.Context, filename string, duration time.Duration) (bool, error)
	// Forward relays an event received from a storefront page.
	Forward(ctx context.Context, event models.InteractionEvent) error
}

// PreferenceService manages the UI language.
type PreferenceService interface {
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) error
	ToggleLanguage(ctx context.Context) (string, error)
}
