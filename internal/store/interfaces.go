// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// InstallationRepository owns the anonymous id of this installation.
type InstallationRepository interface {
	// InstallationID returns the stored id, creating and persisting a new
	// one on first use.
	InstallationID(ctx context.Context) (string, error)
}

// ReactionRepository keeps the visitor's reactions per file name.
type ReactionRepository interface {
	Reactions(ctx context.Context) (map[string]models.Reaction, error)
	// SetReaction stores a like; an unlike removes the entry.
	SetReaction(ctx context.Context, filename string, reaction models.Reaction) error
}

// CredentialRepository keeps the admin access token between runs.
type CredentialRepository interface {
	// LoadCredential returns ErrCredentialNotFound unless both the token
	// and the session marker are present.
	LoadCredential(ctx context.Context) (models.Credential, error)
	SaveCredential(ctx context.Context, cred models.Credential) error
	ClearCredential(ctx context.Context) error
}

// PreferenceRepository keeps UI preferences.
type PreferenceRepository interface {
	// Language returns the stored language code or "" when none is stored.
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) error
}
