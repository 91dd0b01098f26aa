// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of the storefront: the
// repository contents API that stores the media and the metadata document,
// and the webhook that receives visitor interaction events.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for a
// stale content hash, [ErrNotFound] for a missing path).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContentStore is the remote file store holding the media folder and the
// metadata document. Every write is guarded by the content hash of the
// version it replaces.
type ContentStore interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// List returns the media files of folder. Entries that are not files or
	// do not carry an allowed media extension are skipped. A missing folder
	// yields an empty list.
	List(ctx context.Context, folder string) ([]models.MediaFile, error)

	// FolderExists reports whether folder is present.
	FolderExists(ctx context.Context, folder string) (bool, error)

	// Read returns the base64 content and hash of the file at path.
	// A missing file yields ErrNotFound.
	Read(ctx context.Context, path string) (models.ContentFile, error)

	// Put creates (empty req.SHA) or replaces the file at path and returns
	// the new content hash. A stale req.SHA yields ErrConflict.
	Put(ctx context.Context, path string, req models.PutRequest) (string, error)

	// Delete removes the file at path. A stale req.SHA yields ErrConflict,
	// a missing file ErrNotFound.
	Delete(ctx context.Context, path string, req models.DeleteRequest) error

	// CurrentUser resolves the identity behind token without storing it.
	CurrentUser(ctx context.Context, token string) (models.Identity, error)

	// RepositoryAccess fetches the configured repository using token
	// without storing it.
	RepositoryAccess(ctx context.Context, token string) (models.Repository, error)
}

// EventNotifier forwards visitor interaction events.
type EventNotifier interface {
	Notify(ctx context.Context, event models.InteractionEvent) error
}
