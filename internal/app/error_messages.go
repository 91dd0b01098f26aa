// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// storefront API and the admin commands.
//
// Keeping them in one place keeps the wording of HTTP error bodies and
// terminal notices consistent.
package app

const (
	// MsgCatalogUnavailable is returned instead of a partial catalog when
	// the media listing or the metadata document cannot be fetched.
	MsgCatalogUnavailable = "catalog is temporarily unavailable"

	// MsgInvalidEvent is returned when an interaction event body cannot be
	// decoded.
	MsgInvalidEvent = "invalid event body"

	// MsgNotAuthenticated tells the admin to log in first.
	MsgNotAuthenticated = "not logged in: run `storefront admin login` first"

	// MsgInvalidToken is shown when a token fails the identity or the
	// repository access check.
	MsgInvalidToken = "token rejected: it must belong to an account with write access to the repository"

	// MsgConflictRetry is shown when a file changed remotely between listing
	// and deleting it.
	MsgConflictRetry = "the file changed remotely, list again and retry"

	// MsgUploadCancelled is shown when a batch upload was stopped.
	MsgUploadCancelled = "upload cancelled, files already uploaded are kept"
)
