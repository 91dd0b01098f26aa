// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned by every mutating operation while no
	// credential is held. No network call is made.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrEmptyToken is returned by Login for a blank token.
	ErrEmptyToken = errors.New("empty access token")

	// ErrInvalidCredential is returned by Login when the identity or the
	// repository access check fails.
	ErrInvalidCredential = errors.New("invalid access token")

	// ErrValidation is the parent of all client-side input failures.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedExtension rejects files outside the media allow-list.
	ErrUnsupportedExtension = fmt.Errorf("%w: unsupported file type", ErrValidation)

	// ErrFileTooLarge rejects files above the upload ceiling.
	ErrFileTooLarge = fmt.Errorf("%w: file too large", ErrValidation)

	// ErrEmptyFilename rejects operations without a target file.
	ErrEmptyFilename = fmt.Errorf("%w: empty file name", ErrValidation)

	// ErrUnknownItem is returned by reorder moves naming a file that is
	// not part of the session.
	ErrUnknownItem = errors.New("unknown item")

	// ErrUnsupportedLanguage rejects language codes other than en and mr.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
