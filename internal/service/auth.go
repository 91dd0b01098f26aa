// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

type authService struct {
	store       adapter.ContentStore
	credentials store.CredentialRepository
	log         *logger.Logger
}

// NewAuthService returns the credential manager. An accepted token is kept
// in credentials and attached to every request of store.
func NewAuthService(contentStore adapter.ContentStore, credentials store.CredentialRepository, log *logger.Logger) AuthService {
	return &authService{store: contentStore, credentials: credentials, log: log}
}

// Login accepts token only when it resolves to an identity that may write
// to the repository. A rejected token leaves the stored state untouched.
func (a *authService) Login(ctx context.Context, token string) (models.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Identity{}, ErrEmptyToken
	}

	identity, err := a.store.CurrentUser(ctx, token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	repo, err := a.store.RepositoryAccess(ctx, token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if !repo.CanWrite() {
		return models.Identity{}, fmt.Errorf("%w: %s has no write access to %s", ErrInvalidCredential, identity.Login, repo.FullName)
	}

	err = a.credentials.SaveCredential(ctx, models.Credential{
		Token:        token,
		Login:        identity.Login,
		SessionValid: true,
		SavedAt:      time.Now().UTC(),
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("save credential: %w", err)
	}

	a.store.SetToken(token)
	a.log.Info().Str("login", identity.Login).Msg("admin logged in")

	return identity, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.store.SetToken("")
	if err := a.credentials.ClearCredential(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) (bool, error) {
	cred, err := a.credentials.LoadCredential(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load credential: %w", err)
	}

	a.store.SetToken(cred.Token)
	return true, nil
}

func (a *authService) IsAuthenticated() bool {
	return a.store.Token() != ""
}
