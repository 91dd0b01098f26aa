// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-storefront/internal/store"
)

// Supported UI languages.
const (
	LanguageEnglish = "en"
	LanguageMarathi = "mr"
)

var supportedLanguages = []string{LanguageEnglish, LanguageMarathi}

type preferenceService struct {
	repo     store.PreferenceRepository
	fallback string
}

// NewPreferenceService returns the language preference manager. fallback
// is used until a language is stored; an unsupported fallback means English.
func NewPreferenceService(repo store.PreferenceRepository, fallback string) PreferenceService {
	if !slices.Contains(supportedLanguages, fallback) {
		fallback = LanguageEnglish
	}
	return &preferenceService{repo: repo, fallback: fallback}
}

func (p *preferenceService) Language(ctx context.Context) (string, error) {
	code, err := p.repo.Language(ctx)
	if err != nil {
		return "", fmt.Errorf("load language: %w", err)
	}
	if !slices.Contains(supportedLanguages, code) {
		return p.fallback, nil
	}
	return code, nil
}

func (p *preferenceService) SetLanguage(ctx context.Context, code string) error {
	if !slices.Contains(supportedLanguages, code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	if err := p.repo.SetLanguage(ctx, code); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}

// ToggleLanguage switches between English and Marathi and returns the new
// code.
func (p *preferenceService) ToggleLanguage(ctx context.Context) (string, error) {
	current, err := p.Language(ctx)
	if err != nil {
		return "", err
	}

	next := LanguageMarathi
	if current == LanguageMarathi {
		next = LanguageEnglish
	}
	return next, p.SetLanguage(ctx, next)
}
