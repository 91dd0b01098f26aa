// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the admin terminal screens: the interactive reorder
// screen and the plain catalog and upload listings.
package tui

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RunReorder opens the reorder screen over items and blocks until the user
// quits. It returns the order the session holds at exit; the caller still owns
// the session and must close it to save a pending move.
func RunReorder(ctx context.Context, items []models.DisplayItem, session Reorderer) ([]string, error) {
	model := newReorderModel(ctx, items, session)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return nil, err
	}
	return session.Order(), nil
}
