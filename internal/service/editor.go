// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
	"golang.org/x/time/rate"
)

type editorService struct {
	store    adapter.ContentStore
	metadata MetadataSynchronizer
	folder   string
	workers  config.Workers
	log      *logger.Logger

	// now is replaceable in tests.
	now func() time.Time

	stampMu   sync.Mutex
	lastStamp int64
}

// NewEditorService returns the admin editor over the files in mediaFolder.
func NewEditorService(store adapter.ContentStore, metadata MetadataSynchronizer, mediaFolder string, workers config.Workers, log *logger.Logger) EditorService {
	return &editorService{
		store:    store,
		metadata: metadata,
		folder:   mediaFolder,
		workers:  workers,
		log:      log,
		now:      time.Now,
	}
}

func (e *editorService) Rename(ctx context.Context, filename, displayName string) error {
	if filename == "" {
		return ErrEmptyFilename
	}
	displayName = strings.TrimSpace(displayName)

	return e.metadata.Mutate(ctx, func(doc *models.MetadataDocument) {
		if displayName == "" {
			delete(doc.Names, filename)
			return
		}
		doc.Names[filename] = displayName
	})
}

func (e *editorService) Delete(ctx context.Context, filename, sha string) error {
	if e.store.Token() == "" {
		return ErrNotAuthenticated
	}
	if filename == "" {
		return ErrEmptyFilename
	}

	err := e.store.Delete(ctx, path.Join(e.folder, filename), models.DeleteRequest{
		Message: "Remove product: " + filename,
		SHA:     sha,
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", filename, err)
	}

	e.log.Info().Str("file", filename).Msg("media file deleted")

	return e.metadata.Mutate(ctx, func(doc *models.MetadataDocument) {
		delete(doc.Names, filename)
		if doc.Order != nil {
			doc.Order = slices.DeleteFunc(doc.Order, func(name string) bool { return name == filename })
		}
	})
}

func (e *editorService) Reorder(ctx context.Context, order []string) error {
	order = slices.Clone(order)
	if order == nil {
		order = []string{}
	}

	return e.metadata.Mutate(ctx, func(doc *models.MetadataDocument) {
		doc.Order = slices.Clone(order)
	})
}

func (e *editorService) SetTrustedVisible(ctx context.Context, visible bool) error {
	return e.metadata.Mutate(ctx, func(doc *models.MetadataDocument) {
		doc.HideTrustedBy = !visible
	})
}

func (e *editorService) ToggleTrusted(ctx context.Context) (bool, error) {
	var visible bool
	err := e.metadata.Mutate(ctx, func(doc *models.MetadataDocument) {
		doc.HideTrustedBy = !doc.HideTrustedBy
		visible = !doc.HideTrustedBy
	})
	return visible, err
}

func (e *editorService) NewReorderSession(ctx context.Context, items []string) *ReorderSession {
	return newReorderSession(ctx, items, e.workers.OrderSaveDelay, e.Reorder, e.log)
}

// uploadLimiter paces the puts of one batch.
func (e *editorService) uploadLimiter() *rate.Limiter {
	if e.workers.UploadInterval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(e.workers.UploadInterval), 1)
}
