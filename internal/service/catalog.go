// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
	"golang.org/x/sync/errgroup"
)

type catalogService struct {
	store        adapter.ContentStore
	metadata     MetadataSynchronizer
	mediaFolder  string
	contactPhone string
	log          *logger.Logger
}

// NewCatalogService returns the read-only catalog projection of the files in
// mediaFolder. contactPhone seeds the enquiry links and may be empty.
func NewCatalogService(store adapter.ContentStore, metadata MetadataSynchronizer, mediaFolder, contactPhone string, log *logger.Logger) CatalogService {
	return &catalogService{
		store:        store,
		metadata:     metadata,
		mediaFolder:  mediaFolder,
		contactPhone: contactPhone,
		log:          log,
	}
}

func (c *catalogService) ListDisplayItems(ctx context.Context) ([]models.DisplayItem, error) {
	catalog, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Items, nil
}

func (c *catalogService) Load(ctx context.Context) (models.Catalog, error) {
	var (
		files []models.MediaFile
		doc   models.MetadataDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		files, err = c.store.List(gctx, c.mediaFolder)
		if err != nil {
			return fmt.Errorf("list media: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		doc, err = c.metadata.Fetch(gctx)
		if err != nil {
			return fmt.Errorf("fetch metadata: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		c.log.Err(err).Msg("catalog load failed")
		return models.Catalog{}, err
	}

	sorted := SortByOrder(files, doc.Order)
	items := make([]models.DisplayItem, 0, len(sorted))
	for i, file := range sorted {
		name := DisplayName(doc, file.Name)
		items = append(items, models.DisplayItem{
			File:        file,
			DisplayName: name,
			IsVideo:     models.IsVideo(file.Name),
			Position:    i + 1,
			EnquiryURL:  EnquiryURL(c.contactPhone, name, file.RawURL),
		})
	}

	return models.Catalog{Items: items, TrustedVisible: !doc.HideTrustedBy}, nil
}
