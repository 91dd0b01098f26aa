// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

// Handler serves the storefront routes.
type Handler struct {
	catalog      service.CatalogService
	interactions service.InteractionService
	version      string

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHandler returns a Handler over the catalog and interaction services.
func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		catalog:      services.Catalog,
		interactions: services.Interactions,
		version:      version,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
