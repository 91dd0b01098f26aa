// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/app"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// catalogResponse is the catalog body. On failure Items is empty and Error
// says why, so a page never shows a partial list as complete.
type catalogResponse struct {
	models.Catalog
	Error string `json:"error,omitempty"`
}

func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	catalog, err := h.catalog.Load(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCatalog").Msg("catalog unavailable")
		utils.WriteJSON(w, catalogResponse{
			Catalog: models.Catalog{Items: []models.DisplayItem{}},
			Error:   app.MsgCatalogUnavailable,
		}, statusFromError(err))
		return
	}
	if catalog.Items == nil {
		catalog.Items = []models.DisplayItem{}
	}

	if _, err = utils.WriteJSON(w, catalogResponse{Catalog: catalog}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getCatalog").Msg("error writing catalog")
	}
}
