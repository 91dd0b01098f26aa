// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/app"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// maxEventBody bounds the size of one event body.
const maxEventBody = 4 << 10

// postEvent accepts a vote or view event from a storefront page and relays
// it to the notification hook.
func (h *Handler) postEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBody+1))
	if err != nil || len(body) > maxEventBody {
		utils.WriteJSONError(w, app.MsgInvalidEvent, http.StatusBadRequest)
		return
	}

	var event models.InteractionEvent
	if err = json.Unmarshal(body, &event); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.postEvent").Msg("invalid event JSON")
		utils.WriteJSONError(w, app.MsgInvalidEvent, http.StatusBadRequest)
		return
	}

	if err = h.interactions.Forward(r.Context(), event); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.postEvent").Msg("event rejected")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
