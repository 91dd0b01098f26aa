// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// webhookContentType avoids a CORS preflight on script-hosted receivers.
const webhookContentType = "text/plain;charset=utf-8"

type webhookNotifier struct {
	client *utils.HTTPClient
	url    string
	logger *logger.Logger
}

// NewEventNotifier returns an [EventNotifier] posting events to
// cfg.WebhookURL. An empty URL yields a notifier that only logs.
func NewEventNotifier(cfg config.Notify, log *logger.Logger) EventNotifier {
	if cfg.WebhookURL == "" {
		return nopNotifier{logger: log}
	}

	return &webhookNotifier{
		client: utils.NewHTTPClient("", cfg.Timeout),
		url:    cfg.WebhookURL,
		logger: log,
	}
}

func (n *webhookNotifier) Notify(ctx context.Context, event models.InteractionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", webhookContentType).
		SetBody(payload).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("notify request: %w", err)
	}

	return mapHTTPError(resp)
}

type nopNotifier struct {
	logger *logger.Logger
}

func (n nopNotifier) Notify(ctx context.Context, event models.InteractionEvent) error {
	n.logger.Debug().
		Str("type", event.Type).
		Str("filename", event.Filename).
		Msg("event forwarding disabled")
	return nil
}
