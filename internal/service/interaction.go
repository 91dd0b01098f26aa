// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// MinViewDuration is the dwell time a view must exceed to be reported.
const MinViewDuration = time.Second

type interactionService struct {
	installation store.InstallationRepository
	reactions    store.ReactionRepository
	notifier     adapter.EventNotifier
	log          *logger.Logger

	now func() time.Time
}

// NewInteractionService returns the visitor interaction recorder.
func NewInteractionService(installation store.InstallationRepository, reactions store.ReactionRepository, notifier adapter.EventNotifier, log *logger.Logger) InteractionService {
	return &interactionService{
		installation: installation,
		reactions:    reactions,
		notifier:     notifier,
		log:          log,
		now:          time.Now,
	}
}

// ToggleReaction likes filename, or takes the like back when it is already
// liked, and returns the new reaction.
func (s *interactionService) ToggleReaction(ctx context.Context, filename string) (models.Reaction, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}

	current, err := s.reactions.Reactions(ctx)
	if err != nil {
		return "", fmt.Errorf("load reactions: %w", err)
	}

	next := models.ReactionLike
	if current[filename] == models.ReactionLike {
		next = models.ReactionUnlike
	}

	if err = s.reactions.SetReaction(ctx, filename, next); err != nil {
		return "", fmt.Errorf("save reaction: %w", err)
	}

	userID, err := s.installation.InstallationID(ctx)
	if err != nil {
		s.log.Err(err).Msg("installation id unavailable, vote not forwarded")
		return next, nil
	}

	s.notify(ctx, models.InteractionEvent{
		Type:      models.EventTypeVote,
		UserID:    userID,
		Filename:  filename,
		Action:    next,
		Timestamp: s.now().UTC(),
	})
	return next, nil
}

func (s *interactionService) Reactions(ctx context.Context) (map[string]models.Reaction, error) {
	reactions, err := s.reactions.Reactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reactions: %w", err)
	}
	return reactions, nil
}

// RecordView reports a dwell time on filename. Views not longer than
// [MinViewDuration] are dropped and false is returned.
func (s *interactionService) RecordView(ctx context.Context, filename string, duration time.Duration) (bool, error) {
	if filename == "" {
		return false, ErrEmptyFilename
	}
	if duration <= MinViewDuration {
		return false, nil
	}

	userID, err := s.installation.InstallationID(ctx)
	if err != nil {
		return false, fmt.Errorf("installation id: %w", err)
	}

	s.notify(ctx, models.InteractionEvent{
		Type:      models.EventTypeView,
		UserID:    userID,
		Filename:  filename,
		Duration:  duration.Milliseconds(),
		Timestamp: s.now().UTC(),
	})
	return true, nil
}

// Forward relays an event sent by a storefront page. Short views are
// dropped silently; a missing timestamp is set to now.
func (s *interactionService) Forward(ctx context.Context, event models.InteractionEvent) error {
	if event.Filename == "" {
		return ErrEmptyFilename
	}
	if event.UserID == "" {
		return fmt.Errorf("%w: missing user id", ErrValidation)
	}

	switch event.Type {
	case models.EventTypeVote:
		if event.Action != models.ReactionLike && event.Action != models.ReactionUnlike {
			return fmt.Errorf("%w: unknown vote action %q", ErrValidation, event.Action)
		}
	case models.EventTypeView:
		if time.Duration(event.Duration)*time.Millisecond <= MinViewDuration {
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown event type %q", ErrValidation, event.Type)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now().UTC()
	}

	s.notify(ctx, event)
	return nil
}

// notify forwards event. Delivery failures are logged only.
func (s *interactionService) notify(ctx context.Context, event models.InteractionEvent) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("type", event.Type).Str("file", event.Filename).Msg("event not delivered")
	}
}
