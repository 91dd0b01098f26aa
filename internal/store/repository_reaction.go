// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

type reactionRepository struct {
	*keyValueStore
}

// NewReactionRepository returns a [ReactionRepository] backed by db.
func NewReactionRepository(db *DB) ReactionRepository {
	return &reactionRepository{keyValueStore: newKeyValueStore(db)}
}

func (r *reactionRepository) Reactions(ctx context.Context) (map[string]models.Reaction, error) {
	reactions, ok, err := getJSON[map[string]models.Reaction](ctx, r.keyValueStore, keyReactions)
	if err != nil {
		return nil, err
	}
	if !ok || reactions == nil {
		return map[string]models.Reaction{}, nil
	}

	return reactions, nil
}

func (r *reactionRepository) SetReaction(ctx context.Context, filename string, reaction models.Reaction) error {
	reactions, err := r.Reactions(ctx)
	if err != nil {
		return err
	}

	if reaction == models.ReactionLike {
		reactions[filename] = models.ReactionLike
	} else {
		delete(reactions, filename)
	}

	pair, err := encodeJSON(keyReactions, reactions)
	if err != nil {
		return err
	}

	return r.set(ctx, pair)
}
