// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Reaction is a visitor's reaction to a catalog item.
type Reaction string

const (
	ReactionLike   Reaction = "like"
	ReactionUnlike Reaction = "unlike"
)

// Interaction event types forwarded to the notification hook.
const (
	EventTypeVote = "vote"
	EventTypeView = "view"
)

// InteractionEvent is the JSON payload forwarded to the notification hook.
type InteractionEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Filename  string    `json:"filename"`
	Action    Reaction  `json:"action,omitempty"`
	Duration  int64     `json:"duration,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
