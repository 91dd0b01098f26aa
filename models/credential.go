// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is the stored bearer credential of an admin session.
type Credential struct {
	Token        string    `json:"token"`
	Login        string    `json:"login"`
	SessionValid bool      `json:"-"`
	SavedAt      time.Time `json:"saved_at"`
}
