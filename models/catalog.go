// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DisplayItem is one entry of the ordered storefront catalog.
type DisplayItem struct {
	File        MediaFile `json:"file"`
	DisplayName string    `json:"display_name"`
	IsVideo     bool      `json:"is_video"`
	Position    int       `json:"position"`
	EnquiryURL  string    `json:"enquiry_url,omitempty"`
}

// Catalog is the full projection rendered by the storefront.
type Catalog struct {
	Items          []DisplayItem `json:"items"`
	TrustedVisible bool          `json:"trusted_visible"`
}
