// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderCatalog(t *testing.T) {
	items := testItems()
	for i := range items {
		items[i].Position = i + 1
	}

	out := RenderCatalog(models.Catalog{Items: items, TrustedVisible: false})

	assert.Contains(t, out, "Catalog (3 items)")
	assert.Contains(t, out, "Drill [video]")
	assert.Contains(t, out, "Hammer [image]")
	assert.Contains(t, out, "Trusted-by section: hidden")
}

func TestRenderCatalog_Empty(t *testing.T) {
	out := RenderCatalog(models.Catalog{TrustedVisible: true})

	assert.Contains(t, out, "No products yet")
	assert.Contains(t, out, "Trusted-by section: shown")
}

func TestRenderUploadReport(t *testing.T) {
	out := RenderUploadReport(models.UploadReport{
		Results: []models.UploadResult{
			{Source: "drill.jpg", StoredAs: "drill_1700000000000.jpg"},
			{Source: "notes.txt", Err: errors.New("unsupported extension")},
		},
		Uploaded:  1,
		Failed:    1,
		Cancelled: true,
	})

	assert.Contains(t, out, "Uploaded: 1  Failed: 1  (cancelled)")
	assert.Contains(t, out, "drill.jpg -> drill_1700000000000.jpg")
	assert.Contains(t, out, "notes.txt: unsupported extension")
}
