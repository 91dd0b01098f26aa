// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-storefront/models"
)

// RenderCatalog formats the catalog the way the storefront shows it.
func RenderCatalog(catalog models.Catalog) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Catalog (%d items)", len(catalog.Items))))
	b.WriteString("\n")
	if len(catalog.Items) == 0 {
		b.WriteString("No products yet\n")
	}
	for _, item := range catalog.Items {
		kind := "image"
		if item.IsVideo {
			kind = "video"
		}
		fmt.Fprintf(&b, "%s %s [%s] %s\n",
			positionStyle.Render(fmt.Sprintf("%d.", item.Position)),
			item.DisplayName, kind, helpStyle.Render(item.File.Name))
	}

	trusted := "shown"
	if !catalog.TrustedVisible {
		trusted = "hidden"
	}
	b.WriteString(helpStyle.Render("Trusted-by section: " + trusted))
	return b.String()
}

// RenderUploadReport formats the outcome of a batch upload.
func RenderUploadReport(report models.UploadReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Uploaded: %d  Failed: %d", report.Uploaded, report.Failed)
	if report.Cancelled {
		b.WriteString("  (cancelled)")
	}
	for _, r := range report.Results {
		b.WriteString("\n")
		if r.Err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("x %s: %v", r.Source, r.Err)))
			continue
		}
		fmt.Fprintf(&b, "+ %s -> %s", r.Source, r.StoredAs)
	}
	return reportStyle.Render(b.String())
}

// RenderError formats err for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("Error: " + err.Error())
}
