// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Reserved keys of the on-remote metadata document. Real filenames always
// carry an extension and never start with an underscore, so these never
// collide with display-name entries.
const (
	metadataOrderKey       = "_order"
	metadataHideTrustedKey = "_hideTrustedBy"
	metadataReservedPrefix = "_"
)

// MetadataDocument holds the catalog metadata: per-file display names, the
// explicit ordering and the "Trusted By" visibility flag.
//
// On the remote side the document is a single flat JSON object where display
// names share the namespace with the reserved keys; MarshalJSON and
// UnmarshalJSON translate between the two shapes.
type MetadataDocument struct {
	Names         map[string]string
	Order         []string
	HideTrustedBy bool

	// Extra keeps reserved keys this version does not understand, so they
	// survive a rewrite.
	Extra map[string]json.RawMessage
}

// MetadataMutation changes a document in place. Mutations must be pure
// functions of the document they receive: the synchronizer reapplies them to
// a freshly fetched copy after every conflict.
type MetadataMutation func(doc *MetadataDocument)

// NewMetadataDocument returns an empty document.
func NewMetadataDocument() MetadataDocument {
	return MetadataDocument{Names: make(map[string]string)}
}

// Clone returns a deep copy of d.
func (d MetadataDocument) Clone() MetadataDocument {
	names := make(map[string]string, len(d.Names))
	maps.Copy(names, d.Names)

	var extra map[string]json.RawMessage
	if d.Extra != nil {
		extra = make(map[string]json.RawMessage, len(d.Extra))
		for k, v := range d.Extra {
			extra[k] = slices.Clone(v)
		}
	}

	return MetadataDocument{
		Names:         names,
		Order:         slices.Clone(d.Order),
		HideTrustedBy: d.HideTrustedBy,
		Extra:         extra,
	}
}

// DisplayName returns the stored display name for filename, if any.
func (d MetadataDocument) DisplayName(filename string) (string, bool) {
	name, ok := d.Names[filename]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// MarshalJSON writes the flat remote representation.
func (d MetadataDocument) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(d.Names)+len(d.Extra)+2)
	for key, raw := range d.Extra {
		if key == metadataOrderKey || key == metadataHideTrustedKey || !strings.HasPrefix(key, metadataReservedPrefix) {
			continue
		}
		flat[key] = raw
	}
	for filename, name := range d.Names {
		if strings.HasPrefix(filename, metadataReservedPrefix) || name == "" {
			continue
		}
		flat[filename] = name
	}
	if d.Order != nil {
		flat[metadataOrderKey] = d.Order
	}
	if d.HideTrustedBy {
		flat[metadataHideTrustedKey] = true
	}

	return json.Marshal(flat)
}

// UnmarshalJSON reads the flat remote representation. Entries of an
// unexpected type are skipped rather than rejected so that a hand-edited
// document never blocks the catalog.
func (d *MetadataDocument) UnmarshalJSON(b []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}

	doc := NewMetadataDocument()
	for key, raw := range flat {
		switch {
		case key == metadataOrderKey:
			var order []string
			if err := json.Unmarshal(raw, &order); err == nil {
				doc.Order = order
			}
		case key == metadataHideTrustedKey:
			var hide bool
			if err := json.Unmarshal(raw, &hide); err == nil {
				doc.HideTrustedBy = hide
			}
		case strings.HasPrefix(key, metadataReservedPrefix):
			if doc.Extra == nil {
				doc.Extra = make(map[string]json.RawMessage)
			}
			doc.Extra[key] = raw
		default:
			var name string
			if err := json.Unmarshal(raw, &name); err == nil && name != "" {
				doc.Names[key] = name
			}
		}
	}

	*d = doc
	return nil
}
