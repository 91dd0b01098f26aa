// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/url"
	"path"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-storefront/models"
)

// FallbackDisplayName replaces derived names that carry nothing readable.
const FallbackDisplayName = "Premium Tool"

// generatedPrefixes are stripped in order, each at most once.
var generatedPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Gemini_Generated_Image_`),
	regexp.MustCompile(`(?i)^unnamed\s*\(?\d*\)?`),
	regexp.MustCompile(`(?i)^product_`),
	regexp.MustCompile(`(?i)^image_`),
	regexp.MustCompile(`(?i)^IMG_`),
	regexp.MustCompile(`(?i)^DSC_`),
	regexp.MustCompile(`^\d+_`),
}

var (
	separators = regexp.MustCompile(`[-_]`)
	spaces     = regexp.MustCompile(`\s+`)
)

// DisplayName returns the stored name of filename, or one derived from the
// file name when none is stored.
func DisplayName(doc models.MetadataDocument, filename string) string {
	if name, ok := doc.DisplayName(filename); ok {
		return name
	}
	return DeriveDisplayName(filename)
}

// DeriveDisplayName turns an upload file name into a readable title:
// "product_1718000000000.jpg" and "IMG_0001.jpg" carry no words and yield
// [FallbackDisplayName], "cordless-drill_v2.png" yields "Cordless Drill V2".
func DeriveDisplayName(filename string) string {
	name := strings.TrimSuffix(filename, path.Ext(filename))

	for _, prefix := range generatedPrefixes {
		name = prefix.ReplaceAllString(name, "")
	}

	name = separators.ReplaceAllString(name, " ")
	name = strings.TrimSpace(spaces.ReplaceAllString(name, " "))
	name = titleCase(name)

	if len([]rune(name)) < 3 || !strings.ContainsFunc(name, unicode.IsLetter) {
		return FallbackDisplayName
	}
	return name
}

// titleCase upper-cases the first character of every word.
func titleCase(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if i == 0 || !isWordRune(runes[i-1]) {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// EnquiryURL returns the chat link a visitor follows to ask about an item.
// An empty phone disables the link.
func EnquiryURL(phone, displayName, rawURL string) string {
	if phone == "" {
		return ""
	}

	message := strings.Join([]string{
		"Hi! I'm interested in this product:",
		"",
		"*" + displayName + "*",
		"",
		"View: " + rawURL,
		"",
		"Is home delivery available?",
	}, "\n")

	return "https://wa.me/" + phone + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// SortByOrder arranges files by order. Files named in order come first, in
// order's sequence; the rest follow in their original relative order. Order
// entries naming no file and repeated entries are ignored.
func SortByOrder(files []models.MediaFile, order []string) []models.MediaFile {
	rank := make(map[string]int, len(order))
	for i, name := range order {
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}

	sorted := slices.Clone(files)
	slices.SortStableFunc(sorted, func(a, b models.MediaFile) int {
		ra, okA := rank[a.Name]
		rb, okB := rank[b.Name]
		switch {
		case okA && okB:
			return ra - rb
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
	return sorted
}
