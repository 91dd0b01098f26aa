// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path"
	"slices"
	"strings"
)

// MaxUploadSize is the upload ceiling for a single media file (10 MiB).
const MaxUploadSize int64 = 10 * 1024 * 1024

var (
	// ImageExtensions lists the image formats accepted for upload and display.
	ImageExtensions = []string{"jpg", "jpeg", "png", "gif", "webp"}

	// VideoExtensions lists the video formats accepted for upload and display.
	VideoExtensions = []string{"mp4", "webm", "mov"}
)

// MediaFile is a single media entry of the remote media folder. Name is the
// unique key and always carries an extension.
type MediaFile struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url,omitempty"`
	RawURL      string `json:"raw_url"`
}

// Extension returns the lower-cased extension of name without the dot, or an
// empty string when name has none.
func Extension(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsVideo reports whether name has one of the [VideoExtensions].
func IsVideo(name string) bool {
	return slices.Contains(VideoExtensions, Extension(name))
}

// IsImage reports whether name has one of the [ImageExtensions].
func IsImage(name string) bool {
	return slices.Contains(ImageExtensions, Extension(name))
}

// IsMedia reports whether name is either an image or a video.
func IsMedia(name string) bool {
	return IsImage(name) || IsVideo(name)
}
