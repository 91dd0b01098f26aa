// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// UploadFile is a local file queued for upload. Size is checked before Open
// is ever called, so oversized files are rejected without being read.
type UploadFile struct {
	// Name is the original file name; only its extension is kept.
	Name string
	// CustomName optionally seeds the stored file name.
	CustomName string
	Size       int64
	Open       func() (io.ReadCloser, error)
}

// UploadResult describes the outcome of a single file of a batch.
type UploadResult struct {
	Source   string
	StoredAs string
	SHA      string
	Err      error
}

// UploadReport summarises a batch upload.
type UploadReport struct {
	Results   []UploadResult
	Uploaded  int
	Failed    int
	Cancelled bool
}
