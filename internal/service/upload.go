// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strconv"
	"sync/atomic"

	"github.com/MKhiriev/go-storefront/models"
)

const (
	folderPlaceholder        = ".gitkeep"
	folderPlaceholderContent = "# Media folder for product images"
	folderCommitMessage      = "Create media folder"
	uploadNamePrefix         = "product"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// UploadControl lets a caller stop a running batch. Files already uploaded
// stay; the remaining ones are skipped. The zero value is ready to use.
type UploadControl struct {
	cancelled atomic.Bool

	// Progress, when set, is called after each file with the number of
	// files processed so far.
	Progress func(done, total int, result models.UploadResult)
}

// Cancel stops the batch before its next file.
func (c *UploadControl) Cancel() {
	c.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called.
func (c *UploadControl) Cancelled() bool {
	return c != nil && c.cancelled.Load()
}

func (c *UploadControl) report(done, total int, result models.UploadResult) {
	if c != nil && c.Progress != nil {
		c.Progress(done, total, result)
	}
}

// ValidateUpload checks the extension and size of f without reading it.
func ValidateUpload(f models.UploadFile) error {
	if !models.IsMedia(f.Name) {
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, f.Name)
	}
	if f.Size > models.MaxUploadSize {
		return fmt.Errorf("%w: %q is %d bytes", ErrFileTooLarge, f.Name, f.Size)
	}
	return nil
}

// Upload stores files one after another. A file failing validation or
// upload is reported in its result and the batch goes on. The returned error
// is non-nil only when the batch could not start or ctx ended.
func (e *editorService) Upload(ctx context.Context, files []models.UploadFile, control *UploadControl) (models.UploadReport, error) {
	var report models.UploadReport

	if e.store.Token() == "" {
		return report, ErrNotAuthenticated
	}

	limiter := e.uploadLimiter()
	folderReady := false

	for i, f := range files {
		if control.Cancelled() {
			report.Cancelled = true
			e.log.Info().Int("uploaded", report.Uploaded).Int("skipped", len(files)-i).Msg("upload cancelled")
			break
		}
		if err := ctx.Err(); err != nil {
			report.Cancelled = true
			return report, err
		}

		result := models.UploadResult{Source: f.Name}

		if err := ValidateUpload(f); err != nil {
			result.Err = err
			e.record(&report, result, i+1, len(files), control)
			continue
		}

		if !folderReady {
			if err := e.ensureFolder(ctx); err != nil {
				return report, err
			}
			folderReady = true
		}

		if err := limiter.Wait(ctx); err != nil {
			report.Cancelled = true
			return report, err
		}

		result.StoredAs, result.SHA, result.Err = e.uploadOne(ctx, f)
		e.record(&report, result, i+1, len(files), control)
	}

	return report, nil
}

func (e *editorService) record(report *models.UploadReport, result models.UploadResult, done, total int, control *UploadControl) {
	if result.Err != nil {
		report.Failed++
		e.log.Warn().Err(result.Err).Str("file", result.Source).Msg("upload failed")
	} else {
		report.Uploaded++
		e.log.Info().Str("file", result.Source).Str("stored_as", result.StoredAs).Msg("uploaded")
	}
	report.Results = append(report.Results, result)
	control.report(done, total, result)
}

func (e *editorService) uploadOne(ctx context.Context, f models.UploadFile) (string, string, error) {
	if f.Open == nil {
		return "", "", errors.New("file has no content")
	}

	rc, err := f.Open()
	if err != nil {
		return "", "", fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	// LimitReader guards against a file that grew after validation.
	data, err := io.ReadAll(io.LimitReader(rc, models.MaxUploadSize+1))
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", f.Name, err)
	}
	if int64(len(data)) > models.MaxUploadSize {
		return "", "", fmt.Errorf("%w: %q", ErrFileTooLarge, f.Name)
	}

	name := e.uploadName(f)
	sha, err := e.store.Put(ctx, path.Join(e.folder, name), models.PutRequest{
		Message: "Add product: " + name,
		Content: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return name, "", fmt.Errorf("upload %s: %w", f.Name, err)
	}
	return name, sha, nil
}

// uploadName returns "<prefix>_<unix-ms>.<ext>". Stamps are strictly
// increasing within the process, so two files of one batch never share a
// name even within the same millisecond.
func (e *editorService) uploadName(f models.UploadFile) string {
	prefix := uploadNamePrefix
	if f.CustomName != "" {
		prefix = unsafeNameChars.ReplaceAllString(f.CustomName, "_")
	}
	return prefix + "_" + strconv.FormatInt(e.nextStamp(), 10) + "." + models.Extension(f.Name)
}

func (e *editorService) nextStamp() int64 {
	e.stampMu.Lock()
	defer e.stampMu.Unlock()

	stamp := e.now().UnixMilli()
	if stamp <= e.lastStamp {
		stamp = e.lastStamp + 1
	}
	e.lastStamp = stamp
	return stamp
}

// ensureFolder creates the media folder with a placeholder file when it is
// missing.
func (e *editorService) ensureFolder(ctx context.Context) error {
	exists, err := e.store.FolderExists(ctx, e.folder)
	if err != nil {
		return fmt.Errorf("check media folder: %w", err)
	}
	if exists {
		return nil
	}

	_, err = e.store.Put(ctx, path.Join(e.folder, folderPlaceholder), models.PutRequest{
		Message: folderCommitMessage,
		Content: base64.StdEncoding.EncodeToString([]byte(folderPlaceholderContent)),
	})
	if err != nil {
		return fmt.Errorf("create media folder: %w", err)
	}

	e.log.Info().Str("folder", e.folder).Msg("media folder created")
	return nil
}
