// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/semaphore"
)

// MetadataCommitMessage is the commit message of every metadata write.
const MetadataCommitMessage = "Update product names"

type metadataSynchronizer struct {
	store   adapter.ContentStore
	path    string
	backoff time.Duration
	log     *logger.Logger

	// lock admits one Mutate at a time. Waiters are served in FIFO order.
	lock *semaphore.Weighted
}

// NewMetadataSynchronizer returns the synchronizer of the document at path.
// backoff is the pause before a write is retried after a hash conflict.
func NewMetadataSynchronizer(store adapter.ContentStore, path string, backoff time.Duration, log *logger.Logger) MetadataSynchronizer {
	if backoff <= 0 {
		backoff = time.Millisecond
	}

	return &metadataSynchronizer{
		store:   store,
		path:    path,
		backoff: backoff,
		log:     log,
		lock:    semaphore.NewWeighted(1),
	}
}

func (s *metadataSynchronizer) Fetch(ctx context.Context) (models.MetadataDocument, error) {
	doc, _, err := s.fetchLatest(ctx)
	return doc, err
}

func (s *metadataSynchronizer) Mutate(ctx context.Context, fn models.MetadataMutation) error {
	if s.store.Token() == "" {
		return ErrNotAuthenticated
	}

	if err := s.lock.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for metadata lock: %w", err)
	}
	defer s.lock.Release(1)

	attempt := 0
	err := retry.Do(ctx, retry.NewConstant(s.backoff), func(ctx context.Context) error {
		attempt++

		doc, sha, err := s.fetchLatest(ctx)
		if err != nil {
			return err
		}

		fn(&doc)

		err = s.write(ctx, doc, sha)
		if errors.Is(err, adapter.ErrConflict) {
			s.log.Warn().Int("attempt", attempt).Str("path", s.path).Msg("metadata changed remotely, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("update metadata: %w", err)
	}

	s.log.Debug().Int("attempts", attempt).Str("path", s.path).Msg("metadata saved")
	return nil
}

// fetchLatest reads the document with its content hash. An absent document
// is returned empty with an empty hash, so the next write creates it. A
// document that does not decode is treated as empty but keeps its hash, so
// the next write replaces it.
func (s *metadataSynchronizer) fetchLatest(ctx context.Context) (models.MetadataDocument, string, error) {
	file, err := s.store.Read(ctx, s.path)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.NewMetadataDocument(), "", nil
	}
	if err != nil {
		return models.MetadataDocument{}, "", fmt.Errorf("read metadata: %w", err)
	}

	raw, err := file.Decode()
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("metadata content is not valid base64, using empty document")
		return models.NewMetadataDocument(), file.SHA, nil
	}

	var doc models.MetadataDocument
	if err = json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("metadata is not a JSON object, using empty document")
		return models.NewMetadataDocument(), file.SHA, nil
	}

	return doc, file.SHA, nil
}

func (s *metadataSynchronizer) write(ctx context.Context, doc models.MetadataDocument, sha string) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	_, err = s.store.Put(ctx, s.path, models.PutRequest{
		Message: MetadataCommitMessage,
		Content: base64.StdEncoding.EncodeToString(body),
		SHA:     sha,
	})
	return err
}
