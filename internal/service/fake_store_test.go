// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory ContentStore that enforces content hashes the
// way the remote API does.
type memoryStore struct {
	mu      sync.Mutex
	token   string
	files   map[string]memoryFile
	nextSHA int

	puts    []string
	deletes []string

	// beforePut runs before every Put with the lock released. It may call
	// back into the store to simulate another writer.
	beforePut func(path string, attempt int)
	// putErr, when set, is returned by Put instead of writing.
	putErr error
	// readErr, when set, is returned by Read.
	readErr error
}

type memoryFile struct {
	content []byte
	sha     string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{token: "secret", files: make(map[string]memoryFile)}
}

func (m *memoryStore) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *memoryStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memoryStore) List(_ context.Context, folder string) ([]models.MediaFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var names []string
	for p := range m.files {
		if path.Dir(p) == folder && models.IsMedia(p) {
			names = append(names, p)
		}
	}
	sort.Strings(names)

	files := make([]models.MediaFile, 0, len(names))
	for _, p := range names {
		f := m.files[p]
		files = append(files, models.MediaFile{
			Name:   path.Base(p),
			Path:   p,
			SHA:    f.sha,
			Size:   int64(len(f.content)),
			RawURL: "https://raw.example/" + p,
		})
	}
	return files, nil
}

func (m *memoryStore) FolderExists(_ context.Context, folder string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for p := range m.files {
		if strings.HasPrefix(p, folder+"/") {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) Read(_ context.Context, p string) (models.ContentFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return models.ContentFile{}, m.readErr
	}
	f, ok := m.files[p]
	if !ok {
		return models.ContentFile{}, adapter.ErrNotFound
	}
	return models.ContentFile{
		Path:     p,
		SHA:      f.sha,
		Content:  base64.StdEncoding.EncodeToString(f.content),
		Encoding: "base64",
	}, nil
}

func (m *memoryStore) Put(_ context.Context, p string, req models.PutRequest) (string, error) {
	m.mu.Lock()
	m.puts = append(m.puts, p)
	attempt := len(m.puts)
	hook := m.beforePut
	m.mu.Unlock()

	if hook != nil {
		hook(p, attempt)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.putErr != nil {
		return "", m.putErr
	}

	current, exists := m.files[p]
	switch {
	case exists && req.SHA != current.sha:
		return "", adapter.ErrConflict
	case !exists && req.SHA != "":
		return "", adapter.ErrConflict
	}

	data, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return "", adapter.ErrBadRequest
	}
	return m.store(p, data), nil
}

func (m *memoryStore) Delete(_ context.Context, p string, req models.DeleteRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deletes = append(m.deletes, p)
	current, ok := m.files[p]
	if !ok {
		return adapter.ErrNotFound
	}
	if current.sha != req.SHA {
		return adapter.ErrConflict
	}
	delete(m.files, p)
	return nil
}

func (m *memoryStore) CurrentUser(context.Context, string) (models.Identity, error) {
	return models.Identity{ID: 1, Login: "admin"}, nil
}

func (m *memoryStore) RepositoryAccess(context.Context, string) (models.Repository, error) {
	return models.Repository{FullName: "owner/repo"}, nil
}

// store writes data under p with a fresh hash. Callers hold mu.
func (m *memoryStore) store(p string, data []byte) string {
	m.nextSHA++
	sha := "sha-" + strconv.Itoa(m.nextSHA)
	m.files[p] = memoryFile{content: data, sha: sha}
	return sha
}

// seed writes a file directly and returns its hash.
func (m *memoryStore) seed(p string, data []byte) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store(p, data)
}

// seedDocument writes doc as the metadata document at p.
func (m *memoryStore) seedDocument(t *testing.T, p string, doc models.MetadataDocument) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return m.seed(p, data)
}

// document decodes the metadata document at p.
func (m *memoryStore) document(t *testing.T, p string) models.MetadataDocument {
	t.Helper()
	m.mu.Lock()
	f, ok := m.files[p]
	m.mu.Unlock()
	require.True(t, ok, "no document at %s", p)

	var doc models.MetadataDocument
	require.NoError(t, json.Unmarshal(f.content, &doc))
	return doc
}

func (m *memoryStore) putCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.puts)
}

func (m *memoryStore) has(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[p]
	return ok
}
