// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRepo = config.Repo{
	Owner:        "acme",
	Name:         "gallery",
	Branch:       "main",
	MediaFolder:  "media",
	MetadataFile: "products.json",
}

// newTestContentStore creates a content store pointed at the test server.
func newTestContentStore(t *testing.T, serverURL string) *githubContentStore {
	t.Helper()

	cfg := config.Adapter{
		APIAddress:     serverURL,
		RawAddress:     "https://raw.example.com",
		RequestTimeout: 5 * time.Second,
	}
	s, err := NewContentStore(cfg, testRepo, logger.Nop())
	require.NoError(t, err)
	return s.(*githubContentStore)
}

func TestNewContentStore_InvalidAddress(t *testing.T) {
	_, err := NewContentStore(config.Adapter{APIAddress: ""}, testRepo, logger.Nop())
	assert.Error(t, err)

	_, err = NewContentStore(config.Adapter{APIAddress: "http://api", RawAddress: "http://"}, testRepo, logger.Nop())
	assert.Error(t, err)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestList_FiltersEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repos/acme/gallery/contents/media", r.URL.Path)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		assert.Equal(t, acceptHeader, r.Header.Get("Accept"))

		_ = json.NewEncoder(w).Encode([]models.ContentEntry{
			{Name: "a.JPG", Path: "media/a.JPG", SHA: "s1", Size: 10, Type: "file"},
			{Name: "clip.mp4", Path: "media/clip.mp4", SHA: "s2", Type: "file"},
			{Name: "products.json", Path: "media/products.json", SHA: "s3", Type: "file"},
			{Name: ".gitkeep", Path: "media/.gitkeep", SHA: "s4", Type: "file"},
			{Name: "old.png", Path: "media/old.png", SHA: "s5", Type: "dir"},
		})
	}))
	defer srv.Close()

	s := newTestContentStore(t, srv.URL)
	s.SetToken(" tkn ")

	files, err := s.List(context.Background(), "media")
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "a.JPG", files[0].Name)
	assert.Equal(t, "s1", files[0].SHA)
	assert.Equal(t, int64(10), files[0].Size)
	assert.Equal(t, "https://raw.example.com/acme/gallery/main/media/a.JPG", files[0].RawURL)
	assert.Equal(t, "clip.mp4", files[1].Name)
}

func TestList_MissingFolderIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	files, err := newTestContentStore(t, srv.URL).List(context.Background(), "media")
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestList_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestContentStore(t, srv.URL).List(context.Background(), "media")
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestFolderExists(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := int(status.Load())
		w.WriteHeader(code)
		if code == http.StatusOK {
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	s := newTestContentStore(t, srv.URL)

	ok, err := s.FolderExists(context.Background(), "media")
	require.NoError(t, err)
	assert.True(t, ok)

	status.Store(http.StatusNotFound)
	ok, err = s.FolderExists(context.Background(), "media")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── Read / Put / Delete ─────────────────────────────────────────────────────

func TestRead_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/gallery/contents/media/products.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"path":"media/products.json","sha":"abc","encoding":"base64","content":"eyJhLmpw\nZyI6IkEifQ==\n"}`))
	}))
	defer srv.Close()

	file, err := newTestContentStore(t, srv.URL).Read(context.Background(), "media/products.json")
	require.NoError(t, err)
	assert.Equal(t, "abc", file.SHA)

	data, err := file.Decode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a.jpg":"A"}`, string(data))
}

func TestRead_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestContentStore(t, srv.URL).Read(context.Background(), "media/products.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPut_SendsHashAndBranch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/repos/acme/gallery/contents/media/unnamed (1).jpg", r.URL.Path)

		var body models.PutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Add product", body.Message)
		assert.Equal(t, "Zm9v", body.Content)
		assert.Equal(t, "old", body.SHA)
		assert.Equal(t, "main", body.Branch)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"content":{"name":"unnamed (1).jpg","sha":"new"}}`))
	}))
	defer srv.Close()

	sha, err := newTestContentStore(t, srv.URL).Put(context.Background(), "media/unnamed (1).jpg", models.PutRequest{
		Message: "Add product",
		Content: "Zm9v",
		SHA:     "old",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", sha)
}

func TestPut_CreateOmitsHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotContains(t, body, "sha")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"content":{"sha":"first"}}`))
	}))
	defer srv.Close()

	sha, err := newTestContentStore(t, srv.URL).Put(context.Background(), "media/products.json", models.PutRequest{Message: "m", Content: "e30="})
	require.NoError(t, err)
	assert.Equal(t, "first", sha)
}

func TestPut_StaleHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"media/products.json does not match 9a2"}`))
	}))
	defer srv.Close()

	_, err := newTestContentStore(t, srv.URL).Put(context.Background(), "media/products.json", models.PutRequest{SHA: "9a2"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "deleted", status: http.StatusOK},
		{name: "stale hash", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "missing", status: http.StatusNotFound, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/repos/acme/gallery/contents/media/a.jpg", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestContentStore(t, srv.URL).Delete(context.Background(), "media/a.jpg", models.DeleteRequest{
				Message: "Remove product: a.jpg",
				SHA:     "s1",
			})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── credential checks ───────────────────────────────────────────────────────

func TestCurrentUser_UsesGivenToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer candidate", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":7,"login":"owner"}`))
	}))
	defer srv.Close()

	s := newTestContentStore(t, srv.URL)
	s.SetToken("stored")

	identity, err := s.CurrentUser(context.Background(), "candidate")
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: 7, Login: "owner"}, identity)
	assert.Equal(t, "stored", s.Token())
}

func TestCurrentUser_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer srv.Close()

	_, err := newTestContentStore(t, srv.URL).CurrentUser(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRepositoryAccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/gallery", r.URL.Path)
		_, _ = w.Write([]byte(`{"full_name":"acme/gallery","permissions":{"push":false,"pull":true}}`))
	}))
	defer srv.Close()

	repo, err := newTestContentStore(t, srv.URL).RepositoryAccess(context.Background(), "tkn")
	require.NoError(t, err)
	assert.Equal(t, "acme/gallery", repo.FullName)
	assert.False(t, repo.CanWrite())
}
