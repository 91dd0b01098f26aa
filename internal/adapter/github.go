// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-resty/resty/v2"
)

const (
	acceptHeader  = "application/vnd.github.v3+json"
	entryTypeFile = "file"
)

type githubContentStore struct {
	client *utils.HTTPClient

	owner   string
	repo    string
	branch  string
	rawBase string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewContentStore constructs a [ContentStore] backed by the repository
// contents REST API at adapterCfg.APIAddress.
//
// Returns an error if the API or raw address cannot be parsed.
func NewContentStore(adapterCfg config.Adapter, repoCfg config.Repo, log *logger.Logger) (ContentStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}
	rawBase, err := normalizeBaseURL(adapterCfg.RawAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter raw address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetHeader("Accept", acceptHeader)

	return &githubContentStore{
		client:  client,
		owner:   repoCfg.Owner,
		repo:    repoCfg.Name,
		branch:  repoCfg.Branch,
		rawBase: rawBase,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (g *githubContentStore) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

func (g *githubContentStore) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *githubContentStore) List(ctx context.Context, folder string) ([]models.MediaFile, error) {
	entries, found, err := g.listEntries(ctx, folder)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.FromContext(ctx).Debug().Str("folder", folder).Msg("media folder is absent")
		return []models.MediaFile{}, nil
	}

	files := make([]models.MediaFile, 0, len(entries))
	for _, e := range entries {
		if e.Type != entryTypeFile || !models.IsMedia(e.Name) {
			continue
		}
		files = append(files, models.MediaFile{
			Name:        e.Name,
			Path:        e.Path,
			SHA:         e.SHA,
			Size:        e.Size,
			DownloadURL: e.DownloadURL,
			RawURL:      g.rawURL(e.Path),
		})
	}

	return files, nil
}

func (g *githubContentStore) FolderExists(ctx context.Context, folder string) (bool, error) {
	_, found, err := g.listEntries(ctx, folder)
	return found, err
}

// listEntries fetches a folder listing. found is false for a missing folder.
func (g *githubContentStore) listEntries(ctx context.Context, folder string) ([]models.ContentEntry, bool, error) {
	resp, err := g.authedRequest(ctx).
		SetQueryParam("ref", g.branch).
		Get(g.contentsPath(folder))
	if err != nil {
		return nil, false, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var entries []models.ContentEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, false, fmt.Errorf("decode folder listing: %w", err)
	}

	return entries, true, nil
}

func (g *githubContentStore) Read(ctx context.Context, path string) (models.ContentFile, error) {
	resp, err := g.authedRequest(ctx).
		SetHeader("Cache-Control", "no-cache").
		SetQueryParam("ref", g.branch).
		Get(g.contentsPath(path))
	if err != nil {
		return models.ContentFile{}, fmt.Errorf("read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ContentFile{}, err
	}

	var file models.ContentFile
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.ContentFile{}, fmt.Errorf("decode file: %w", err)
	}

	return file, nil
}

func (g *githubContentStore) Put(ctx context.Context, path string, req models.PutRequest) (string, error) {
	if req.Branch == "" {
		req.Branch = g.branch
	}

	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(g.contentsPath(path))
	if err != nil {
		return "", fmt.Errorf("put request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out models.PutResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode put response: %w", err)
	}

	return out.Content.SHA, nil
}

func (g *githubContentStore) Delete(ctx context.Context, path string, req models.DeleteRequest) error {
	if req.Branch == "" {
		req.Branch = g.branch
	}

	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Delete(g.contentsPath(path))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (g *githubContentStore) CurrentUser(ctx context.Context, token string) (models.Identity, error) {
	var identity models.Identity
	if err := g.getWithToken(ctx, token, "/user", &identity); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

func (g *githubContentStore) RepositoryAccess(ctx context.Context, token string) (models.Repository, error) {
	var repo models.Repository
	if err := g.getWithToken(ctx, token, g.repoPath(), &repo); err != nil {
		return models.Repository{}, err
	}
	return repo, nil
}

func (g *githubContentStore) getWithToken(ctx context.Context, token, path string, out any) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(strings.TrimSpace(token)).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (g *githubContentStore) authedRequest(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if token := g.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (g *githubContentStore) repoPath() string {
	return "/repos/" + url.PathEscape(g.owner) + "/" + url.PathEscape(g.repo)
}

// contentsPath builds the contents endpoint of p, escaping each segment.
func (g *githubContentStore) contentsPath(p string) string {
	return g.repoPath() + "/contents/" + escapeSegments(p)
}

func (g *githubContentStore) rawURL(p string) string {
	return g.rawBase + "/" + url.PathEscape(g.owner) + "/" + url.PathEscape(g.repo) + "/" +
		url.PathEscape(g.branch) + "/" + escapeSegments(p)
}

func escapeSegments(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
