// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ContentEntry is one element of a remote folder listing as returned by the
// contents API.
type ContentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url"`
	Type        string `json:"type"`
}

// ContentFile is a single remote file together with the content hash that
// must be presented to update or delete it.
type ContentFile struct {
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Decode returns the raw bytes of the file. The API wraps base64 payloads at
// 60 columns, so line breaks are dropped before decoding.
func (f ContentFile) Decode() ([]byte, error) {
	if f.Encoding != "" && f.Encoding != "base64" {
		return nil, fmt.Errorf("unsupported content encoding %q", f.Encoding)
	}

	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(f.Content)
	data, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode file content: %w", err)
	}
	return data, nil
}

// PutRequest creates or replaces a remote file. SHA must be empty when the
// file is created and equal to the current content hash when it is replaced.
type PutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

// PutResponse is the subset of the contents API reply used by the client.
type PutResponse struct {
	Content struct {
		Name string `json:"name"`
		Path string `json:"path"`
		SHA  string `json:"sha"`
	} `json:"content"`
}

// DeleteRequest removes a remote file. SHA is mandatory.
type DeleteRequest struct {
	Message string `json:"message"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch,omitempty"`
}

// Identity is the account a bearer credential belongs to.
type Identity struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// RepositoryPermissions describes what the credential may do in a repository.
type RepositoryPermissions struct {
	Admin bool `json:"admin"`
	Push  bool `json:"push"`
	Pull  bool `json:"pull"`
}

// Repository is the repository access check reply. Permissions is nil when
// the API did not report them.
type Repository struct {
	FullName    string                 `json:"full_name"`
	Private     bool                   `json:"private"`
	Permissions *RepositoryPermissions `json:"permissions,omitempty"`
}

// CanWrite reports whether the credential may push to the repository. A reply
// without permission details is accepted.
func (r Repository) CanWrite() bool {
	if r.Permissions == nil {
		return true
	}
	return r.Permissions.Push || r.Permissions.Admin
}
