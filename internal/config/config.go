// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// storefront. It aggregates all sub-configurations and is populated by
// merging built-in defaults, a JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - validate:  go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings such as the sealing key, the
	// version and the default language.
	App App `envPrefix:"APP_"`

	// Repo identifies the repository that holds the media folder and the
	// metadata document.
	Repo Repo `envPrefix:"REPO_"`

	// Adapter holds the content API endpoints and the outbound timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local state database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the storefront HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds timings of background work: the debounced order save,
	// the conflict retry backoff and the upload pacing.
	Workers Workers `envPrefix:"WORKERS_"`

	// Notify holds the interaction event webhook.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Log holds the rotating log file settings used by the admin commands.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey seeds the key that seals the stored access token.
	// An empty key stores the token unsealed.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Language is the UI language used until the visitor picks one.
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE" validate:"omitempty,oneof=en mr"`

	// ContactPhone is the chat number used in enquiry links, digits only.
	// Env: APP_CONTACT_PHONE
	ContactPhone string `env:"CONTACT_PHONE" validate:"omitempty,numeric"`
}

// Repo identifies the remote content.
type Repo struct {
	Owner        string `env:"OWNER" validate:"required"`
	Name         string `env:"NAME" validate:"required"`
	Branch       string `env:"BRANCH" validate:"required"`
	MediaFolder  string `env:"MEDIA_FOLDER" validate:"required"`
	MetadataFile string `env:"METADATA_FILE" validate:"required"`
}

// Adapter holds configuration of the outbound content API client.
type Adapter struct {
	// APIAddress is the base URL of the contents API.
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS" validate:"required,url"`

	// RawAddress is the base URL used to build public file links.
	// Env: ADAPTER_RAW_ADDRESS
	RawAddress string `env:"RAW_ADDRESS" validate:"required,url"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "storefront.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the storefront, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,hostname_port"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds timings of background work.
type Workers struct {
	// OrderSaveDelay is the quiet window of the debounced order save.
	OrderSaveDelay time.Duration `env:"ORDER_SAVE_DELAY"`
	// ConflictBackoff is the pause between metadata write attempts after a
	// hash conflict. Zero retries immediately.
	ConflictBackoff time.Duration `env:"CONFLICT_BACKOFF"`
	// UploadInterval is the pause between consecutive uploads of a batch.
	UploadInterval time.Duration `env:"UPLOAD_INTERVAL"`
}

// Notify holds the interaction event webhook.
type Notify struct {
	// WebhookURL receives reaction and view events. Empty disables
	// forwarding.
	WebhookURL string        `env:"WEBHOOK_URL" validate:"omitempty,url"`
	Timeout    time.Duration `env:"TIMEOUT"`
}

// Log holds the rotating log file settings.
type Log struct {
	Level      string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" validate:"gte=0"`
	MaxBackups int    `env:"MAX_BACKUPS" validate:"gte=0"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" validate:"gte=0"`
	Compress   bool   `env:"COMPRESS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from flags and environment)
//  3. Environment variables
//  4. Command-line flags
//
// flagCfg holds the values bound by [BindFlags]; it may be nil.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
