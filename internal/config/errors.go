package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRepoConfigs indicates an incomplete target repository
	// (owner, name, branch, media folder or metadata file missing).
	ErrInvalidRepoConfigs = errors.New("invalid repository configuration")
	// ErrInvalidAdapterConfigs indicates invalid content API settings
	// (for example, a malformed API address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background timing settings
	// (for example, zero order-save delay).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidConfig wraps any other struct-tag validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)
