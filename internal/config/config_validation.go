// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Struct-tag failures are mapped to
// the sentinel of the group they belong to.
func (cfg *StructuredConfig) validate() error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %s", groupError(fieldErrs[0].StructNamespace()), fieldErrs[0].Error())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.OrderSaveDelay <= 0 || cfg.Workers.ConflictBackoff < 0 || cfg.Workers.UploadInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func groupError(namespace string) error {
	switch {
	case strings.HasPrefix(namespace, "StructuredConfig.Repo."):
		return ErrInvalidRepoConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Adapter."):
		return ErrInvalidAdapterConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Storage."):
		return ErrInvalidStorageConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Workers."):
		return ErrInvalidWorkerConfigs
	default:
		return ErrInvalidConfig
	}
}
