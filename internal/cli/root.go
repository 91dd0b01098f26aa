// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/client"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/spf13/cobra"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version string
	Date    string
	Commit  string
}

// options is shared by every command of one tree.
type options struct {
	info    VersionInfo
	flagCfg *config.StructuredConfig
}

// NewRootCommand builds the storefront command tree.
func NewRootCommand(info VersionInfo) *cobra.Command {
	opts := &options{info: info}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Media storefront backed by a content repository",
		Long:          "Serves the public product catalog and edits its names, order and media through the repository contents API.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       fmt.Sprintf("%s (%s, %s)", info.Version, info.Commit, info.Date),
	}

	opts.flagCfg = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newServeCommand(opts),
		newAdminCommand(opts),
		newLangCommand(opts),
	)

	return cmd
}

func (o *options) loadConfig() (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(o.flagCfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = o.info.Version
	}
	return cfg, nil
}

// withApp runs fn against a fully wired app that logs to the admin log file.
func (o *options) withApp(ctx context.Context, fn func(ctx context.Context, app *client.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("storefront-admin", cfg.Log)
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			log.Err(cerr).Msg("closing local state failed")
		}
	}()

	return userError(fn(ctx, app))
}
