// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/client"
	"github.com/spf13/cobra"
)

func newLangCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [en|mr|toggle]",
		Short: "Print or change the UI language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				prefs := a.Services().Preferences

				var (
					code string
					err  error
				)
				switch {
				case len(args) == 0:
					code, err = prefs.Language(ctx)
				case args[0] == "toggle":
					code, err = prefs.ToggleLanguage(ctx)
				default:
					code = args[0]
					err = prefs.SetLanguage(ctx, code)
				}
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), code)
				return nil
			})
		},
	}
}
