// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/app"
	"github.com/MKhiriev/go-storefront/internal/client"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/tui"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/spf13/cobra"
)

func newAdminCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Edit the catalog",
	}

	cmd.AddCommand(
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newListCommand(opts),
		newRenameCommand(opts),
		newDeleteCommand(opts),
		newReorderCommand(opts),
		newMoveCommand(opts),
		newUploadCommand(opts),
		newTrustedCommand(opts),
	)

	return cmd
}

func newLoginCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store an access token with write access to the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readToken(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}

			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				identity, err := a.Services().Auth.Login(ctx, token)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", identity.Login)
				return nil
			})
		},
	}
}

func newLogoutCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				if err := a.Services().Auth.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				catalog, err := a.Services().Catalog.Load(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCatalog(catalog))
				return nil
			})
		},
	}
}

func newRenameCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <file> [display name]",
		Short: "Set the display name of a file; an empty name restores the derived one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				return a.Services().Editor.Rename(ctx, args[0], name)
			})
		},
	}
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file>",
		Short: "Remove a file and its metadata entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				item, err := findItem(ctx, a.Services().Catalog, args[0])
				if err != nil {
					return err
				}
				if err = a.Services().Editor.Delete(ctx, item.File.Name, item.File.SHA); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", item.File.Name)
				return nil
			})
		},
	}
}

func findItem(ctx context.Context, catalog service.CatalogService, filename string) (models.DisplayItem, error) {
	items, err := catalog.ListDisplayItems(ctx)
	if err != nil {
		return models.DisplayItem{}, err
	}
	for _, item := range items {
		if item.File.Name == filename {
			return item, nil
		}
	}
	return models.DisplayItem{}, fmt.Errorf("%w: %q", service.ErrUnknownItem, filename)
}

func fileNames(items []models.DisplayItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.File.Name
	}
	return names
}

func newReorderCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder",
		Short: "Reorder the catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				items, err := a.Services().Catalog.ListDisplayItems(ctx)
				if err != nil {
					return err
				}

				session := a.Services().Editor.NewReorderSession(ctx, fileNames(items))
				if _, err = tui.RunReorder(ctx, items, session); err != nil {
					_ = session.Close(ctx)
					return err
				}
				return session.Close(ctx)
			})
		},
	}
}

func newMoveCommand(opts *options) *cobra.Command {
	var (
		before string
		up     bool
		down   bool
		last   bool
	)

	cmd := &cobra.Command{
		Use:   "move <file>",
		Short: "Move one file within the catalog order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				items, err := a.Services().Catalog.ListDisplayItems(ctx)
				if err != nil {
					return err
				}

				session := a.Services().Editor.NewReorderSession(ctx, fileNames(items))
				switch {
				case up:
					err = session.MoveUp(args[0])
				case down:
					err = session.MoveDown(args[0])
				case last:
					err = session.MoveBefore(args[0], "")
				default:
					err = session.MoveBefore(args[0], before)
				}
				if err != nil {
					_ = session.Close(ctx)
					return err
				}
				if err = session.Close(ctx); err != nil {
					return err
				}

				for i, name := range session.Order() {
					fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Place the file before this one")
	cmd.Flags().BoolVar(&up, "up", false, "Move one position up")
	cmd.Flags().BoolVar(&down, "down", false, "Move one position down")
	cmd.Flags().BoolVar(&last, "last", false, "Move to the end")
	cmd.MarkFlagsMutuallyExclusive("before", "up", "down", "last")
	cmd.MarkFlagsOneRequired("before", "up", "down", "last")

	return cmd
}

func newUploadCommand(opts *options) *cobra.Command {
	var customName string

	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload media files one after another; Ctrl+C stops before the next file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := localUploads(args, customName)
			if err != nil {
				return err
			}

			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				out := cmd.OutOrStdout()
				control := &service.UploadControl{
					Progress: func(done, total int, r models.UploadResult) {
						fmt.Fprintf(out, "[%d/%d] %s\n", done, total, r.Source)
					},
				}

				stop := cancelOnInterrupt(control, cmd.ErrOrStderr())
				defer stop()

				report, err := a.Services().Editor.Upload(ctx, files, control)
				fmt.Fprintln(out, tui.RenderUploadReport(report))
				if err != nil {
					return err
				}
				if report.Cancelled {
					fmt.Fprintln(out, app.MsgUploadCancelled)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&customName, "name", "", "Base name for the stored files")

	return cmd
}

// localUploads describes local files without opening them.
func localUploads(paths []string, customName string) ([]models.UploadFile, error) {
	files := make([]models.UploadFile, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", p)
		}

		files = append(files, models.UploadFile{
			Name:       filepath.Base(p),
			CustomName: customName,
			Size:       info.Size(),
			Open:       func() (io.ReadCloser, error) { return os.Open(p) },
		})
	}
	return files, nil
}

// cancelOnInterrupt cancels control on the first interrupt. The returned
// func stops listening.
func cancelOnInterrupt(control *service.UploadControl, w io.Writer) func() {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt)

	go func() {
		select {
		case <-sigs:
			fmt.Fprintln(w, "stopping after the current file...")
			control.Cancel()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func newTrustedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "trusted [show|hide|toggle]",
		Short:     "Show or hide the trusted-by section",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"show", "hide", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			state := "toggle"
			if len(args) == 1 {
				state = args[0]
			}
			if state != "show" && state != "hide" && state != "toggle" {
				return errUnknownTrustedState
			}

			return opts.withApp(cmd.Context(), func(ctx context.Context, a *client.App) error {
				editor := a.Services().Editor
				visible := state == "show"

				var err error
				if state == "toggle" {
					visible, err = editor.ToggleTrusted(ctx)
				} else {
					err = editor.SetTrustedVisible(ctx, visible)
				}
				if err != nil {
					return err
				}

				if visible {
					fmt.Fprintln(cmd.OutOrStdout(), "Trusted-by section: shown")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Trusted-by section: hidden")
				}
				return nil
			})
		},
	}
}
