package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CreativeUnicorns/switcherprefs"
)

func newBlacklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blacklist",
		Short: "Show or edit the per-application blacklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, store.Blacklist(cmd.Context()))
		},
	}
	cmd.AddCommand(newBlacklistAddCmd(app))
	cmd.AddCommand(newBlacklistRemoveCmd(app))
	return cmd
}

func newBlacklistAddCmd(app *App) *cobra.Command {
	var hide, ignore string
	cmd := &cobra.Command{
		Use:   "add <bundle-identifier>",
		Short: "Add or replace the entry of an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := switcherprefs.BlacklistEntry{BundleIdentifier: args[0]}
			if err := entry.Hide.UnmarshalText([]byte(hide)); err != nil {
				return writeErr(cmd, fmt.Errorf("--hide: %w", err))
			}
			if err := entry.Ignore.UnmarshalText([]byte(ignore)); err != nil {
				return writeErr(cmd, fmt.Errorf("--ignore: %w", err))
			}

			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			entries := store.Blacklist(ctx)
			replaced := false
			for i := range entries {
				if entries[i].BundleIdentifier == entry.BundleIdentifier {
					entries[i] = entry
					replaced = true
				}
			}
			if !replaced {
				entries = append(entries, entry)
			}
			if err := store.SetBlacklist(ctx, entries); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&hide, "hide", "none", "When to hide the application (none|always|whenNoOpenWindow)")
	cmd.Flags().StringVar(&ignore, "ignore", "none", "When to ignore the shortcuts (none|always|whenFullscreen)")
	return cmd
}

func newBlacklistRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <bundle-identifier>",
		Short: "Remove the entry of an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			var kept []switcherprefs.BlacklistEntry
			for _, e := range store.Blacklist(ctx) {
				if e.BundleIdentifier != args[0] {
					kept = append(kept, e)
				}
			}
			if err := store.SetBlacklist(ctx, kept); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
}
