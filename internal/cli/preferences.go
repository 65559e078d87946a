package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CreativeUnicorns/switcherprefs"
)

func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, ok := switcherprefs.LookupDefinition(args[0]); !ok && args[0] != switcherprefs.PreferencesVersionKey {
				return writeErr(cmd, fmt.Errorf("%s: %w", args[0], switcherprefs.ErrPreferenceNotDefined))
			}
			v, err := store.GetString(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a preference value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SetString(cmd.Context(), args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
}

func newUnsetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>...",
		Short: "Remove persisted values so they fall back to their defaults",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			for _, key := range args {
				if err := store.Remove(cmd.Context(), key); err != nil {
					return writeErr(cmd, err)
				}
			}
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var persistedOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every preference with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			if persistedOnly {
				all, err := store.All(ctx)
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, all)
			}
			out := make(map[string]string, len(switcherprefs.Definitions()))
			for _, d := range switcherprefs.Definitions() {
				v, err := store.GetString(ctx, d.Key)
				if err != nil {
					return writeErr(cmd, err)
				}
				out[d.Key] = v
			}
			return writeOut(cmd, app, out)
		},
	}
	cmd.Flags().BoolVar(&persistedOnly, "persisted", false, "Only print values stored in the domain")
	return cmd
}

func newDefinitionsCmd(app *App) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "definitions",
		Short: "Print the known preferences and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var defs []switcherprefs.Definition
			for _, d := range switcherprefs.Definitions() {
				if category == "" || d.Category == category {
					defs = append(defs, d)
				}
			}
			return writeOut(cmd, app, defs)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only print one category (shortcuts|controls|appearance|general|blacklist)")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every persisted preference of the domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return writeErr(cmd, fmt.Errorf("refusing to reset without --force"))
			}
			store, err := app.open(cmd, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.ResetAll(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Confirm the reset")
	return cmd
}

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade data written by an older version and stamp the running version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, false)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			from, err := store.GetString(ctx, switcherprefs.PreferencesVersionKey)
			if err != nil {
				from = ""
			}
			if err := store.RemoveCorrupted(ctx); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.Migrate(ctx); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]string{
				"from": from,
				"to":   store.AppVersion(),
			})
		},
	}
}
