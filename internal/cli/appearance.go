package cli

import (
	"github.com/spf13/cobra"
)

func newAppearanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appearance",
		Short: "Print the layout and colors derived from the appearance preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "size",
		Short: "Print the resolved size parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, store.SizeParameters(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "theme",
		Short: "Print the resolved theme parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, store.ThemeParameters(cmd.Context()))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset-size",
		Short: "Copy the medium size parameters into the size overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.ResetCustomizeSize(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, store.SizeParameters(cmd.Context()))
		},
	})

	return cmd
}
