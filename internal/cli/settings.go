package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print every preference as a typed settings document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, store.Snapshot(cmd.Context()))
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Apply a settings document; omitted fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			store, err := app.open(cmd, true)
			if err != nil {
				return writeErr(cmd, err)
			}

			// YAML is a superset of JSON, so exports in either format load here.
			st := store.Snapshot(cmd.Context())
			if err := yaml.Unmarshal(data, &st); err != nil {
				return writeErr(cmd, fmt.Errorf("parse %s: %w", args[0], err))
			}
			written, err := store.Apply(cmd.Context(), st)
			if err != nil {
				return writeErr(cmd, err)
			}
			if written == nil {
				written = []string{}
			}
			return writeOut(cmd, app, map[string][]string{"written": written})
		},
	}
}
