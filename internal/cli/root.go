// Package cli implements the prefsctl command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/CreativeUnicorns/switcherprefs"
	"github.com/CreativeUnicorns/switcherprefs/internal/config"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type App struct {
	ConfigFile string
	Format     string

	// LogOut receives store logs. Defaults to stderr.
	LogOut io.Writer

	rt *config.Runtime
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "prefsctl",
		Short:        "Inspect and edit window switcher preferences",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Show the effective value of a preference
  prefsctl get appearanceStyle

  # Change it
  prefsctl set appearanceStyle 1

  # Back up and restore every preference
  prefsctl export > settings.yaml
  prefsctl import settings.yaml
`),
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.rt == nil {
			return nil
		}
		err := app.rt.Close()
		app.rt = nil
		return err
	}

	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/switcherprefs/config.yaml)")
	cmd.PersistentFlags().StringVarP(&app.Format, "output", "o", FormatYAML, "Output format (yaml|json)")
	// Unset flags defer to the config file and environment.
	cmd.PersistentFlags().String("backend", "", "storage backend: memory, sqlite, postgres or file")
	cmd.PersistentFlags().String("dsn", "", "database path, connection string or settings file")
	cmd.PersistentFlags().String("domain", "", "settings domain")
	cmd.PersistentFlags().String("app-version", "", "running application version used by migrations")
	cmd.PersistentFlags().String("cache", "", "read cache: memory or redis")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newGetCmd(app))
	cmd.AddCommand(newSetCmd(app))
	cmd.AddCommand(newUnsetCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDefinitionsCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newMigrateCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newAppearanceCmd(app))
	cmd.AddCommand(newBlacklistCmd(app))

	return cmd
}

// open wires the store from configuration. Unless initialize is false the
// store is initialized, which migrates old data and registers defaults.
func (app *App) open(cmd *cobra.Command, initialize bool) (*switcherprefs.Store, error) {
	if app.rt != nil {
		return app.rt.Store, nil
	}

	cfg, err := config.Load(app.ConfigFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	logOut := app.LogOut
	if logOut == nil {
		logOut = cmd.ErrOrStderr()
	}
	rt, err := config.Open(cfg, logOut)
	if err != nil {
		return nil, err
	}
	app.rt = rt

	if initialize {
		if err := rt.Store.Initialize(cmd.Context()); err != nil {
			return nil, err
		}
	}
	return rt.Store, nil
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	w := cmd.OutOrStdout()
	switch app.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", app.Format)
	}
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
