package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rileyhilliard/netmon/internal/config"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/rileyhilliard/netmon/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configInitForce  bool
	configInitGlobal bool
)

// configCmd groups the config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect the netmon config file",
}

// configInitCmd writes a commented default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default, commented config file to ./.netmon.yaml, or to
~/.config/netmon/config.yaml with --global.

Examples:
  netmon config init
  netmon config init --global
  netmon config init --force`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigFileName
		if configInitGlobal {
			path = config.GlobalConfigPath()
			if path == "" {
				return errors.New(errors.ErrConfig,
					"Can't find your home directory",
					"Set HOME, or write a project config with 'netmon config init'")
			}
		}
		return configInitCommand(cmd.OutOrStdout(), path, configInitForce)
	},
}

// configShowCmd prints the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Long: `Print the config netmon would use right now: the config file with
environment overrides applied, or the defaults when no file exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd.OutOrStdout(), appConfig, appConfigPath)
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write the global config instead of ./"+config.ConfigFileName)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func configInitCommand(w io.Writer, path string, force bool) error {
	if err := config.WriteDefault(path, force); err != nil {
		return err
	}

	display := path
	if abs, err := filepath.Abs(path); err == nil {
		display = abs
	}
	fmt.Fprintf(w, "%s Wrote %s\n", ui.SymbolSuccess, display)
	return nil
}

func configShowCommand(w io.Writer, cfg *config.Config, path string) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Fprintln(w, "# No config file found, showing defaults and environment overrides")
	} else {
		fmt.Fprintf(w, "# Loaded from %s\n", path)
	}
	_, err = w.Write(data)
	return err
}
