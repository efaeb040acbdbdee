package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/netmon/internal/config"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/spf13/cobra"
)

// settingsFlags holds the per-command flags that override config values.
// Each command registers only the ones it accepts.
type settingsFlags struct {
	Seed    int64
	Refresh string
	Samples int
	Format  string
}

func addSeedFlag(cmd *cobra.Command, f *settingsFlags) {
	cmd.Flags().Int64Var(&f.Seed, "seed", 0, "random seed for reproducible values (0 seeds from the clock)")
}

func addRefreshFlag(cmd *cobra.Command, f *settingsFlags) {
	cmd.Flags().StringVar(&f.Refresh, "refresh", "0", "auto-refresh interval (e.g., 2s, 1m; 0 disables)")
}

func addSamplesFlag(cmd *cobra.Command, f *settingsFlags) {
	cmd.Flags().IntVar(&f.Samples, "samples", config.DefaultConfig().DetailSamples, "values generated per detail view")
}

func addFormatFlag(cmd *cobra.Command, f *settingsFlags) {
	cmd.Flags().StringVarP(&f.Format, "format", "o", config.FormatTable, "output format: table, json, or yaml")
}

// applyOverrides copies base and replaces the fields whose flags were set
// explicitly on cmd, then validates the result.
func applyOverrides(cmd *cobra.Command, base *config.Config, f *settingsFlags) (*config.Config, error) {
	cfg := *base
	flags := cmd.Flags()

	if flags.Changed("seed") {
		cfg.Seed = f.Seed
	}
	if flags.Changed("samples") {
		cfg.DetailSamples = f.Samples
	}
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(f.Format))
	}
	if flags.Changed("refresh") {
		d, err := ParseRefresh(f.Refresh)
		if err != nil {
			return nil, err
		}
		cfg.Refresh = d
	}

	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseRefresh parses a refresh interval. "0" and "" turn auto-refresh off.
func ParseRefresh(flag string) (time.Duration, error) {
	if flag == "" || flag == "0" {
		return 0, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 2s, 30s, or 1m. Use 0 to refresh manually.")
	}
	return d, nil
}
