package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/netmon/internal/config"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/rileyhilliard/netmon/internal/logger"
	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/rileyhilliard/netmon/internal/monitor"
	"github.com/spf13/cobra"
)

// DebugLogFile receives log output while the dashboard owns the terminal.
const DebugLogFile = "netmon-debug.log"

var monitorFlags settingsFlags

// monitorCmd starts the TUI dashboard
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Interactive dashboard of simulated 5G metrics",
	Long: `Open the interactive dashboard: one card per metric with its value,
unit, and whether it is below, within, or above the acceptable range.
Select a card to see five freshly generated values for that metric.

Keyboard shortcuts:
  q / Ctrl+C     Quit
  r              Refresh (new readings)
  up/k, down/j   Select metric
  Home / End     First / last metric
  Enter          Open metric detail
  Esc            Back to the summary
  ?              Show help

Examples:
  netmon monitor
  netmon monitor --refresh 5s
  netmon monitor --seed 42 --samples 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := applyOverrides(cmd, appConfig, &monitorFlags)
		if err != nil {
			return err
		}
		return monitorCommand(cfg)
	},
}

func init() {
	addSeedFlag(monitorCmd, &monitorFlags)
	addRefreshFlag(monitorCmd, &monitorFlags)
	addSamplesFlag(monitorCmd, &monitorFlags)
	rootCmd.AddCommand(monitorCmd)
}

// monitorCommand runs the dashboard until the user quits.
func monitorCommand(cfg *config.Config) error {
	// The alt screen owns stdout, so debug output goes to a file.
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(DebugLogFile, "debug")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrUI,
				"Couldn't open the debug log",
				"Check that you can write to "+DebugLogFile)
		}
		defer f.Close()
	}

	model := monitor.NewModel(newGenerator(cfg), dashboardOptions(cfg))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"The dashboard stopped unexpectedly",
			"Make sure you're running netmon in an interactive terminal.")
	}
	return nil
}

// dashboardOptions maps config values onto the dashboard.
func dashboardOptions(cfg *config.Config) monitor.Options {
	return monitor.Options{
		DetailSamples: cfg.DetailSamples,
		HistorySize:   cfg.History,
		Refresh:       cfg.Refresh,
		Logger:        logger.Default(),
	}
}

// newGenerator seeds a generator from the config.
func newGenerator(cfg *config.Config) *metrics.Generator {
	if cfg.Seed != 0 {
		logger.Default().Debug("using seed %d", cfg.Seed)
	}
	return metrics.NewGenerator(metrics.NewSource(cfg.Seed))
}
