package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/netmon/internal/config"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/rileyhilliard/netmon/internal/logger"
	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/rileyhilliard/netmon/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flags
var (
	cfgFile   string
	noColor   bool
	debugFlag bool
)

// Resolved by the root pre-run hook.
var (
	appConfig     = config.DefaultConfig()
	appConfigPath string
)

// skipConfigAnnotation marks commands that must run even when the config
// file is broken, like "config init --force".
const skipConfigAnnotation = "netmon.skip-config"

// rootDashboardFlags are the dashboard flags accepted by bare "netmon".
var rootDashboardFlags settingsFlags

// rootCmd is the base command. Without a subcommand it opens the dashboard.
var rootCmd = &cobra.Command{
	Use:   "netmon",
	Short: "Simulated 5G network metrics in your terminal",
	Long: `netmon shows simulated 5G network quality metrics (signal strength,
latency, throughput, frequency, RSRP, RSRQ) and flags each one as below,
within, or above its acceptable range.

Run without a command to open the interactive dashboard.

Examples:
  netmon
  netmon --refresh 5s
  netmon snapshot --format json
  netmon detail latency`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initGlobals(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := applyOverrides(cmd, appConfig, &rootDashboardFlags)
		if err != nil {
			return err
		}
		return monitorCommand(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.netmon.yaml, then ~/.config/netmon/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging (dashboard logs go to "+DebugLogFile+")")

	addSeedFlag(rootCmd, &rootDashboardFlags)
	addRefreshFlag(rootCmd, &rootDashboardFlags)
	addSamplesFlag(rootCmd, &rootDashboardFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if isUnknownCommandError(err) {
		err = unknownCommandError(err)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// initGlobals applies --debug, loads the config and picks the color mode.
func initGlobals(cmd *cobra.Command) error {
	logger.SetDebug(debugFlag)

	cfg := config.DefaultConfig()
	path := ""
	if cmd.Annotations[skipConfigAnnotation] == "" {
		loaded, found, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		cfg, path = loaded, found
	}
	appConfig = cfg
	appConfigPath = path

	if path != "" {
		logger.Default().Debug("config loaded from %s", path)
	}

	mode := cfg.Output.Color
	if noColor {
		mode = ui.ColorModeNever
	}
	ui.SetColorMode(mode, term.IsTerminal(int(os.Stdout.Fd())))

	return nil
}

// isUnknownCommandError reports whether cobra rejected the command line
// itself rather than a command failing.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's
// `unknown command "foo" for "netmon"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// unknownCommandError turns a cobra usage error into a structured one. A
// metric name typed as a command points at "netmon detail".
func unknownCommandError(err error) error {
	name := extractUnknownCommand(err)
	if name == "" {
		return errors.WrapWithCode(err, errors.ErrUI,
			"That command line didn't parse",
			"Run 'netmon --help' to see commands and flags.")
	}

	if spec, ok := metrics.Lookup(name); ok {
		return errors.WrapWithCode(err, errors.ErrUI,
			fmt.Sprintf("Unknown command '%s'", name),
			fmt.Sprintf("To look at that metric, run: netmon detail %s", spec.Key))
	}

	return errors.WrapWithCode(err, errors.ErrUI,
		fmt.Sprintf("Unknown command '%s'", name),
		"Run 'netmon --help' to see available commands.")
}
