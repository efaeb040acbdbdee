package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/netmon/internal/config"
	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/rileyhilliard/netmon/internal/ui"
	"github.com/spf13/cobra"
)

var snapshotFlags settingsFlags

// snapshotCmd prints one reading per metric
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one reading for every metric",
	Long: `Generate one value per metric, classify each against its acceptable
range, and print the result.

Examples:
  netmon snapshot
  netmon snapshot --format json
  netmon snapshot --seed 7 -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := applyOverrides(cmd, appConfig, &snapshotFlags)
		if err != nil {
			return err
		}
		snap := newGenerator(cfg).Snapshot()
		return writeSnapshot(cmd.OutOrStdout(), snap, cfg.Output.Format)
	},
}

func init() {
	addSeedFlag(snapshotCmd, &snapshotFlags)
	addFormatFlag(snapshotCmd, &snapshotFlags)
	rootCmd.AddCommand(snapshotCmd)
}

// writeSnapshot renders a snapshot in the requested format.
func writeSnapshot(w io.Writer, snap metrics.Snapshot, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, snap)
	case config.FormatYAML:
		return writeYAML(w, snap)
	}

	fmt.Fprint(w, ui.RenderHeader(ui.HeaderInfo{
		Title:    "snapshot",
		Subtitle: snap.ID,
		Detail:   "taken " + snap.TakenAt.Format("2006-01-02 15:04:05"),
	}))
	fmt.Fprintln(w, ui.RenderReadingsTable(snap.Readings))
	fmt.Fprintf(w, "\n%s\n", ui.RenderVerdict(snap.Within(), len(snap.Readings), "metric"))
	return nil
}
