package cli

import (
	"fmt"

	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/rileyhilliard/netmon/internal/ui"
	"github.com/spf13/cobra"
)

// metricsCmd lists the metric catalog
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List the metrics netmon simulates",
	Long: `List every metric with its key, unit, the range values are generated
in, and the range considered acceptable.

Any name or key in this list works with 'netmon detail'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderCatalogTable(metrics.Catalog()))
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
