package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/netmon/internal/config"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/rileyhilliard/netmon/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var detailFlags settingsFlags

// detailCmd prints fresh values for one metric
var detailCmd = &cobra.Command{
	Use:   "detail [metric]",
	Short: "Print fresh values for one metric",
	Long: `Generate several fresh values for one metric and classify each one.

The metric can be given by name or key (see 'netmon metrics'). Without an
argument netmon asks which metric to show, as long as stdin is a terminal.

Examples:
  netmon detail latency
  netmon detail "Signal Strength" --samples 10
  netmon detail rsrp -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := applyOverrides(cmd, appConfig, &detailFlags)
		if err != nil {
			return err
		}

		name, err := resolveMetricArg(args)
		if err != nil {
			return err
		}

		return detailCommand(cmd.OutOrStdout(), newGenerator(cfg), name, cfg.DetailSamples, cfg.Output.Format)
	},
}

func init() {
	addSeedFlag(detailCmd, &detailFlags)
	addSamplesFlag(detailCmd, &detailFlags)
	addFormatFlag(detailCmd, &detailFlags)
	rootCmd.AddCommand(detailCmd)
}

// Replaced in tests.
var (
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	pickMetric      = promptMetric
)

// DetailReport is the machine-readable form of a detail.
type DetailReport struct {
	Metric    string        `json:"metric" yaml:"metric"`
	Unit      string        `json:"unit" yaml:"unit"`
	AcceptMin float64       `json:"accept_min" yaml:"accept_min"`
	AcceptMax float64       `json:"accept_max" yaml:"accept_max"`
	Values    []DetailValue `json:"values" yaml:"values"`
}

// DetailValue is one generated value and its classification.
type DetailValue struct {
	Value  float64 `json:"value" yaml:"value"`
	Status string  `json:"status" yaml:"status"`
}

// resolveMetricArg returns the metric named on the command line, or asks
// for one when stdin is a terminal.
func resolveMetricArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if !stdinIsTerminal() {
		return "", errors.New(errors.ErrMetric,
			"No metric given",
			fmt.Sprintf("Name one, e.g. 'netmon detail latency'. Known metrics: %s", strings.Join(metrics.Names(), ", ")))
	}

	return pickMetric()
}

// promptMetric shows a picker of every metric in the catalog.
func promptMetric() (string, error) {
	catalog := metrics.Catalog()
	options := make([]huh.Option[string], len(catalog))
	for i, spec := range catalog {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", spec.Name, spec.Unit), spec.Name)
	}

	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which metric?").
				Options(options...).
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrUI,
			"Couldn't get your selection",
			"Try again or name the metric: netmon detail <metric>")
	}
	return name, nil
}

// detailCommand generates n values for name and renders them. Unknown
// names fail with the generator's ErrMetric error.
func detailCommand(w io.Writer, gen *metrics.Generator, name string, n int, format string) error {
	values, err := gen.Recent(name, n)
	if err != nil {
		return err
	}

	spec, _ := metrics.Lookup(name)
	report := newDetailReport(spec, values)

	switch format {
	case config.FormatJSON:
		return writeJSON(w, report)
	case config.FormatYAML:
		return writeYAML(w, report)
	}

	writeDetailTable(w, spec, values)
	return nil
}

func newDetailReport(spec metrics.Spec, values []float64) DetailReport {
	report := DetailReport{
		Metric:    spec.Name,
		Unit:      spec.Unit,
		AcceptMin: spec.AcceptMin,
		AcceptMax: spec.AcceptMax,
		Values:    make([]DetailValue, len(values)),
	}
	for i, v := range values {
		report.Values[i] = DetailValue{
			Value:  v,
			Status: metrics.Classify(v, spec.AcceptMin, spec.AcceptMax).String(),
		}
	}
	return report
}

var detailColumns = []ui.TableColumn{
	{Title: "#", Width: 3},
	{Title: "Value", Width: 16},
	{Title: "Status", Width: 20},
}

func writeDetailTable(w io.Writer, spec metrics.Spec, values []float64) {
	within := 0
	rows := make([][]string, len(values))
	for i, v := range values {
		status := metrics.Classify(v, spec.AcceptMin, spec.AcceptMax)
		if status == metrics.StatusWithin {
			within++
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			ui.FormatValue(v, spec.Unit),
			ui.StatusSymbol(status) + " " + status.String(),
		}
	}

	fmt.Fprint(w, ui.RenderHeader(ui.HeaderInfo{
		Title:    "detail",
		Subtitle: fmt.Sprintf("%s (%s)", spec.Name, spec.Unit),
		Detail:   fmt.Sprintf("acceptable %g..%g", spec.AcceptMin, spec.AcceptMax),
	}))
	if len(rows) == 0 {
		return
	}

	fmt.Fprintln(w, ui.RenderSimpleTable(detailColumns, rows))
	if len(values) > 1 {
		fmt.Fprintf(w, "\ntrend %s\n", ui.RenderSparkline(values, len(values), ui.ColorInfo))
	}
	fmt.Fprintf(w, "\n%s\n", ui.RenderVerdict(within, len(values), "value"))
}
