// Package cli implements the netmon command-line interface.
//
// # Command Structure
//
// The root command is "netmon". Run on its own it opens the dashboard, the
// same as "netmon monitor". The other commands print readings and exit:
//
//	netmon [monitor]        - Interactive dashboard of the six metrics
//	netmon snapshot         - Print one reading per metric
//	netmon detail [metric]  - Print fresh values for one metric
//	netmon metrics          - Print the metric catalog
//	netmon config init|show - Write or inspect .netmon.yaml
//	netmon version          - Print build information
//
// # Configuration
//
// The root pre-run hook loads the config file (see config.Find), applies the
// NETMON_* environment overrides, sets up color and debug logging, and leaves
// the result in appConfig. Command flags such as --seed or --format only
// override the config when they are set explicitly, and the merged settings
// are validated again with config.Validate.
//
// # Errors
//
// Commands return structured errors from internal/errors. Execute prints
// them to stderr and exits with status 1.
package cli
