// Package monitor implements the netmon TUI: a summary screen of simulated 5G
// metric cards and a detail screen with fresh readings for one metric.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the current snapshot, selection, view mode and detail state
//   - Update: Processes messages (keystrokes, refresh ticks, navigation)
//   - View: Renders the current state to a string for display
//
// # Navigation
//
// Navigation goes through messages so that the summary and detail screens
// only meet at two points:
//
//	SelectMetric(name) - summary -> detail for the named metric
//	Back()             - detail -> summary
//
// Opening a detail generates fresh values with the shared Generator. It never
// touches the summary snapshot, so returning shows the same six readings.
//
// # Refresh
//
// The summary is regenerated on 'r', and on a timer when Options.Refresh is
// non-zero. Timer ticks that arrive while a detail is open are skipped. Each
// refresh pushes the new values into History, which feeds the card sparklines.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C      - Quit
//	r              - Refresh (new snapshot, or new detail values)
//	j/k, ↑/↓       - Move selection / scroll detail
//	Home/End       - First / last metric
//	Enter          - Open selected metric
//	Esc, Backspace - Back to summary
//	?              - Toggle help overlay
package monitor
