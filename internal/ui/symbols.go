package ui

import "github.com/rileyhilliard/netmon/internal/metrics"

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWithin  = "●"
	SymbolBelow   = "▼"
	SymbolAbove   = "▲"
)

// StatusSymbol returns the glyph for a classified reading.
func StatusSymbol(s metrics.Status) string {
	switch s {
	case metrics.StatusBelow:
		return SymbolBelow
	case metrics.StatusAbove:
		return SymbolAbove
	default:
		return SymbolWithin
	}
}
