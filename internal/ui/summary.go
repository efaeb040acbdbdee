package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/netmon/internal/util"
)

// RenderVerdict renders the one-line result under a table of classified
// values: a success line when all of them are within acceptable, otherwise
// an error line counting the ones outside. Returns "" for an empty table.
func RenderVerdict(within, total int, noun string) string {
	if total <= 0 {
		return ""
	}

	plural := util.Pluralize(total, noun, noun+"s")
	outside := total - within
	if outside <= 0 {
		return lipgloss.NewStyle().Foreground(ColorSuccess).
			Render(fmt.Sprintf("%s All %d %s within acceptable", SymbolSuccess, total, plural))
	}

	return lipgloss.NewStyle().Foreground(ColorError).
		Render(fmt.Sprintf("%s %d of %d %s outside acceptable", SymbolFail, outside, total, plural))
}
