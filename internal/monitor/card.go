package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/rileyhilliard/netmon/internal/ui"
)

// cardDividerStyle draws the thin line under the metric name.
var cardDividerStyle = lipgloss.NewStyle().
	Foreground(ColorBorder)

// renderCardDivider creates a subtle thin divider line
func renderCardDivider(width int) string {
	return cardDividerStyle.Render(strings.Repeat("─", width))
}

// renderCard renders a single summary card.
func (m Model) renderCard(r metrics.Reading, width int, selected bool) string {
	style := CardStyle.Width(width)
	if selected {
		style = CardSelectedStyle.Width(width)
	}

	// account for card padding
	innerWidth := width - 2

	status := r.Status()
	lines := []string{
		MetricNameStyle.Render(r.Name),
		renderCardDivider(innerWidth),
		renderValueLine(r.Value, r.Unit),
		renderStatusLine(status),
		LabelStyle.Render(fmt.Sprintf("acceptable %g..%g %s", r.AcceptMin, r.AcceptMax, r.Unit)),
	}

	// A single point says nothing about trend.
	if m.history.Count(r.Name) >= 2 {
		values := m.history.Get(r.Name, innerWidth)
		lines = append(lines, ui.RenderSparkline(values, innerWidth, ColorGraph))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderValueLine renders a value with its unit.
func renderValueLine(v float64, unit string) string {
	return ValueStyle.Render(fmt.Sprintf("%.2f", v)) + " " + LabelStyle.Render(unit)
}

// renderStatusLine renders the status glyph and label in the status color.
func renderStatusLine(s metrics.Status) string {
	return StatusStyle(s).Render(ui.StatusSymbol(s) + " " + s.String())
}
