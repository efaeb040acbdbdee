package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/rileyhilliard/netmon/internal/ui"
)

// Detail view styles
var (
	detailContainerStyle = lipgloss.NewStyle().
				Padding(0, 2)

	detailValueCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)

	detailTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	detailBackStyle = lipgloss.NewStyle().
			Foreground(ColorAccentDim)
)

// renderDetailView renders the detail screen for the open metric.
func (m Model) renderDetailView() string {
	if m.detail == nil {
		return LabelStyle.Render("No metric selected")
	}

	var b strings.Builder
	b.WriteString(m.renderDetailHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderDetailBody())
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render(m.help.ShortHelpView(detailKeyMap{keys}.ShortHelp())))

	return detailContainerStyle.Render(b.String())
}

// renderDetailHeader renders the back hint and the metric title.
func (m Model) renderDetailHeader() string {
	back := detailBackStyle.Render("← back")

	title := m.detail.Name
	if m.detail.Known {
		spec := m.detail.Spec
		title = fmt.Sprintf("%s (%s)", spec.Name, spec.Unit)
	}

	return back + "  " + detailTitleStyle.Render(title)
}

// renderDetailBody renders the scrollable part: the error banner, the
// acceptable range, one card per value and a sparkline of the values.
func (m Model) renderDetailBody() string {
	d := m.detail
	if d == nil {
		return ""
	}

	var sections []string

	if d.Err != nil {
		sections = append(sections, renderErrorBanner(d.Err, m.contentWidth()))
	}

	if d.Known {
		sections = append(sections, LabelStyle.Render(fmt.Sprintf(
			"Acceptable range: %g to %g %s", d.Spec.AcceptMin, d.Spec.AcceptMax, d.Spec.Unit)))
	}

	if len(d.Values) == 0 {
		sections = append(sections, LabelStyle.Render("No values"))
		return strings.Join(sections, "\n\n")
	}

	cards := make([]string, 0, len(d.Values))
	for i, v := range d.Values {
		cards = append(cards, m.renderValueCard(i+1, v))
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, cards...))

	if len(d.Values) > 1 {
		sections = append(sections, LabelStyle.Render("Trend  ")+
			ui.RenderSparkline(d.Values, len(d.Values), ColorGraph))
	}

	return strings.Join(sections, "\n\n")
}

// renderValueCard renders one generated value. Values for an unknown metric
// carry no range, so they show no status.
func (m Model) renderValueCard(n int, v float64) string {
	unit := ""
	if m.detail.Known {
		unit = m.detail.Spec.Unit
	}

	line := LabelStyle.Render(fmt.Sprintf("#%d  ", n)) + renderValueLine(v, unit)
	if m.detail.Known {
		spec := m.detail.Spec
		status := metrics.Classify(v, spec.AcceptMin, spec.AcceptMax)
		line += "  " + renderStatusLine(status)
	}

	return detailValueCardStyle.Width(m.contentWidth()).Render(line)
}

// renderErrorBanner shows the message and suggestion of a structured error.
func renderErrorBanner(err error, width int) string {
	message, suggestion := errors.Parts(err)

	lines := []string{ui.SymbolFail + " " + message}
	if suggestion != "" {
		lines = append(lines, LabelStyle.Render(suggestion))
	}
	lines = append(lines, LabelStyle.Render("Showing placeholder zeros."))

	return ErrorBannerStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// contentWidth is the detail column width.
func (m Model) contentWidth() int {
	w := m.width - 6
	if w < 40 {
		w = 40
	}
	return w
}
