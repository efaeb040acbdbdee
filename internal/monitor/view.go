package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card sizing
const (
	defaultCardWidth = 34
	minCardWidth     = 24
)

// renderSummary renders the list of metric cards.
func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.renderCards())

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title with snapshot time and the in-range count.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("netmon")

	taken := "no snapshot"
	if !m.snapshot.TakenAt.IsZero() {
		taken = m.snapshot.TakenAt.Format("15:04:05")
	}

	within := m.snapshot.Within()
	total := len(m.snapshot.Readings)
	countColor := ColorHealthy
	if within < total {
		countColor = ColorWarning
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(fmt.Sprintf(" | 5G metrics | taken %s | ", taken))
	count := lipgloss.NewStyle().
		Foreground(countColor).
		Render(fmt.Sprintf("%d/%d within acceptable", within, total))

	header := title + stats + count
	if m.opts.Refresh > 0 {
		header += LabelStyle.Render(fmt.Sprintf(" | every %s", m.opts.Refresh))
	}
	return HeaderStyle.Render(header)
}

// renderCards renders one card per reading.
func (m Model) renderCards() string {
	if len(m.snapshot.Readings) == 0 {
		return LabelStyle.Render("No readings")
	}

	cardWidth := m.calculateCardWidth()

	cards := make([]string, 0, len(m.snapshot.Readings))
	for i, r := range m.snapshot.Readings {
		cards = append(cards, m.renderCard(r, cardWidth, i == m.selected))
	}

	return m.layoutCards(cards, cardWidth)
}

// calculateCardWidth picks a card width that fits the terminal.
func (m Model) calculateCardWidth() int {
	if m.width == 0 || m.width >= defaultCardWidth+4 {
		return defaultCardWidth
	}
	if w := m.width - 4; w > minCardWidth {
		return w
	}
	return minCardWidth
}

// layoutCards flows cards into as many columns as the width allows.
func (m Model) layoutCards(cards []string, cardWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	cardsPerRow := 1
	if m.width > 0 {
		// margin + border
		effectiveCardWidth := cardWidth + 3
		cardsPerRow = m.width / effectiveCardWidth
		if cardsPerRow < 1 {
			cardsPerRow = 1
		}
	}

	var rows []string
	for i := 0; i < len(cards); i += cardsPerRow {
		end := i + cardsPerRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the key hints for the summary.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.ShortHelpView(keys.ShortHelp()))
}
