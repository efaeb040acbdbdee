package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Title    string // Command being shown (e.g., "snapshot")
	Subtitle string // Optional main line (e.g., "Latency (ms)")
	Detail   string // Optional muted line (e.g., snapshot ID and time)
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the header printed above table output.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary)

	detailStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	var output strings.Builder

	// Title line: "netmon snapshot"
	output.WriteString(titleStyle.Render("netmon"))
	if info.Title != "" {
		output.WriteString(" ")
		output.WriteString(titleStyle.Render(info.Title))
	}
	output.WriteString("\n")

	if info.Subtitle != "" {
		output.WriteString(subtitleStyle.Render(info.Subtitle))
		output.WriteString("\n")
	}

	if info.Detail != "" {
		output.WriteString(detailStyle.Render(info.Detail))
		output.WriteString("\n")
	}

	output.WriteString(detailStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
