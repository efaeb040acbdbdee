package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/netmon/internal/metrics"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorMuted),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	ts := DefaultTableStyle()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = ts.Cell
	// Unfocused tables still highlight the cursor row; keep it plain.
	s.Selected = ts.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// ReadingColumns are the columns used by RenderReadingsTable.
var ReadingColumns = []TableColumn{
	{Title: "Metric", Width: 16},
	{Title: "Value", Width: 16},
	{Title: "Acceptable", Width: 20},
	{Title: "Status", Width: 20},
}

// RenderReadingsTable renders readings with their acceptable range and status.
// Cells are plain text because bubbles table truncates on byte width.
func RenderReadingsTable(readings []metrics.Reading) string {
	rows := make([][]string, len(readings))
	for i, r := range readings {
		rows[i] = []string{
			r.Name,
			FormatValue(r.Value, r.Unit),
			fmt.Sprintf("%s..%s", formatNumber(r.AcceptMin), formatNumber(r.AcceptMax)),
			StatusSymbol(r.Status()) + " " + r.Status().String(),
		}
	}
	return RenderSimpleTable(ReadingColumns, rows)
}

// CatalogColumns are the columns used by RenderCatalogTable.
var CatalogColumns = []TableColumn{
	{Title: "Metric", Width: 16},
	{Title: "Key", Width: 11},
	{Title: "Unit", Width: 5},
	{Title: "Generated", Width: 16},
	{Title: "Acceptable", Width: 16},
}

// RenderCatalogTable renders the metric catalog.
func RenderCatalogTable(specs []metrics.Spec) string {
	rows := make([][]string, len(specs))
	for i, s := range specs {
		rows[i] = []string{
			s.Name,
			s.Key,
			s.Unit,
			fmt.Sprintf("[%s, %s)", formatNumber(s.GenMin), formatNumber(s.GenMax)),
			fmt.Sprintf("[%s, %s]", formatNumber(s.AcceptMin), formatNumber(s.AcceptMax)),
		}
	}
	return RenderSimpleTable(CatalogColumns, rows)
}

// FormatValue renders a value with two decimals followed by its unit.
func FormatValue(v float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}

// formatNumber drops trailing zeros for range bounds (-100, 2.4).
func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}
