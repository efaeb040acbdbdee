package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/netmon/internal/metrics"
	"github.com/stretchr/testify/assert"
)

// stripANSI removes SGR escape sequences so assertions see plain text.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func TestStatusSymbol(t *testing.T) {
	tests := []struct {
		status metrics.Status
		expect string
	}{
		{metrics.StatusWithin, SymbolWithin},
		{metrics.StatusBelow, SymbolBelow},
		{metrics.StatusAbove, SymbolAbove},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expect, StatusSymbol(tt.status))
		})
	}

	assert.NotEqual(t, StatusSymbol(metrics.StatusBelow), StatusSymbol(metrics.StatusAbove))
}

func TestSetColorMode(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	SetColorMode(ColorModeNever, true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	SetColorMode(ColorModeAlways, false)
	assert.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())

	SetColorMode(ColorModeAuto, false)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-55.00 dBm", FormatValue(-55, "dBm"))
	assert.Equal(t, "4.20 GHz", FormatValue(4.2, "GHz"))
	assert.Equal(t, "0.00", FormatValue(0, ""))
}
