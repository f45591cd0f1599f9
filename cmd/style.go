package cmd

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette — kid-friendly, bright but not garish
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Vivid Purple
	colorAccent  = lipgloss.Color("#F97316") // Orange
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBar     = lipgloss.Color("#14B8A6") // Teal
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleWarn = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleBarFilled = lipgloss.NewStyle().
			Foreground(colorBar)
)

// renderBar draws a fixed-width progress bar for a fraction in [0,1].
func renderBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return styleBarFilled.Render(strings.Repeat("█", filled)) +
		styleDim.Render(strings.Repeat("░", width-filled))
}
