// Package render draws timelines, statistics and status lines for the
// terminal with lipgloss.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")
	colorBorder  = lipgloss.Color("#4B5563")
	colorLived   = lipgloss.Color("#9CA3AF")
	colorFuture  = lipgloss.Color("#374151")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle   = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)

	livedStyle   = lipgloss.NewStyle().Foreground(colorLived)
	futureStyle  = lipgloss.NewStyle().Foreground(colorFuture)
	currentStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true).Reverse(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Width(18)
)

var (
	white    = colorful.Color{R: 1, G: 1, B: 1}
	slate    = mustHex("#374151")
	fallback = mustHex("#8B5A2B")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseColor falls back to the neutral "other" colour for malformed input.
func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

func swatch(hex, glyph string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(parseColor(hex).Hex())).Render(glyph)
}
