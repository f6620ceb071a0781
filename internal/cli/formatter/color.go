package formatter

import (
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBg     = lipgloss.Color("#3c3836")
)

// Predefined lipgloss styles.
var (
	StyleGreen    = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow   = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed      = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue     = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg       = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold     = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleSelected = lipgloss.NewStyle().Foreground(ColorYellow).Background(ColorBg).Bold(true)
)

// PhaseStyle returns the accent style for a timer phase: red for focus,
// green for short breaks, blue for long ones.
func PhaseStyle(p domain.Phase) lipgloss.Style {
	switch p {
	case domain.PhaseFocus:
		return StyleRed
	case domain.PhaseShortBreak:
		return StyleGreen
	case domain.PhaseLongBreak:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PhaseBanner renders the phase's display name in its accent color, bold.
func PhaseBanner(p domain.Phase) string {
	return PhaseStyle(p).Bold(true).Render(p.DisplayName())
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
