package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
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
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for a recorded audit status.
func StatusStyle(s domain.AuditStatus) lipgloss.Style {
	switch s {
	case domain.StatusPass:
		return StyleGreen
	case domain.StatusFail:
		return StyleRed
	case domain.StatusAbsent:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusLabel renders a colored status cell. Unset slots show a dim dash so
// open work stays visible in the table.
func StatusLabel(s domain.AuditStatus) string {
	switch s {
	case domain.StatusPass:
		return StyleGreen.Render("PASS")
	case domain.StatusFail:
		return StyleRed.Render("FAIL")
	case domain.StatusAbsent:
		return StyleYellow.Render("ABSENT")
	default:
		return StyleDim.Render("—")
	}
}
