package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values.
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorLocked  = colorPeach
	colorMuted   = colorOverlay1
)

// AllPaletteColors returns every palette color used by the UI.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorPink, colorMauve, colorRed, colorPeach, colorYellow,
		colorGreen, colorTeal, colorSky, colorLavender,
		colorText, colorSubtext0, colorOverlay1, colorOverlay0,
		colorSurface1, colorBase,
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	infoStyle     = lipgloss.NewStyle().Foreground(colorInfo)
	lockedStyle   = lipgloss.NewStyle().Foreground(colorLocked).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(1, 2)
)

// accentColor returns the gate accent or the default accent when unset.
func accentColor(hex string) lipgloss.Color {
	if hex == "" {
		return colorAccent
	}
	return lipgloss.Color(hex)
}
