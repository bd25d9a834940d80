package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, true-color hex values.
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	validStyle      = lipgloss.NewStyle().Foreground(colorSuccess)
	invalidStyle    = lipgloss.NewStyle().Foreground(colorError)
	hintStyle       = lipgloss.NewStyle().Foreground(colorWarning)
	statusStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorError)
	footerStyle     = lipgloss.NewStyle().Foreground(colorOverlay0)
	underlineStyle  = lipgloss.NewStyle().Foreground(colorSurface2)
	underlineActive = lipgloss.NewStyle().Foreground(colorFocus)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 2)
	buttonDisabledStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				Background(colorSurface1).
				Padding(0, 2)
)
