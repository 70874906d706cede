package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Theme is the palette of one colour scheme.
type Theme struct {
	Name       string
	Foreground lipgloss.Color
	Background lipgloss.Color
	HeaderBg   lipgloss.Color
	StatusBg   lipgloss.Color
	Border     lipgloss.Color
	Selected   lipgloss.Color
	SelectedFg lipgloss.Color
	Muted      lipgloss.Color
}

var (
	DarkTheme = Theme{
		Name:       "dark",
		Foreground: lipgloss.Color("#F9FAFB"),
		Background: lipgloss.Color("#111827"),
		HeaderBg:   ColorHighlight,
		StatusBg:   lipgloss.Color("#111827"),
		Border:     ColorBorder,
		Selected:   ColorPrimary,
		SelectedFg: lipgloss.Color("#F9FAFB"),
		Muted:      ColorMuted,
	}
	LightTheme = Theme{
		Name:       "light",
		Foreground: lipgloss.Color("#111827"),
		Background: lipgloss.Color("#F9FAFB"),
		HeaderBg:   lipgloss.Color("#E5E7EB"),
		StatusBg:   lipgloss.Color("#F3F4F6"),
		Border:     lipgloss.Color("#D1D5DB"),
		Selected:   lipgloss.Color("#DDD6FE"),
		SelectedFg: lipgloss.Color("#1F2937"),
		Muted:      lipgloss.Color("#4B5563"),
	}
)

// ThemeFor maps "dark" or "light" to a palette. Anything else is dark.
func ThemeFor(name string) Theme {
	if name == LightTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

// Toggle returns the other palette.
func (t Theme) Toggle() Theme {
	if t.Name == DarkTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

func (t Theme) Pane(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// BannerStyle styles the message box for "info" or "danger".
func BannerStyle(severity string) lipgloss.Style {
	color := ColorInfo
	if severity == "danger" {
		color = ColorFailure
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Padding(0, 1)
}
