package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/gh-forks/internal/ui"
)

func RenderStatusBar(status, hints string, width int, theme ui.Theme) string {
	left := lipgloss.NewStyle().Foreground(theme.Muted).Render("  " + status)

	help := lipgloss.NewStyle().Foreground(theme.Muted).
		Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(theme.StatusBg).
		Width(width).
		Render(left + padding + help)
}
