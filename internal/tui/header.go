package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/gh-forks/internal/ui"
)

func RenderHeader(repo string, rateRemaining, rateLimit int, width int, theme ui.Theme) string {
	title := " gh-forks"
	if repo != "" {
		title += " | " + repo
	}
	left := lipgloss.NewStyle().Bold(true).
		Foreground(theme.Foreground).
		Render(title)

	rate := ""
	if rateLimit > 0 {
		color := ui.ColorSuccess
		if rateRemaining < 10 {
			color = ui.ColorFailure
		} else if rateRemaining < rateLimit/5 {
			color = ui.ColorWarning
		}
		rate = lipgloss.NewStyle().Foreground(color).
			Render(fmt.Sprintf("API: %d/%d ", rateRemaining, rateLimit))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(rate)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(theme.HeaderBg).
		Width(width).
		Render(left + padding + rate)
}
