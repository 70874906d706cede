package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/ui"
)

// RenderBanner draws the dismissible message box that stands in for the
// table.
func RenderBanner(msg forks.Message, width int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	body := msg.Text + "\n" + ui.StyleMuted.Render("x to dismiss")
	return "\n" + ui.BannerStyle(string(msg.Severity)).Width(inner).Render(body)
}

func renderPlaceholder(text string, width int) string {
	return "\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Width(width).Render("  "+text)
}
