package tui

import (
	"github.com/cli/go-gh/v2/pkg/term"

	"github.com/altinukshini/gh-forks/internal/config"
	"github.com/altinukshini/gh-forks/internal/ui"
)

// ResolveTheme picks the palette for a configured theme name. "auto" asks
// the terminal for its background.
func ResolveTheme(name string) ui.Theme {
	switch name {
	case config.ThemeDark, config.ThemeLight:
		return ui.ThemeFor(name)
	}
	if term.FromEnv().Theme() == config.ThemeLight {
		return ui.LightTheme
	}
	return ui.DarkTheme
}
