package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Tab      key.Binding
	Enter    key.Binding
	Back     key.Binding
	Dismiss  key.Binding
	Refresh  key.Binding
	Search   key.Binding
	Sort     key.Binding
	SortPrev key.Binding
	Reverse  key.Binding
	Open     key.Binding
	Theme    key.Binding
	History  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var Keys = KeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Dismiss:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
	SortPrev: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "prev sort column")),
	Reverse:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "reverse order")),
	Open:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "open in browser")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark/light")),
	History:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "previous repo")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
}
