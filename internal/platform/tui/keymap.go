package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the terminal key bindings.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Start key.Binding // Help entry only: any key counts as a press
	Quit  key.Binding
}

// ShortHelp returns bindings for the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("any key", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message into a game key.
// Directional bindings map to core.KeyLeft and core.KeyRight; every other
// key passes through under its own name. Returns quit for the quit binding.
func (k KeyMap) MapKey(msg tea.KeyMsg) (gameKey core.Key, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return "", true
	case key.Matches(msg, k.Left):
		return core.KeyLeft, false
	case key.Matches(msg, k.Right):
		return core.KeyRight, false
	}
	return core.Key(msg.String()), false
}
