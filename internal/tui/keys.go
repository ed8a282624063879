package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the bindings the game responds to. Everything else goes to
// the guess field.
type keyMap struct {
	Guess         key.Binding
	NewGame       key.Binding
	RangeUp       key.Binding
	RangeDown     key.Binding
	RangeUpFast   key.Binding
	RangeDownFast key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Guess: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new game"),
		),
		RangeUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "max ±1"),
		),
		RangeDown: key.NewBinding(
			key.WithKeys("down"),
		),
		RangeUpFast: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup/pgdn", "max ±step"),
		),
		RangeDownFast: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.NewGame, k.RangeUp, k.RangeUpFast, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.NewGame},
		{k.RangeUp, k.RangeUpFast},
		{k.Quit},
	}
}
