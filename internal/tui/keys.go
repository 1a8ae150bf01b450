package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the terminal front-end
type KeyMap struct {
	// Cursor
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Editing
	Place  key.Binding
	Erase  key.Binding
	Random key.Binding

	// Run control
	Start  key.Binding
	Reset  key.Binding
	Revert key.Binding

	// Display
	Stats key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "place cell"),
		),
		Erase: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "erase cell"),
		),
		Random: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "random soup"),
		),
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Revert: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "revert"),
		),
		Stats: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle stats"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Reset, k.Revert, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Erase, k.Random},
		{k.Start, k.Reset, k.Revert},
		{k.Stats, k.Help, k.Quit},
	}
}
