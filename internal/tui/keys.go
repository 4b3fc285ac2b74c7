package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the carousel bindings.
type KeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Tap     key.Binding
	Open    key.Binding
	Jump    key.Binding
	Logout  key.Binding
	Regions key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev gate")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next gate")),
		Tap:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter×2", "enter gate")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open gate")),
		Jump:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Logout:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "log out")),
		Regions: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "toggle regions")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Tap, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump},
		{k.Tap, k.Open, k.Back},
		{k.Regions, k.Logout, k.Help, k.Quit},
	}
}
