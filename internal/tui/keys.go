package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Summary key.Binding
	Months  key.Binding
	Compare key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next scenario"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev scenario"),
		),
		Summary: key.NewBinding(
			key.WithKeys("1", "s"),
			key.WithHelp("1/s", "summary"),
		),
		Months: key.NewBinding(
			key.WithKeys("2", "m"),
			key.WithHelp("2/m", "months"),
		),
		Compare: key.NewBinding(
			key.WithKeys("3", "c"),
			key.WithHelp("3/c", "compare"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Summary, k.Months, k.Compare, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Summary, k.Months, k.Compare},
		{k.Help, k.Quit},
	}
}
