package desktop

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the global desktop bindings. They win over app input.
type keyMap struct {
	Quit      key.Binding
	StartMenu key.Binding
	Close     key.Binding
	Minimize  key.Binding
	Maximize  key.Binding
	Cycle     key.Binding
	Help      key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartMenu, k.Cycle, k.Close, k.Quit, k.Help}
}

// FullHelp returns keybindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartMenu, k.Cycle},
		{k.Close, k.Minimize, k.Maximize},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		StartMenu: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "start"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "minimize"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "maximize"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("ctrl+t", "ctrl+]"),
			key.WithHelp("ctrl+t", "next window"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "help"),
		),
	}
}
