package picker

import "github.com/charmbracelet/bubbles/key"

// pickKeys holds key bindings for the commit picker.
type pickKeys struct {
	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Confirm  key.Binding
	Quit     key.Binding
}

// ShortHelp returns the picker bindings for the help bar.
func (k pickKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Collapse, k.Confirm, k.Quit}
}

// FullHelp returns the picker bindings grouped for expanded help.
func (k pickKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Expand, k.Collapse},
		{k.Confirm, k.Quit},
	}
}

// PickKeyMap returns the key bindings for the picker.
func PickKeyMap() pickKeys {
	return pickKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "create fixup"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
