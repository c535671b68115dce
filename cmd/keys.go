package cmd

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the application. It satisfies key.Map so
// it can be passed directly to bubbles/help.Model for automatic rendering.
type keyMap struct {
	Logbook key.Binding
	Sample  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Logbook, k.Sample, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view (columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Logbook, k.Sample}, // first column
		{k.Help, k.Quit},      // second column
	}
}

// keys is the exported set of key bindings used across the app.
var keys = keyMap{
	Logbook: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "logbook view"),
	),
	Sample: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "new sample"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
