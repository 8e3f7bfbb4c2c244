// Package components provides shared UI pieces for the TUI.
package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the converter. Every other key edits the
// input.
type KeyMap struct {
	Copy  key.Binding
	Clear key.Binding
	Tips  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// Keys is the default key map.
var Keys = KeyMap{
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy output"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear all"),
	),
	Tips: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "tips"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Clear, k.Tips, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.Clear},
		{k.Tips, k.Help, k.Quit},
	}
}
