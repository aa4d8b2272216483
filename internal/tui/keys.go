// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines keyboard shortcuts
type keyMap struct {
	Trace  key.Binding
	Toggle key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Trace, k.Toggle, k.Up, k.Down, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Trace, k.Toggle},
		{k.Up, k.Down, k.Quit},
	}
}

var keys = keyMap{
	Trace: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "trace"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "table/graph"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "pgup"),
		key.WithHelp("↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "pgdown"),
		key.WithHelp("↓", "scroll down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}
