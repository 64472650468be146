// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings handled before any screen sees a key.
type KeyMap struct {
	Help      key.Binding
	Dashboard key.Binding
	Chat      key.Binding
	SignOut   key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the global bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "dashboard"),
		),
		Chat: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "chat"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "sign out"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss toast"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the global bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Dashboard, k.Chat}
}

// FullHelp returns the global bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Help, k.Dashboard, k.Chat},
		{k.SignOut, k.Dismiss, k.Quit},
	}
}
