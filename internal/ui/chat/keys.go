// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat screen.
type KeyMap struct {
	SwitchTab key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat screen.
// Letter keys are left to the compose box.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "threads"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "players"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave DM"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTab, k.Submit, k.Cancel}
}

// FullHelp returns the bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchTab, k.Submit, k.Cancel},
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown},
	}
}
