// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard bindings. Letter keys go to the search box.
type KeyMap struct {
	NextLevel   key.Binding
	PrevLevel   key.Binding
	Refresh     key.Binding
	ToggleTheme key.Binding
	ClearSearch key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

// DefaultKeyMap returns the default dashboard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextLevel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous level"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "refresh"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextLevel, k.Refresh, k.ToggleTheme, k.ClearSearch}
}

// FullHelp returns the bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextLevel, k.PrevLevel, k.ClearSearch},
		{k.Refresh, k.ToggleTheme},
		{k.PageUp, k.PageDown},
	}
}
