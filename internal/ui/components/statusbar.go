// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar renders key hints on the left and a note on the right.
type StatusBar struct {
	Width    int
	Bindings []key.Binding
	Note     string
	theme    *styles.Theme
}

// NewStatusBar creates an empty status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{theme: theme}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	left := s.renderShortcuts()
	right := s.theme.ShortcutDesc.Render(s.Note)

	gap := s.Width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the note before the hints.
		right = ""
		gap = 1
	}

	return s.theme.StatusBar.
		Width(s.Width).
		Render(left + strings.Repeat(" ", gap) + right)
}

// renderShortcuts renders enabled bindings as "key desc" pairs.
func (s *StatusBar) renderShortcuts() string {
	parts := make([]string, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, s.theme.ShortcutKey.Render(h.Key)+" "+s.theme.ShortcutDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
