// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

const cardWidth = 50

// View renders the login card centered in the content area.
func (m Model) View() string {
	inner := cardWidth - 4

	field := func(f focus, view string) string {
		style := m.theme.InputContainer
		if m.focus == f {
			style = m.theme.InputFocused
		}
		return style.Width(inner - 2).Render(view)
	}
	button := func(f focus, label string) string {
		if m.focus == f {
			return m.theme.ButtonActive.Render(label)
		}
		return m.theme.Button.Render(label)
	}

	signIn := "Sign In"
	if m.pending {
		signIn = "Signing in..."
	}

	divider := m.theme.Label.Render(centerRule("OR CONTINUE WITH", inner))
	github := m.theme.Button.Foreground(styles.TextMuted).Render("GitHub (unavailable)")

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.CardTitle.Render("Welcome back"),
		m.theme.Label.Render("Sign in to your account to continue playing"),
		"",
		field(focusEmail, m.email.View()),
		field(focusPassword, m.password.View()),
		"",
		button(focusSignIn, signIn)+button(focusGuest, "Continue as Guest"),
		"",
		divider,
		github,
		"",
		m.theme.ShortcutDesc.Render("Forgot your password?"),
		m.theme.ShortcutDesc.Render("Don't have an account? ")+m.theme.ShortcutKey.Render("Sign up"),
	)

	card := m.theme.Card.Width(cardWidth).Padding(1, 2).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// centerRule centers label inside a horizontal rule of the given width.
func centerRule(label string, width int) string {
	side := (width - lipgloss.Width(label) - 2) / 2
	if side < 1 {
		return label
	}
	rule := strings.Repeat("─", side)
	return rule + " " + label + " " + rule
}
