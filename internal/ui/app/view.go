// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/ui/components"
)

// View renders the chrome, the active screen and any toasts.
func (m *Model) View() string {
	m.syncChrome()

	var content string
	switch {
	case m.showHelp:
		content = m.help.View()
	case m.screen == ScreenDashboard:
		content = m.dashboard.View()
	case m.screen == ScreenChat:
		content = m.chat.View()
	default:
		content = m.login.View()
	}

	if toasts := m.toasts.Toasts(); len(toasts) > 0 {
		content = overlayBottom(content, components.RenderToastStack(toasts, m.width, 0), m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		content,
		m.status.View(),
	)
}

// overlayBottom replaces the last lines of base with overlay, right-aligned.
func overlayBottom(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")

	start := len(baseLines) - len(overLines)
	if start < 0 {
		baseLines = append(make([]string, -start), baseLines...)
		start = 0
	}
	for i, line := range overLines {
		baseLines[start+i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, line)
	}
	return strings.Join(baseLines, "\n")
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

// renderHelp renders the key reference for the active screen as markdown.
func (m *Model) renderHelp() {
	md := m.helpMarkdown()

	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	out := md
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.theme.Name()),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if rendered, err := r.Render(md); err == nil {
			out = rendered
		}
	}
	m.help.SetContent(out)
	m.help.GotoTop()
}

func (m *Model) helpMarkdown() string {
	var groups [][]key.Binding
	var title string
	switch m.screen {
	case ScreenDashboard:
		title, groups = m.dashboard.Title(), m.dashboard.Keys().FullHelp()
	case ScreenChat:
		title, groups = m.chat.Title(), m.chat.Keys().FullHelp()
	default:
		title, groups = m.login.Title(), m.login.Keys().FullHelp()
	}

	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n\n")
	writeBindingTable(&b, title, groups)
	writeBindingTable(&b, "Global", m.keys.FullHelp())
	b.WriteString("Press `F1`, `esc` or `q` to close this help.\n")
	return b.String()
}

func writeBindingTable(b *strings.Builder, heading string, groups [][]key.Binding) {
	b.WriteString("## " + heading + "\n\n")
	b.WriteString("| Key | Action |\n")
	b.WriteString("| --- | --- |\n")
	for _, group := range groups {
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			h := binding.Help()
			b.WriteString("| `" + h.Key + "` | " + h.Desc + " |\n")
		}
	}
	b.WriteString("\n")
}
