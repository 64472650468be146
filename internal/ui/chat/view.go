// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/ui/components"
	"github.com/jeranaias/arena-tui/internal/util"
)

// View renders the chat screen.
func (m Model) View() string {
	mainCol := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.renderBody())
	if m.hasSidebar() {
		return lipgloss.JoinHorizontal(lipgloss.Top, mainCol, " ", m.renderPlayers(sidebarWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, mainCol, m.renderPlayers(m.width))
}

// renderTabs renders the tab strip. The DM tab carries the unread total.
func (m Model) renderTabs() string {
	direct := TabDirect.String()
	if n := m.ctrl.Store().UnreadTotal(); n > 0 {
		direct += " " + components.RenderBadge(m.theme, n)
	}

	global := m.theme.TabInactive.Render(TabGlobal.String())
	dm := m.theme.TabInactive.Render(direct)
	if m.tab == TabGlobal {
		global = m.theme.TabActive.Render(TabGlobal.String())
	} else {
		dm = m.theme.TabActive.Render(direct)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, global, " ", dm)
}

func (m Model) renderBody() string {
	width := m.mainWidth()
	if m.tab == TabGlobal {
		content := lipgloss.JoinVertical(lipgloss.Left,
			m.theme.CardTitle.Render("Global Chat"),
			m.viewport.View(),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Card.Width(width-2).Render(content),
			m.renderCompose(width),
		)
	}

	title := m.theme.CardTitle.Render("Direct Messages") + "\n" +
		m.theme.Label.Render("Private conversations with other players")

	if contact, ok := m.ctrl.Mode().Contact(); ok {
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.renderActiveDM(contact))
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Card.Width(width-2).Render(content),
			m.renderCompose(width),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.renderThreadList(width-6))
	return m.theme.Card.Width(width - 2).Render(content)
}

// renderFeed renders the broadcast feed, newest first.
func (m Model) renderFeed() string {
	feed := m.ctrl.Store().Feed()
	if len(feed) == 0 {
		return m.theme.LogEmpty.Render("No messages yet. Say hello!")
	}

	self := m.ctrl.Store().Self()
	width := m.viewport.Width
	bubbles := make([]string, 0, len(feed))
	for _, msg := range feed {
		bubbles = append(bubbles, components.NewMessageBubble(msg, msg.IsFrom(self), width, m.theme).View())
	}
	return strings.Join(bubbles, "\n\n")
}

// renderActiveDM renders the header of the open direct conversation.
func (m Model) renderActiveDM(contact string) string {
	who := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Sender.Render(contact),
		m.theme.Online.Render(model.StatusOnline),
	)
	cancel := m.theme.ShortcutKey.Render("esc") + " " + m.theme.ShortcutDesc.Render("cancel")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderAvatar(m.theme, contact), " ", who, "   ", cancel,
	)
}

// renderThreadList renders one row per direct thread.
func (m Model) renderThreadList(width int) string {
	threads := m.ctrl.Store().Threads()
	if len(threads) == 0 {
		return m.theme.LogEmpty.Render("No conversations yet.")
	}

	rows := make([]string, 0, len(threads))
	for i, t := range threads {
		selected := m.pane == paneThreads && i == m.threadCursor
		rows = append(rows, m.renderThreadRow(t, selected, width))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderThreadRow(t model.DirectThread, selected bool, width int) string {
	name := m.theme.Sender.Render(t.Contact)
	if badge := components.RenderBadge(m.theme, t.Unread); badge != "" {
		name += " " + badge
	}
	when := m.theme.Timestamp.Render(t.LastMessage.SentAt + " >")

	previewWidth := width - 6
	preview := m.theme.Label.Render(t.LastMessage.Preview(previewWidth))

	gap := width - 4 - lipgloss.Width(name) - lipgloss.Width(when)
	if gap < 1 {
		gap = 1
	}
	top := name + strings.Repeat(" ", gap) + when
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		components.RenderAvatar(m.theme, t.Contact), " ",
		lipgloss.JoinVertical(lipgloss.Left, top, preview),
	)

	style := m.theme.ContactItem
	if selected {
		style = m.theme.ContactItemSelected
	}
	return style.Render(row)
}

// renderPlayers renders the Online Players card.
func (m Model) renderPlayers(width int) string {
	rows := []string{
		m.theme.CardTitle.Render("Online Players"),
		m.theme.Label.Render(util.TruncateWidth("Players currently active in the game", width-4)),
	}
	listActive := m.tab == TabDirect && m.ctrl.Mode().IsBroadcast() && m.pane == panePlayers

	for i, p := range m.players {
		line := components.RenderAvatar(m.theme, p.Name) + " " +
			m.theme.Sender.Render(p.Name) + " " +
			m.theme.StatusStyle(p.Status).Render(p.Status)
		if listActive && i == m.playerCursor {
			line = m.theme.ContactItemSelected.Render(line)
		} else {
			line = m.theme.ContactItem.Render(line)
		}
		rows = append(rows, line)
	}
	return m.theme.Card.Width(width - 2).Render(strings.Join(rows, "\n"))
}

// renderCompose renders the input box.
func (m Model) renderCompose(width int) string {
	return m.theme.InputFocused.Width(width - 2).Render(m.input.View())
}
