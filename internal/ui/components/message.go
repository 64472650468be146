// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
	"github.com/jeranaias/arena-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE
// =============================================================================

// MessageBubble renders one chat message.
type MessageBubble struct {
	Message model.Message
	Self    bool // Own messages are right-aligned without an avatar
	Width   int
	theme   *styles.Theme
}

// NewMessageBubble creates a bubble for msg. self marks the local user's
// messages.
func NewMessageBubble(msg model.Message, self bool, width int, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message: msg,
		Self:    self,
		Width:   width,
		theme:   theme,
	}
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	maxContent := b.Width * 3 / 4
	if maxContent < 20 {
		maxContent = 20
	}

	body := b.Message.Content
	bubbleStyle := b.theme.OtherBubble
	if b.Self {
		bubbleStyle = b.theme.SelfBubble
	}
	if lipgloss.Width(body)+2 > maxContent {
		bubbleStyle = bubbleStyle.Width(maxContent)
	}
	bubble := bubbleStyle.Render(body)

	if b.Self {
		meta := b.theme.Timestamp.Render(b.Message.SentAt)
		block := lipgloss.JoinVertical(lipgloss.Right, bubble, meta)
		return lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, block)
	}

	meta := b.theme.Sender.Render(b.Message.Sender) + " " + b.theme.Timestamp.Render(b.Message.SentAt)
	block := lipgloss.JoinVertical(lipgloss.Left, meta, bubble)
	return lipgloss.JoinHorizontal(lipgloss.Top, RenderAvatar(b.theme, b.Message.Sender), " ", block)
}

// RenderAvatar renders the sender's initial in a colored block.
func RenderAvatar(theme *styles.Theme, name string) string {
	return theme.Avatar.Render(util.Initial(name))
}

// RenderBadge renders an unread counter. Zero renders nothing.
func RenderBadge(theme *styles.Theme, n int) string {
	if n <= 0 {
		return ""
	}
	return theme.Badge.Render(strconv.Itoa(n))
}
