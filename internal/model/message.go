// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages, direct
// threads, the online roster and log entries.
package model

import (
	"strings"

	"github.com/jeranaias/arena-tui/internal/util"
)

// SelfName is the default identity used for messages sent from this client.
const SelfName = "You"

// JustNow is the display timestamp given to freshly sent messages.
const JustNow = "Just now"

// DefaultAvatar is the avatar reference used when none is supplied.
const DefaultAvatar = "/placeholder.svg"

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single chat message.
type Message struct {
	// Identity
	ID     int64  `json:"id" toml:"id" yaml:"id"`
	Sender string `json:"sender" toml:"sender" yaml:"sender"`

	// Content
	Content string `json:"content" toml:"content" yaml:"content"`

	// Display metadata
	SentAt string `json:"sent_at" toml:"sent_at" yaml:"sent_at"` // Already formatted, e.g. "2 min ago"
	Avatar string `json:"avatar,omitempty" toml:"avatar" yaml:"avatar,omitempty"`
}

// NewMessage creates a message with the default avatar.
func NewMessage(id int64, sender, content, sentAt string) Message {
	return Message{
		ID:      id,
		Sender:  sender,
		Content: content,
		SentAt:  sentAt,
		Avatar:  DefaultAvatar,
	}
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// IsFrom reports whether the message was sent by the given identity.
func (m Message) IsFrom(sender string) bool {
	return m.Sender == sender
}

// Initial returns the first character of the sender, used as avatar fallback.
func (m Message) Initial() string {
	return util.Initial(m.Sender)
}

// Preview returns a truncated preview of the message content.
// Uses display-width truncation so wide characters are not split.
func (m Message) Preview(maxWidth int) string {
	return util.TruncateWidth(m.Content, maxWidth)
}

// IsBlank reports whether content is empty after trimming whitespace.
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
