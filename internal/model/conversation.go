// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages, direct
// threads, the online roster and log entries.
package model

import "github.com/jeranaias/arena-tui/internal/util"

// =============================================================================
// DIRECT THREAD TYPE
// =============================================================================

// DirectThread is the per-contact direct message slot.
// Only the most recent message is kept; there is no history.
type DirectThread struct {
	Contact     string  `json:"contact" toml:"contact" yaml:"contact"`
	LastMessage Message `json:"last_message" toml:"last_message" yaml:"last_message"`
	Unread      int     `json:"unread" toml:"unread" yaml:"unread"`
}

// HasUnread returns true if the thread has unread messages.
func (t DirectThread) HasUnread() bool {
	return t.Unread > 0
}

// Initial returns the avatar fallback letter for the contact.
func (t DirectThread) Initial() string {
	return util.Initial(t.Contact)
}

// =============================================================================
// ROSTER
// =============================================================================

// Player presence values shown in the online roster.
const (
	StatusOnline = "Online"
	StatusInGame = "In Game"
)

// Player is an entry in the online players roster.
type Player struct {
	Name   string `json:"name" toml:"name" yaml:"name"`
	Status string `json:"status,omitempty" toml:"status" yaml:"status,omitempty"`
}

// InGame returns true if the player is currently in a match.
func (p Player) InGame() bool {
	return p.Status == StatusInGame
}

// RosterStatus returns the presence for the player at position i when the
// roster does not carry an explicit status. Every third player is in game.
func RosterStatus(i int) string {
	if i%3 == 0 {
		return StatusInGame
	}
	return StatusOnline
}
