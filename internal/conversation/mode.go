// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

// =============================================================================
// MODE TYPE
// =============================================================================

// ModeKind discriminates the two compose modes.
type ModeKind int

const (
	// ModeBroadcast sends to the shared feed. It is the zero value.
	ModeBroadcast ModeKind = iota
	// ModeDirect sends to a single contact's thread.
	ModeDirect
)

// String returns the string representation of the kind.
func (k ModeKind) String() string {
	switch k {
	case ModeBroadcast:
		return "broadcast"
	case ModeDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// Mode is the compose target: Broadcast, or Direct with a contact.
// The contact is only reachable through Contact, so a Broadcast mode can
// never carry a stale contact.
type Mode struct {
	kind    ModeKind
	contact string
}

// BroadcastMode returns the Broadcast mode.
func BroadcastMode() Mode {
	return Mode{kind: ModeBroadcast}
}

// DirectMode returns the Direct mode targeting contact.
func DirectMode(contact string) Mode {
	return Mode{kind: ModeDirect, contact: contact}
}

// Kind returns the mode discriminator.
func (m Mode) Kind() ModeKind {
	return m.kind
}

// IsBroadcast returns true in Broadcast mode.
func (m Mode) IsBroadcast() bool {
	return m.kind == ModeBroadcast
}

// Contact returns the direct target and true, or "" and false in Broadcast.
func (m Mode) Contact() (string, bool) {
	if m.kind != ModeDirect {
		return "", false
	}
	return m.contact, true
}

// String returns "broadcast" or "direct:<contact>".
func (m Mode) String() string {
	if m.kind == ModeDirect {
		return "direct:" + m.contact
	}
	return m.kind.String()
}

// Transition describes a mode change.
type Transition struct {
	From Mode
	To   Mode

	// ClearDraft tells the presentation layer to discard unsent compose text.
	ClearDraft bool
}

// Changed returns true if the mode actually changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}
