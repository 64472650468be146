// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import "fmt"

// NoticeKind classifies a notice for presentation.
type NoticeKind int

const (
	// NoticeInfo is an informational confirmation.
	NoticeInfo NoticeKind = iota
)

// Notice is the confirmation emitted after a successful direct reply.
// The core never renders it; the UI decides how to show it.
type Notice struct {
	Kind    NoticeKind
	Contact string
	Text    string
}

// Title returns the short headline for the notice.
func (n Notice) Title() string {
	return "Message sent"
}

// Description returns the body line for the notice.
func (n Notice) Description() string {
	return fmt.Sprintf("Your message to %s has been sent.", n.Contact)
}

// =============================================================================
// EVENTS
// =============================================================================

// EventKind identifies what an Event reports.
type EventKind int

const (
	EventModeChanged EventKind = iota
	EventBroadcastPosted
	EventReplySent
)

// Event is delivered to an Observer after each state change.
type Event struct {
	Kind       EventKind
	Transition Transition
	Result     SendResult
}

// Observer receives events from a Controller. It is called synchronously.
type Observer func(Event)
