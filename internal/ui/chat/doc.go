// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the community chat screen for the arena TUI.

The screen is a Bubble Tea model over a conversation.Controller. It never
mutates conversation state itself; every send and mode change goes through
the controller, and the screen only renders what the controller's store
reports.

# Layout

  - Tabs: Global Chat and Direct Messages (with the unread total)
  - Global Chat: the broadcast feed, newest first, own messages on the right
  - Direct Messages: the thread list, or the active DM header with "Online"
  - Compose box: "Type your message..." or "Message <contact>..."
  - Online Players card on wide terminals

# Keys

	Tab        switch tabs
	Up/Down    move through threads or players
	Left/Right move between the thread list and the players card
	Enter      send, or open the selected thread
	Esc        leave the active DM and return to broadcast

Sending a direct message returns the controller to broadcast mode and emits
a "Message sent" toast through components.ToastMsg.
*/
package chat
