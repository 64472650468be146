// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation owns the chat state for one client session: the
// shared broadcast feed, the per-contact direct threads, and the compose
// mode that decides where a sent message goes.
//
// # Key Types
//
//   - Store: Broadcast feed (newest first) and direct thread roster
//   - Mode: Tagged variant, either Broadcast or Direct(contact)
//   - Controller: Routes Send to the store according to the current Mode
//   - Notice: Confirmation the presentation layer shows as a toast
//
// # Behaviour
//
// Sending while in Direct mode replaces the thread's last message, resets
// its unread counter and then drops back to Broadcast. Direct threads keep
// only their latest message; there is no per-contact history. Threads are
// never created on first send: a reply to a contact missing from the
// roster fails with ErrUnknownContact.
//
// # Usage
//
//	store, err := conversation.NewStore(model.SelfName, seed.Feed, seed.Threads)
//	ctrl := conversation.NewController(store)
//	ctrl.SelectContact("PongKing")
//	res, err := ctrl.Send("rematch?")
//	if res.Notice != nil {
//	    toasts.AddStatus(res.Notice.Description())
//	}
//
// Nothing in this package is safe for concurrent mutation; the Bubble Tea
// update loop is the only writer.
package conversation
