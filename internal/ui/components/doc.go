// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the arena TUI.

Components are plain structs with a View method. They hold no Bubble Tea
state of their own except the toast manager, which is ticked by the root
model.

# Components

Header (header.go) - Title bar with brand, screen title and signed-in user.
StatusBar (statusbar.go) - Bottom bar with key hints and a right-aligned note.
MessageBubble (message.go) - One chat message; own messages are right-aligned.
ToastManager (toast.go) - Non-blocking notifications in the bottom-right corner.
*/
package components
