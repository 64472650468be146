// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model of the arena TUI.
//
// It owns the header, status bar, toast stack and help overlay, and
// routes messages to the login, dashboard and chat screens. Screens
// never render toasts themselves; they emit components.ToastMsg and the
// root model shows them.
package app
