// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the sign-in screen for the arena TUI.
//
// "Sign In" goes through session.Manager and its Authenticator; with the
// default authenticator it always fails and the failure is toasted.
// "Continue as Guest" starts a guest session and emits LoggedInMsg.
package login
