// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks who is using the client.
//
// There is no real authentication backend. Sign-in goes through the narrow
// Authenticator interface, whose default implementation always fails with
// ErrSignInUnavailable; "Continue as Guest" always succeeds.
//
// # Key Types
//
//   - Session: Identity and start time of the current user
//   - Authenticator: Credential check used by the login screen
//   - Manager: Holds the active session and activity timestamps
//
// # Usage
//
//	mgr := session.NewManager(session.Unavailable{})
//	sess, err := mgr.SignIn(ctx, email, password)
//	if errors.Is(err, session.ErrSignInUnavailable) {
//	    sess = mgr.ContinueAsGuest()
//	}
package session
