// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-TUI commands of arena.
//
// # Commands
//
//   - tui: the full-screen client (default)
//   - logs: filter the log corpus and print it, or emit JSON with --json
//   - chat: a line-mode chat REPL over the same conversation controller
//   - version, help
//
// Output is plain when stdout is not a terminal or NO_COLOR is set.
package cli
