// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the arena client.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: Display-width aware truncation with ellipsis
//   - PadRight: Pad to a display width
//   - Initial: Avatar fallback letter for a name
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	display := util.TruncateWidth(longText, 50)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
