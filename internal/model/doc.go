// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat messages, direct
// threads, the online roster and log entries.
//
// This package defines the core domain types used throughout the application.
// It holds no behaviour beyond small helpers; mutation lives in the
// conversation package and filtering in the logfilter package.
//
// # Key Types
//
//   - Message: Single chat message with sequence ID, sender and display time
//   - DirectThread: Per-contact slot holding only the latest message and an unread counter
//   - Player: Entry in the online roster
//   - LogEntry: Read-only log record shown by the dashboard
//   - LogLevel: Log severity enumeration (info, warning, error, success)
//
// # Usage
//
//	msg := model.NewMessage(7, model.SelfName, "gg", model.JustNow)
//	thread := model.DirectThread{Contact: "PongKing", LastMessage: msg}
//	fmt.Println(thread.HasUnread())
package model
