// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard provides the log management screen for the arena TUI.
//
// The screen keeps the log corpus and the current query; every render runs
// the corpus through logfilter. Corpus updates arrive as LogsLoadedMsg,
// either from the refresh key or from the seed file watcher.
package dashboard
