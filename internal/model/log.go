// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// LOG LEVEL TYPE
// =============================================================================

// LogLevel is the severity of a log entry.
type LogLevel string

const (
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
	LevelSuccess LogLevel = "success"
)

// LogLevels lists the levels in display order.
var LogLevels = []LogLevel{LevelInfo, LevelWarning, LevelError, LevelSuccess}

// String returns the string representation of the level.
func (l LogLevel) String() string {
	return string(l)
}

// DisplayName returns a human-readable name for the level.
func (l LogLevel) DisplayName() string {
	switch l {
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelSuccess:
		return "Success"
	default:
		return string(l)
	}
}

// Valid reports whether l is one of the known levels.
func (l LogLevel) Valid() bool {
	for _, known := range LogLevels {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLogLevel parses a level name case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	l := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// =============================================================================
// LOG ENTRY TYPE
// =============================================================================

// LogEntry is a single read-only record shown by the log dashboard.
type LogEntry struct {
	ID        string   `json:"id" toml:"id" yaml:"id"`
	Timestamp string   `json:"timestamp" toml:"timestamp" yaml:"timestamp"`
	Level     LogLevel `json:"level" toml:"level" yaml:"level"`
	Message   string   `json:"message" toml:"message" yaml:"message"`
	Source    string   `json:"source" toml:"source" yaml:"source"`
}
