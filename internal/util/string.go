// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// TruncateWidth truncates s to at most maxWidth terminal columns.
// Wide characters (CJK, emoji) count as two columns and are never split.
// If the string is truncated and there is room, "..." is appended.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// StringWidth returns the display width of a string.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces up to width columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Initial returns the first character of name, upper-cased, or "?" when empty.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}
