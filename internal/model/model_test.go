// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage_DefaultAvatar(t *testing.T) {
	msg := NewMessage(1, "Player123", "hi", "2 min ago")
	if msg.Avatar != DefaultAvatar {
		t.Errorf("NewMessage() Avatar = %q, want %q", msg.Avatar, DefaultAvatar)
	}
	if !msg.IsFrom("Player123") {
		t.Error("IsFrom(sender) should be true")
	}
	if msg.Initial() != "P" {
		t.Errorf("Initial() = %q, want %q", msg.Initial(), "P")
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewMessage(1, "a", "What arena are you all playing in?", "")
	if got := msg.Preview(12); got != "What aren..." {
		t.Errorf("Preview(12) = %q", got)
	}
	if got := msg.Preview(100); got != msg.Content {
		t.Errorf("Preview(100) = %q, want full content", got)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" x ", false},
	}
	for _, tc := range tests {
		if got := IsBlank(tc.in); got != tc.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// =============================================================================
// THREAD AND ROSTER TESTS
// =============================================================================

func TestDirectThread_HasUnread(t *testing.T) {
	if (DirectThread{Unread: 0}).HasUnread() {
		t.Error("zero unread should report false")
	}
	if !(DirectThread{Unread: 2}).HasUnread() {
		t.Error("positive unread should report true")
	}
}

func TestRosterStatus(t *testing.T) {
	want := []string{StatusInGame, StatusOnline, StatusOnline, StatusInGame, StatusOnline, StatusOnline}
	for i, w := range want {
		if got := RosterStatus(i); got != w {
			t.Errorf("RosterStatus(%d) = %q, want %q", i, got, w)
		}
	}
	if !(Player{Status: StatusInGame}).InGame() {
		t.Error("InGame() should be true for In Game status")
	}
}

// =============================================================================
// LOG LEVEL TESTS
// =============================================================================

func TestParseLogLevel(t *testing.T) {
	for _, l := range LogLevels {
		got, err := ParseLogLevel(l.DisplayName())
		if err != nil {
			t.Fatalf("ParseLogLevel(%q) error: %v", l.DisplayName(), err)
		}
		if got != l {
			t.Errorf("ParseLogLevel(%q) = %q, want %q", l.DisplayName(), got, l)
		}
	}
	if _, err := ParseLogLevel("debug"); err == nil {
		t.Error("ParseLogLevel(debug) should fail")
	}
}

func TestLogLevel_DisplayName(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelInfo, "Info"},
		{LevelWarning, "Warning"},
		{LevelError, "Error"},
		{LevelSuccess, "Success"},
		{LogLevel("trace"), "trace"},
	}
	for _, tc := range tests {
		if got := tc.level.DisplayName(); got != tc.want {
			t.Errorf("LogLevel(%q).DisplayName() = %q, want %q", tc.level, got, tc.want)
		}
	}
}
