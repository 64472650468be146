// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - shared styles for arena subcommands.

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/model"
)

func init() {
	// Plain output when piped or NO_COLOR is set.
	lipgloss.SetColorProfile(GetColorProfile())
}

var (
	// TitleStyle is used for command titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// SuccessStyle is used for confirmations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle is used for warnings
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Yellow/Orange

	// InfoStyle is used for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")) // Blue

	// DimStyle is used for timestamps and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// SenderStyle is used for message senders
	SenderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141")). // Purple
			Bold(true)

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dark gray
)

// RenderSeparator renders a horizontal rule of width w.
func RenderSeparator(w int) string {
	if w <= 0 {
		w = 70
	}
	return SeparatorStyle.Render(strings.Repeat("=", w))
}

// RenderLevel renders a log level tag in its colour.
func RenderLevel(level model.LogLevel) string {
	tag := "[" + strings.ToUpper(string(level)) + "]"
	switch level {
	case model.LevelError:
		return ErrorStyle.Render(tag)
	case model.LevelWarning:
		return WarningStyle.Render(tag)
	case model.LevelSuccess:
		return SuccessStyle.Render(tag)
	default:
		return InfoStyle.Render(tag)
	}
}
