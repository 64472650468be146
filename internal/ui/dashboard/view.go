// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/logfilter"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
	"github.com/jeranaias/arena-tui/internal/util"
)

// View renders the dashboard.
func (m Model) View() string {
	search := m.theme.InputFocused.Width(m.width - 2).Render(m.search.View())
	summary := m.theme.Label.Render(fmt.Sprintf("Showing %d of %d entries",
		logfilter.Count(m.entries, m.Query()), len(m.entries)))

	return lipgloss.JoinVertical(lipgloss.Left,
		search,
		m.renderSelector(),
		summary,
		m.viewport.View(),
	)
}

// renderSelector renders the level options with the active one highlighted.
func (m Model) renderSelector() string {
	parts := make([]string, 0, len(logfilter.LevelFilters))
	for _, opt := range logfilter.LevelFilters {
		label := opt.DisplayName()
		if opt == m.level || (m.level.IsAll() && opt.IsAll()) {
			parts = append(parts, m.theme.ButtonActive.Render(label))
		} else {
			parts = append(parts, m.theme.Button.Render(label))
		}
	}
	return strings.Join(parts, "")
}

// renderLogs renders one card per visible entry.
func (m Model) renderLogs() string {
	visible := m.Visible()
	if len(visible) == 0 {
		return m.theme.LogEmpty.Render("No logs match the current filters.")
	}

	cards := make([]string, 0, len(visible))
	for _, e := range visible {
		cards = append(cards, m.renderEntry(e))
	}
	return strings.Join(cards, "\n")
}

func (m Model) renderEntry(e model.LogEntry) string {
	dot := lipgloss.NewStyle().Foreground(styles.LevelColor(e.Level)).Render(styles.LevelDot)
	meta := strings.Join([]string{
		dot,
		m.theme.LevelStyle(e.Level).Render(styles.LevelIndicator(e.Level)),
		m.theme.LogTimestamp.Render(e.Timestamp),
		m.theme.LogSource.Render(e.Source),
	}, " ")

	width := m.width - 4
	if width < 10 {
		width = 10
	}
	msg := m.theme.LogMessage.Render(util.TruncateWidth(e.Message, width))
	return m.theme.Card.Width(m.width - 2).Render(meta + "\n" + msg)
}
