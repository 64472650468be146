// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/arena-tui/internal/logfilter"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/seed"
	"github.com/jeranaias/arena-tui/internal/ui/components"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

func sampleLogs(t *testing.T) []model.LogEntry {
	t.Helper()
	s, err := seed.Default()
	require.NoError(t, err)
	return s.Logs
}

func newTestModel(t *testing.T, loader Loader) Model {
	t.Helper()
	m := New(styles.NewThemeFor("dark"), sampleLogs(t), loader)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func ids(entries []model.LogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestNew_ShowsEverything(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, logfilter.All, m.Level())
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(m.Visible()))
	assert.Equal(t, Title, m.Title())

	view := m.View()
	assert.Contains(t, view, "Showing 4 of 4 entries")
	assert.Contains(t, view, "All Levels")
	assert.Contains(t, view, "Failed to connect to database")
	assert.False(t, m.Keys().Refresh.Enabled(), "refresh needs a loader")
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("DataBase")})

	assert.Equal(t, []string{"3"}, ids(m.Visible()))
	assert.Contains(t, m.View(), "Showing 1 of 4 entries")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.Visible(), 4)
}

func TestSearch_NoMatches(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})

	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), "No logs match")
}

func TestLevelCycle(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, logfilter.LevelFilter(model.LevelInfo), m.Level())
	assert.Equal(t, []string{"1"}, ids(m.Visible()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, []string{"2"}, ids(m.Visible()))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, logfilter.All, m.Level())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, logfilter.LevelFilter(model.LevelSuccess), m.Level())
}

func TestLevelAndSearchCombine(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("successfully")})
	assert.Equal(t, []string{"1", "4"}, ids(m.Visible()))

	for i := 0; i < 4; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, []string{"4"}, ids(m.Visible()))
}

func TestRefresh_ReplacesCorpus(t *testing.T) {
	loader := func() ([]model.LogEntry, error) {
		return []model.LogEntry{
			{ID: "9", Timestamp: "2024-03-14 11:00:00", Level: model.LevelError, Message: "Disk full", Source: "storage"},
		}, nil
	}
	m := newTestModel(t, loader)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	loaded, ok := cmd().(LogsLoadedMsg)
	require.True(t, ok)

	m, cmd = m.Update(loaded)
	assert.Equal(t, 1, m.Entries())
	assert.Equal(t, []string{"9"}, ids(m.Visible()))

	require.NotNil(t, cmd)
	toast := cmd().(components.ToastMsg).Toast
	assert.Equal(t, components.ToastKindSuccess, toast.Kind)
	assert.Equal(t, "Logs refreshed", toast.Title)
}

func TestRefresh_ErrorKeepsCorpus(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := m.Update(LogsLoadedMsg{Err: errors.New("seed.toml: bad level"), Watched: true})
	assert.Equal(t, 4, m.Entries())

	require.NotNil(t, cmd)
	toast := cmd().(components.ToastMsg).Toast
	assert.Equal(t, components.ToastKindError, toast.Kind)
	assert.Contains(t, toast.Message, "bad level")
}

func TestToggleTheme(t *testing.T) {
	m := newTestModel(t, nil)
	require.Contains(t, m.StatusNote(), "theme: dark")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	assert.Equal(t, ThemeChangedMsg{Name: "light"}, cmd())
	assert.Contains(t, m.StatusNote(), "theme: light")
}
