// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/arena-tui/internal/logfilter"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/ui/components"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// Title is the screen heading.
const Title = "Log Management Dashboard"

// Loader re-reads the log corpus.
type Loader func() ([]model.LogEntry, error)

// LogsLoadedMsg carries a fresh corpus, or the error that prevented it.
type LogsLoadedMsg struct {
	Entries []model.LogEntry
	Err     error
	// Watched is true when the update came from the file watcher.
	Watched bool
}

// ThemeChangedMsg reports the theme name after a toggle.
type ThemeChangedMsg struct {
	Name string
}

// Model is the dashboard screen.
type Model struct {
	theme  *styles.Theme
	keys   KeyMap
	loader Loader

	entries     []model.LogEntry
	level       logfilter.LevelFilter
	search      textinput.Model
	viewport    viewport.Model
	lastRefresh time.Time

	width  int
	height int
}

// New creates the dashboard over entries. A nil loader disables refresh.
func New(theme *styles.Theme, entries []model.LogEntry, loader Loader) Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "Search logs..."
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		theme:       theme,
		keys:        DefaultKeyMap(),
		loader:      loader,
		entries:     append([]model.LogEntry(nil), entries...),
		level:       logfilter.All,
		search:      ti,
		viewport:    viewport.New(80, 20),
		lastRefresh: time.Now(),
	}
	if loader == nil {
		m.keys.Refresh.SetEnabled(false)
	}
	m.SetSize(80, 24)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys, resizes and corpus reloads.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case LogsLoadedMsg:
		return m.handleLoaded(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextLevel):
			m.level = m.level.Next()
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.level = prevLevel(m.level)
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.RefreshCmd()
		case key.Matches(msg, m.keys.ToggleTheme):
			name := m.theme.Toggle()
			log.Printf("THEME_TOGGLED | theme=%s", name)
			m.refreshView()
			return m, func() tea.Msg { return ThemeChangedMsg{Name: name} }
		case key.Matches(msg, m.keys.ClearSearch):
			m.search.Reset()
			m.refreshView()
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
			return m, nil
		}
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != prev {
		m.refreshView()
	}
	return m, cmd
}

// RefreshCmd runs the loader off the update loop.
func (m Model) RefreshCmd() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	loader := m.loader
	return func() tea.Msg {
		entries, err := loader()
		return LogsLoadedMsg{Entries: entries, Err: err}
	}
}

func (m Model) handleLoaded(msg LogsLoadedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("LOGS_REFRESH_FAILED | error=%v", msg.Err)
		return m, components.ShowToast(components.NewToast(components.ToastKindError, "Refresh failed", msg.Err.Error(), 0))
	}

	m.entries = append([]model.LogEntry(nil), msg.Entries...)
	m.lastRefresh = time.Now()
	m.refreshView()
	log.Printf("LOGS_REFRESHED | entries=%d watched=%t", len(m.entries), msg.Watched)

	title := "Logs refreshed"
	if msg.Watched {
		title = "Logs reloaded from disk"
	}
	return m, components.ShowToast(components.NewToast(components.ToastKindSuccess, title, "", 0))
}

// Query returns the current filter query.
func (m Model) Query() logfilter.Query {
	return logfilter.Query{Search: m.search.Value(), Level: m.level}
}

// Visible returns the entries that pass the current query, in corpus order.
func (m Model) Visible() []model.LogEntry {
	return logfilter.Collect(m.entries, m.Query())
}

// Level returns the level selector value.
func (m Model) Level() logfilter.LevelFilter { return m.level }

// Entries returns the number of entries in the corpus.
func (m Model) Entries() int { return len(m.entries) }

// Title is the header title for this screen.
func (m Model) Title() string { return Title }

// StatusNote is shown on the right of the status bar.
func (m Model) StatusNote() string {
	return "theme: " + m.theme.Name() + "  refreshed " + m.lastRefresh.Format("15:04:05")
}

// ShortHelp returns the bindings for the status bar.
func (m Model) ShortHelp() []key.Binding { return m.keys.ShortHelp() }

// Keys returns the screen's key map.
func (m Model) Keys() KeyMap { return m.keys }

// SetSize lays the screen out for a width x height content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// search box + selector row + summary line
	const chrome = 3 + 1 + 1
	vpHeight := height - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.search.Width = width - 14
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.refreshView()
}

func (m *Model) refreshView() {
	m.viewport.SetContent(m.renderLogs())
	m.viewport.GotoTop()
}

func prevLevel(f logfilter.LevelFilter) logfilter.LevelFilter {
	opts := logfilter.LevelFilters
	for i, opt := range opts {
		if opt == f || (f.IsAll() && opt == logfilter.All) {
			return opts[(i+len(opts)-1)%len(opts)]
		}
	}
	return logfilter.All
}
