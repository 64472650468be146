// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/arena-tui/internal/conversation"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/ui/components"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// Compose box placeholders.
const (
	BroadcastPlaceholder = "Type your message..."
	directPlaceholderFmt = "Message %s..."
)

// sidebarWidth is the width of the Online Players card on wide layouts.
const sidebarWidth = 30

// =============================================================================
// TABS
// =============================================================================

// Tab identifies the visible chat tab.
type Tab int

const (
	TabGlobal Tab = iota
	TabDirect
)

// String returns the tab label.
func (t Tab) String() string {
	if t == TabDirect {
		return "Direct Messages"
	}
	return "Global Chat"
}

// pane is the list that owns the cursor on the Direct Messages tab.
type pane int

const (
	paneThreads pane = iota
	panePlayers
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat screen.
type Model struct {
	theme   *styles.Theme
	ctrl    *conversation.Controller
	players []model.Player
	keys    KeyMap

	tab          Tab
	pane         pane
	threadCursor int
	playerCursor int

	input    textinput.Model
	viewport viewport.Model

	width  int
	height int

	toastDuration time.Duration
}

// New creates the chat screen over ctrl.
func New(theme *styles.Theme, ctrl *conversation.Controller, players []model.Player) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = BroadcastPlaceholder
	ti.CharLimit = 1000
	ti.Focus()

	m := Model{
		theme:         theme,
		ctrl:          ctrl,
		players:       append([]model.Player(nil), players...),
		keys:          DefaultKeyMap(),
		input:         ti,
		viewport:      viewport.New(80, 20),
		toastDuration: components.DefaultToastDuration,
	}
	m.SetSize(80, 24)
	m.sync()
	return m
}

// WithToastDuration sets how long the "Message sent" toast stays up.
func (m Model) WithToastDuration(d time.Duration) Model {
	m.toastDuration = d
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey routes a key press according to the tab and mode.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchTab):
		if m.tab == TabGlobal {
			m.tab = TabDirect
		} else {
			m.tab = TabGlobal
		}
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.applyTransition(m.ctrl.CancelDirect())
		return m, nil
	}

	if !m.composeVisible() {
		return m.handleListKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.send()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleListKey drives the thread list and players card.
func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Left):
		m.pane = paneThreads
	case key.Matches(msg, m.keys.Right):
		if len(m.players) > 0 {
			m.pane = panePlayers
		}
	case key.Matches(msg, m.keys.Submit):
		if contact, ok := m.selectedContact(); ok {
			m.applyTransition(m.ctrl.SelectContact(contact))
		}
	}
	return m, nil
}

// send hands the draft to the controller.
func (m Model) send() (Model, tea.Cmd) {
	res, err := m.ctrl.Send(m.input.Value())
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyMessage) {
			return m, nil
		}
		return m, components.ShowToast(components.NewToast(components.ToastKindError, "Message not sent", err.Error(), 0))
	}

	m.input.Reset()
	m.sync()
	if res.Notice != nil {
		return m, components.ShowToast(components.ToastFromNotice(*res.Notice, m.toastDuration))
	}
	m.viewport.GotoTop()
	return m, nil
}

// applyTransition reflects a mode change in the compose box.
func (m *Model) applyTransition(tr conversation.Transition) {
	if tr.ClearDraft {
		m.input.Reset()
	}
	if tr.To.Kind() == conversation.ModeDirect {
		m.tab = TabDirect
	}
	m.sync()
}

// sync updates focus, placeholder and feed content from the controller.
func (m *Model) sync() {
	if contact, ok := m.ctrl.Mode().Contact(); ok {
		m.input.Placeholder = fmt.Sprintf(directPlaceholderFmt, contact)
	} else {
		m.input.Placeholder = BroadcastPlaceholder
	}

	if m.composeVisible() {
		m.input.Focus()
	} else {
		m.input.Blur()
	}

	if n := m.ctrl.Store().ThreadCount(); m.threadCursor >= n {
		m.threadCursor = max(n-1, 0)
	}
	m.viewport.SetContent(m.renderFeed())
}

// composeVisible is false only while the thread list is shown.
func (m Model) composeVisible() bool {
	return m.tab == TabGlobal || !m.ctrl.Mode().IsBroadcast()
}

func (m *Model) moveCursor(delta int) {
	if m.pane == panePlayers {
		m.playerCursor = clamp(m.playerCursor+delta, 0, len(m.players)-1)
		return
	}
	m.threadCursor = clamp(m.threadCursor+delta, 0, m.ctrl.Store().ThreadCount()-1)
}

// selectedContact returns the name under the cursor.
func (m Model) selectedContact() (string, bool) {
	if m.pane == panePlayers {
		if m.playerCursor < len(m.players) {
			return m.players[m.playerCursor].Name, true
		}
		return "", false
	}
	threads := m.ctrl.Store().Threads()
	if m.threadCursor < len(threads) {
		return threads[m.threadCursor].Contact, true
	}
	return "", false
}

// SetSize lays the screen out for a width x height content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// tabs + card border + card title + compose box
	const chrome = 1 + 2 + 2 + 3
	vpHeight := height - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = m.mainWidth() - 4
	m.viewport.Height = vpHeight
	m.input.Width = m.mainWidth() - 8
	m.viewport.SetContent(m.renderFeed())
}

func (m Model) hasSidebar() bool {
	return m.width >= 100
}

func (m Model) mainWidth() int {
	if m.hasSidebar() {
		return m.width - sidebarWidth - 1
	}
	return m.width
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Tab returns the visible tab.
func (m Model) Tab() Tab { return m.tab }

// Mode returns the controller's current mode.
func (m Model) Mode() conversation.Mode { return m.ctrl.Mode() }

// Draft returns the compose box contents.
func (m Model) Draft() string { return m.input.Value() }

// Placeholder returns the compose box placeholder.
func (m Model) Placeholder() string { return m.input.Placeholder }

// Title is the header title for this screen.
func (m Model) Title() string { return "Community Chat" }

// Subtitle describes the active DM, if any.
func (m Model) Subtitle() string {
	if contact, ok := m.ctrl.Mode().Contact(); ok {
		return "Messaging " + contact
	}
	return ""
}

// StatusNote is shown on the right of the status bar.
func (m Model) StatusNote() string {
	return fmt.Sprintf("%d unread", m.ctrl.Store().UnreadTotal())
}

// ShortHelp returns the bindings for the status bar.
func (m Model) ShortHelp() []key.Binding { return m.keys.ShortHelp() }

// Keys returns the screen's key map.
func (m Model) Keys() KeyMap { return m.keys }

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
