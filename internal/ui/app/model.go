// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/arena-tui/internal/conversation"
	"github.com/jeranaias/arena-tui/internal/model"
	"github.com/jeranaias/arena-tui/internal/session"
	"github.com/jeranaias/arena-tui/internal/ui/chat"
	"github.com/jeranaias/arena-tui/internal/ui/components"
	"github.com/jeranaias/arena-tui/internal/ui/dashboard"
	"github.com/jeranaias/arena-tui/internal/ui/login"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies the visible screen.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenDashboard
	ScreenChat
)

// String returns the config name of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenDashboard:
		return "dashboard"
	case ScreenChat:
		return "chat"
	default:
		return "login"
	}
}

// ParseScreen maps a config name to a Screen.
func ParseScreen(name string) (Screen, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "login":
		return ScreenLogin, nil
	case "dashboard":
		return ScreenDashboard, nil
	case "chat":
		return ScreenChat, nil
	}
	return ScreenLogin, fmt.Errorf("unknown screen %q", name)
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// Options wires the root model to its collaborators.
type Options struct {
	Theme      *styles.Theme
	Controller *conversation.Controller
	Sessions   *session.Manager
	Players    []model.Player
	Logs       []model.LogEntry
	// Loader re-reads the log corpus on refresh. Nil disables refresh.
	Loader        dashboard.Loader
	StartScreen   Screen
	ToastDuration time.Duration
}

// Model is the root Bubble Tea model.
type Model struct {
	theme    *styles.Theme
	sessions *session.Manager
	keys     KeyMap

	screen    Screen
	login     login.Model
	dashboard dashboard.Model
	chat      chat.Model

	header  *components.Header
	status  *components.StatusBar
	toasts  *components.ToastManager
	ticking bool

	showHelp bool
	help     viewport.Model

	width  int
	height int
}

// New creates the root model. Starting past the login screen without a
// session starts a guest session.
func New(opts Options) *Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.NewManager(nil)
	}
	d := opts.ToastDuration
	if d <= 0 {
		d = components.DefaultToastDuration
	}

	m := &Model{
		theme:     theme,
		sessions:  sessions,
		keys:      DefaultKeyMap(),
		screen:    opts.StartScreen,
		login:     login.New(theme, sessions).WithToastDuration(d),
		dashboard: dashboard.New(theme, opts.Logs, opts.Loader),
		chat:      chat.New(theme, opts.Controller, opts.Players).WithToastDuration(d),
		header:    components.NewHeader(theme),
		status:    components.NewStatusBar(theme),
		toasts:    components.NewToastManager(),
		help:      viewport.New(80, 20),
		width:     80,
		height:    24,
	}

	if m.screen != ScreenLogin && !sessions.Active() {
		sessions.ContinueAsGuest()
	}
	if sess := sessions.Current(); sess != nil {
		m.header.User = sess.User
	}
	m.layout()
	return m
}

// Init starts the active screen.
func (m *Model) Init() tea.Cmd {
	return m.initScreen()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case components.ToastMsg:
		m.toasts.Add(msg.Toast)
		if m.ticking {
			return m, nil
		}
		m.ticking = true
		return m, components.ToastTickCmd()

	case components.ToastTickMsg:
		m.toasts.Tick()
		if !m.toasts.HasToasts() {
			m.ticking = false
			return m, nil
		}
		return m, components.ToastTickCmd()

	case login.LoggedInMsg:
		if msg.Session != nil {
			m.header.User = msg.Session.User
		}
		return m, m.switchTo(ScreenDashboard)

	case dashboard.LogsLoadedMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case dashboard.ThemeChangedMsg:
		// Cached renders were built with the old palette.
		m.layout()
		return m, nil
	}

	return m, m.updateScreen(msg)
}

// handleKeyPress applies global bindings, then forwards to the screen.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.sessions.RecordActivity()

	if key.Matches(msg, m.keys.Quit) {
		log.Printf("APP_QUIT | screen=%s", m.screen)
		return m, tea.Quit
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Dismiss), msg.String() == "q":
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.renderHelp()
		return m, nil
	case key.Matches(msg, m.keys.Dismiss) && m.toasts.HasToasts():
		m.toasts.DismissNewest()
		return m, nil
	case key.Matches(msg, m.keys.Dashboard):
		return m, m.switchTo(ScreenDashboard)
	case key.Matches(msg, m.keys.Chat):
		return m, m.switchTo(ScreenChat)
	case key.Matches(msg, m.keys.SignOut) && m.sessions.Active():
		return m, m.signOut()
	}

	return m, m.updateScreen(msg)
}

// switchTo changes screen. Leaving the login screen requires a session.
func (m *Model) switchTo(s Screen) tea.Cmd {
	if s != ScreenLogin && !m.sessions.Active() {
		return components.ShowToast(components.NewToast(
			components.ToastKindWarning, "Sign in required", "Sign in or continue as guest first.", 0))
	}
	if s == m.screen {
		return nil
	}
	log.Printf("SCREEN_CHANGED | from=%s to=%s", m.screen, s)
	m.screen = s
	m.layout()
	return m.initScreen()
}

// signOut ends the session and returns to the login screen.
func (m *Model) signOut() tea.Cmd {
	st := m.sessions.GetStatus()
	m.sessions.SignOut()
	m.header.User = ""
	return tea.Batch(
		m.switchTo(ScreenLogin),
		components.ShowToast(components.NewToast(components.ToastKindStatus,
			"Signed out", "Session lasted "+session.FormatDuration(st.Duration)+".", 0)),
	)
}

func (m *Model) initScreen() tea.Cmd {
	switch m.screen {
	case ScreenDashboard:
		return m.dashboard.Init()
	case ScreenChat:
		return m.chat.Init()
	default:
		return m.login.Init()
	}
}

func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ScreenChat:
		m.chat, cmd = m.chat.Update(msg)
	default:
		m.login, cmd = m.login.Update(msg)
	}
	return cmd
}

// layout sizes the chrome and hands the rest of the window to the screens.
func (m *Model) layout() {
	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)

	h := m.contentHeight()
	m.login, _ = m.login.Update(tea.WindowSizeMsg{Width: m.width, Height: h})
	m.dashboard.SetSize(m.width, h)
	m.chat.SetSize(m.width, h)

	m.help.Width = m.width
	m.help.Height = h
	if m.showHelp {
		m.renderHelp()
	}
}

func (m *Model) contentHeight() int {
	m.syncChrome()
	h := m.height - lipgloss.Height(m.header.View()) - lipgloss.Height(m.status.View())
	if h < 1 {
		h = 1
	}
	return h
}

// syncChrome copies the active screen's title and hints into the chrome.
func (m *Model) syncChrome() {
	var bindings []key.Binding
	m.header.Subtitle = ""
	switch m.screen {
	case ScreenDashboard:
		m.header.Title = m.dashboard.Title()
		m.status.Note = m.dashboard.StatusNote()
		bindings = m.dashboard.ShortHelp()
	case ScreenChat:
		m.header.Title = m.chat.Title()
		m.header.Subtitle = m.chat.Subtitle()
		m.status.Note = m.chat.StatusNote()
		bindings = m.chat.ShortHelp()
	default:
		m.header.Title = m.login.Title()
		m.status.Note = ""
		bindings = m.login.ShortHelp()
	}
	if st := m.sessions.GetStatus(); st.SessionID != "" && m.screen != ScreenLogin {
		m.status.Note = strings.TrimSpace(m.status.Note + "  session " + session.FormatDuration(st.Duration))
	}
	m.status.Bindings = append(bindings, m.keys.ShortHelp()...)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Screen returns the visible screen.
func (m *Model) Screen() Screen { return m.screen }

// HelpVisible reports whether the help overlay is open.
func (m *Model) HelpVisible() bool { return m.showHelp }

// Toasts returns the active toasts, newest first.
func (m *Model) Toasts() []components.Toast { return m.toasts.Toasts() }
