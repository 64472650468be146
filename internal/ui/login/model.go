// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/arena-tui/internal/session"
	"github.com/jeranaias/arena-tui/internal/ui/components"
	"github.com/jeranaias/arena-tui/internal/ui/styles"
)

// Guest login toast text.
const (
	GuestToastTitle = "Logged in as Guest"
	GuestToastBody  = "You're now accessing the app with limited features."
)

// signInTimeout bounds a single Authenticator call.
const signInTimeout = 10 * time.Second

// LoggedInMsg is emitted once a session has started.
type LoggedInMsg struct {
	Session *session.Session
}

// signInResultMsg carries the outcome of an asynchronous sign-in.
type signInResultMsg struct {
	session *session.Session
	err     error
}

// focus identifies the focused control.
type focus int

const (
	focusEmail focus = iota
	focusPassword
	focusSignIn
	focusGuest
	focusCount
)

// KeyMap defines the login bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Guest  key.Binding
}

// DefaultKeyMap returns the default login bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Guest: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "continue as guest"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Guest}
}

// FullHelp returns the bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit, k.Guest}}
}

// Model is the login screen.
type Model struct {
	theme    *styles.Theme
	sessions *session.Manager
	keys     KeyMap

	email    textinput.Model
	password textinput.Model
	focus    focus
	pending  bool

	toastDuration time.Duration
	width         int
	height        int
}

// New creates the login screen.
func New(theme *styles.Theme, sessions *session.Manager) Model {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		theme:         theme,
		sessions:      sessions,
		keys:          DefaultKeyMap(),
		email:         email,
		password:      password,
		toastDuration: components.DefaultToastDuration,
		width:         80,
		height:        24,
	}
}

// WithToastDuration sets how long the guest toast stays up.
func (m Model) WithToastDuration(d time.Duration) Model {
	m.toastDuration = d
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys and sign-in results.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case signInResultMsg:
		m.pending = false
		if msg.err != nil {
			return m, components.ShowToast(components.NewToast(
				components.ToastKindError, "Sign in failed", describe(msg.err), 0))
		}
		m.password.Reset()
		return m, loggedIn(msg.session)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Guest):
			return m.continueAsGuest()
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submit acts on the focused control.
func (m Model) submit() (Model, tea.Cmd) {
	switch m.focus {
	case focusEmail:
		m.setFocus(focusPassword)
		return m, nil
	case focusGuest:
		return m.continueAsGuest()
	}
	return m.signIn()
}

func (m Model) signIn() (Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	if err := session.CheckCredentials(m.email.Value(), m.password.Value()); err != nil {
		return m, components.ShowToast(components.NewToast(
			components.ToastKindWarning, "Sign in", describe(err), 0))
	}

	m.pending = true
	sessions := m.sessions
	email, password := m.email.Value(), m.password.Value()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), signInTimeout)
		defer cancel()
		sess, err := sessions.SignIn(ctx, email, password)
		return signInResultMsg{session: sess, err: err}
	}
}

func (m Model) continueAsGuest() (Model, tea.Cmd) {
	sess := m.sessions.ContinueAsGuest()
	return m, tea.Batch(
		components.ShowToast(components.NewToast(components.ToastKindStatus, GuestToastTitle, GuestToastBody, m.toastDuration)),
		loggedIn(sess),
	)
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.email.Blur()
	m.password.Blur()
	switch f {
	case focusEmail:
		m.email.Focus()
	case focusPassword:
		m.password.Focus()
	}
}

func loggedIn(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		return LoggedInMsg{Session: sess}
	}
}

// describe turns a sign-in error into toast text.
func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrSignInUnavailable):
		return "Sign in is not available yet. Continue as Guest instead."
	case errors.Is(err, session.ErrMissingCredentials):
		return "Enter your email and password."
	case errors.Is(err, context.DeadlineExceeded):
		return "Sign in timed out."
	default:
		return err.Error()
	}
}

// Title is the header title for this screen.
func (m Model) Title() string { return "Sign In" }

// ShortHelp returns the bindings for the status bar.
func (m Model) ShortHelp() []key.Binding { return m.keys.ShortHelp() }

// Keys returns the screen's key map.
func (m Model) Keys() KeyMap { return m.keys }

// Pending reports whether a sign-in is in flight.
func (m Model) Pending() bool { return m.pending }
