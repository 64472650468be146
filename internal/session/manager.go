// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager holds the active session and tracks user activity.
type Manager struct {
	mu sync.Mutex

	auth         Authenticator
	current      *Session
	lastActivity time.Time
}

// NewManager creates a session manager. A nil auth falls back to Unavailable.
func NewManager(auth Authenticator) *Manager {
	if auth == nil {
		auth = Unavailable{}
	}
	return &Manager{auth: auth}
}

// SignIn authenticates through the configured Authenticator and makes the
// resulting session current. On failure the current session is unchanged.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	sess, err := m.auth.SignIn(ctx, email, password)
	if err != nil {
		log.Printf("SESSION_SIGNIN_FAILED | error=%v", err)
		return nil, err
	}
	m.begin(sess)
	log.Printf("SESSION_SIGNIN | id=%s user=%s", sess.ID, sess.User)
	return sess, nil
}

// ContinueAsGuest starts and returns a guest session.
func (m *Manager) ContinueAsGuest() *Session {
	sess := NewGuest()
	m.begin(sess)
	log.Printf("SESSION_GUEST | id=%s", sess.ID)
	return sess
}

func (m *Manager) begin(sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now()
	}
	m.current = sess
	m.lastActivity = sess.StartedAt
}

// SignOut ends the current session, if any.
func (m *Manager) SignOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		log.Printf("SESSION_SIGNOUT | id=%s", m.current.ID)
	}
	m.current = nil
}

// Current returns a copy of the active session, or nil.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	cp := *m.current
	return &cp
}

// Active reports whether a session is in progress.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// =============================================================================
// ACTIVITY TRACKING
// =============================================================================

// RecordActivity updates the last activity timestamp.
// This should be called on user input.
func (m *Manager) RecordActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = time.Now()
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a point-in-time view of the session.
type Status struct {
	SessionID string
	User      string
	Guest     bool
	Duration  time.Duration
	IdleTime  time.Duration
}

// GetStatus returns the current session status. The zero Status is
// returned when no session is active.
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return Status{}
	}
	now := time.Now()
	return Status{
		SessionID: m.current.ID,
		User:      m.current.User,
		Guest:     m.current.Guest,
		Duration:  now.Sub(m.current.StartedAt),
		IdleTime:  now.Sub(m.lastActivity),
	}
}

// FormatDuration returns a human-readable duration string.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		secs := int(d.Seconds())
		return strconv.Itoa(secs) + "s"
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return strconv.Itoa(mins) + "m"
	}
	return strconv.Itoa(mins) + "m " + strconv.Itoa(secs) + "s"
}
