// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedAuth accepts a single email/password pair.
type fixedAuth struct {
	email, password string
}

func (f fixedAuth) SignIn(_ context.Context, email, password string) (*Session, error) {
	if err := CheckCredentials(email, password); err != nil {
		return nil, err
	}
	if email != f.email || password != f.password {
		return nil, ErrSignInUnavailable
	}
	return &Session{ID: "user-1", User: "Ace", Email: email}, nil
}

func TestNewGuest(t *testing.T) {
	s := NewGuest()
	assert.True(t, s.Guest)
	assert.Equal(t, "Guest", s.User)
	assert.False(t, s.StartedAt.IsZero())
	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)

	assert.NotEqual(t, s.ID, NewGuest().ID)
}

func TestUnavailable_SignIn(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"both set", "ace@example.com", "hunter2", ErrSignInUnavailable},
		{"blank email", "  ", "hunter2", ErrMissingCredentials},
		{"blank password", "ace@example.com", "", ErrMissingCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := Unavailable{}.SignIn(context.Background(), tt.email, tt.password)
			assert.Nil(t, sess)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnavailable_SignInCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Unavailable{}.SignIn(ctx, "ace@example.com", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManager_SignInFailureKeepsState(t *testing.T) {
	m := NewManager(nil)
	assert.False(t, m.Active())

	_, err := m.SignIn(context.Background(), "ace@example.com", "pw")
	assert.ErrorIs(t, err, ErrSignInUnavailable)
	assert.False(t, m.Active())
	assert.Nil(t, m.Current())
}

func TestManager_SignInSuccess(t *testing.T) {
	m := NewManager(fixedAuth{email: "ace@example.com", password: "pw"})

	sess, err := m.SignIn(context.Background(), "ace@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ace", sess.User)
	assert.False(t, sess.StartedAt.IsZero())

	cur := m.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "user-1", cur.ID)
	assert.False(t, cur.Guest)
}

func TestManager_ContinueAsGuest(t *testing.T) {
	m := NewManager(nil)
	sess := m.ContinueAsGuest()

	require.True(t, m.Active())
	assert.Equal(t, sess.ID, m.Current().ID)

	status := m.GetStatus()
	assert.Equal(t, sess.ID, status.SessionID)
	assert.Equal(t, "Guest", status.User)
	assert.True(t, status.Guest)
	assert.GreaterOrEqual(t, status.Duration, time.Duration(0))

	m.SignOut()
	assert.False(t, m.Active())
	assert.Equal(t, Status{}, m.GetStatus())
}

func TestManager_CurrentReturnsCopy(t *testing.T) {
	m := NewManager(nil)
	m.ContinueAsGuest()

	cur := m.Current()
	cur.User = "mutated"
	assert.Equal(t, "Guest", m.Current().User)
}

func TestManager_RecordActivity(t *testing.T) {
	m := NewManager(nil)
	m.ContinueAsGuest()

	time.Sleep(20 * time.Millisecond)
	before := m.GetStatus().IdleTime
	m.RecordActivity()
	after := m.GetStatus().IdleTime

	assert.Less(t, after, before)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{2 * time.Minute, "2m"},
		{2*time.Minute + 5*time.Second, "2m 5s"},
		{61 * time.Minute, "61m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d), tt.d.String())
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager(nil)
	m.ContinueAsGuest()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordActivity()
				_ = m.GetStatus()
				_ = m.Current()
			}
		}()
	}
	wg.Wait()
}
