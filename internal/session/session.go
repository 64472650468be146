// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GuestName is the display name given to guest sessions.
const GuestName = "Guest"

var (
	// ErrSignInUnavailable is returned when no authentication backend exists.
	ErrSignInUnavailable = errors.New("sign in is not available")

	// ErrMissingCredentials is returned when email or password is blank.
	ErrMissingCredentials = errors.New("email and password are required")
)

// Session describes the current user of the client.
type Session struct {
	ID        string
	User      string
	Email     string
	Guest     bool
	StartedAt time.Time
}

// NewGuest returns a guest session with a fresh ID.
func NewGuest() *Session {
	return &Session{
		ID:        uuid.NewString(),
		User:      GuestName,
		Guest:     true,
		StartedAt: time.Now(),
	}
}

// Authenticator checks credentials and returns a session for the user.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
}

// Unavailable is the default Authenticator. It validates that both
// credentials were supplied and then always refuses.
type Unavailable struct{}

// SignIn implements Authenticator.
func (Unavailable) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if err := CheckCredentials(email, password); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrSignInUnavailable
}

// CheckCredentials reports ErrMissingCredentials when either field is blank.
func CheckCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingCredentials
	}
	return nil
}
