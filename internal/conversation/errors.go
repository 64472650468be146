// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when content is empty after trimming.
	// Callers keep the draft and simply do not submit.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrUnknownContact is returned when a direct reply targets a contact
	// that has no thread in the roster.
	ErrUnknownContact = errors.New("unknown contact")

	// ErrDuplicateContact is returned when seed data lists a contact twice.
	ErrDuplicateContact = errors.New("duplicate contact")
)

// ContactError carries the contact name for contact related failures.
// It unwraps to ErrUnknownContact or ErrDuplicateContact.
type ContactError struct {
	Contact string
	Err     error
}

func (e *ContactError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Contact)
}

func (e *ContactError) Unwrap() error {
	return e.Err
}
