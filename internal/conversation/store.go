// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"github.com/jeranaias/arena-tui/internal/model"
)

// =============================================================================
// STORE
// =============================================================================

// Store holds the broadcast feed and the direct thread roster.
type Store struct {
	self string

	// Broadcast feed, newest first.
	feed   []model.Message
	lastID int64

	// Direct threads keyed by contact, plus roster order for display.
	threads map[string]*model.DirectThread
	order   []string
}

// NewStore creates a store from seed data. The feed must be newest first.
// Seed threads must have unique contacts.
func NewStore(self string, feed []model.Message, threads []model.DirectThread) (*Store, error) {
	if self == "" {
		self = model.SelfName
	}

	s := &Store{
		self:    self,
		feed:    make([]model.Message, len(feed)),
		threads: make(map[string]*model.DirectThread, len(threads)),
		order:   make([]string, 0, len(threads)),
	}
	copy(s.feed, feed)
	for _, msg := range feed {
		if msg.ID > s.lastID {
			s.lastID = msg.ID
		}
	}

	for _, t := range threads {
		if _, exists := s.threads[t.Contact]; exists {
			return nil, &ContactError{Contact: t.Contact, Err: ErrDuplicateContact}
		}
		thread := t
		if thread.Unread < 0 {
			thread.Unread = 0
		}
		s.threads[t.Contact] = &thread
		s.order = append(s.order, t.Contact)
	}

	return s, nil
}

// Self returns the identity used for outgoing messages.
func (s *Store) Self() string {
	return s.self
}

// =============================================================================
// MUTATIONS
// =============================================================================

// PostBroadcast prepends a new message to the feed. Its ID is greater than
// every ID the feed has ever held.
func (s *Store) PostBroadcast(sender, content string) (model.Message, error) {
	if model.IsBlank(content) {
		return model.Message{}, ErrEmptyMessage
	}

	s.lastID++
	msg := model.NewMessage(s.lastID, sender, content, model.JustNow)

	s.feed = append(s.feed, model.Message{})
	copy(s.feed[1:], s.feed)
	s.feed[0] = msg

	return msg, nil
}

// ReplyToContact overwrites the contact's last message with content sent
// by self and marks the thread read. The thread must already exist.
func (s *Store) ReplyToContact(contact, content string) (model.DirectThread, error) {
	if model.IsBlank(content) {
		return model.DirectThread{}, ErrEmptyMessage
	}

	thread, ok := s.threads[contact]
	if !ok {
		return model.DirectThread{}, &ContactError{Contact: contact, Err: ErrUnknownContact}
	}

	// Keep the thread's message ID; the slot is replaced, not appended to.
	msg := model.NewMessage(thread.LastMessage.ID, s.self, content, model.JustNow)
	if thread.LastMessage.Avatar != "" {
		msg.Avatar = thread.LastMessage.Avatar
	}
	thread.LastMessage = msg
	thread.Unread = 0

	return *thread, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Feed returns a copy of the broadcast feed, newest first.
func (s *Store) Feed() []model.Message {
	out := make([]model.Message, len(s.feed))
	copy(out, s.feed)
	return out
}

// FeedLen returns the number of broadcast messages.
func (s *Store) FeedLen() int {
	return len(s.feed)
}

// Threads returns copies of all threads in roster order.
func (s *Store) Threads() []model.DirectThread {
	out := make([]model.DirectThread, 0, len(s.order))
	for _, contact := range s.order {
		out = append(out, *s.threads[contact])
	}
	return out
}

// Thread returns a copy of the contact's thread.
func (s *Store) Thread(contact string) (model.DirectThread, bool) {
	t, ok := s.threads[contact]
	if !ok {
		return model.DirectThread{}, false
	}
	return *t, true
}

// HasThread returns true if the contact is in the roster.
func (s *Store) HasThread(contact string) bool {
	_, ok := s.threads[contact]
	return ok
}

// ThreadCount returns the number of direct threads.
func (s *Store) ThreadCount() int {
	return len(s.threads)
}

// UnreadTotal returns the sum of unread counters across all threads.
func (s *Store) UnreadTotal() int {
	total := 0
	for _, t := range s.threads {
		total += t.Unread
	}
	return total
}
