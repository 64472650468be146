// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/arena-tui/internal/model"
)

func testFeed() []model.Message {
	return []model.Message{
		model.NewMessage(1, "Player123", "Hey everyone! Anyone up for a game?", "2 min ago"),
		model.NewMessage(2, "PongMaster", "I just beat the expert AI! So pumped!", "5 min ago"),
		model.NewMessage(3, "GameNinja", "What arena are you all playing in?", "10 min ago"),
	}
}

func testThreads() []model.DirectThread {
	return []model.DirectThread{
		{Contact: "Player123", LastMessage: model.NewMessage(1, "Player123", "Want to play a match?", "30 min ago"), Unread: 2},
		{Contact: "GameMaster", LastMessage: model.NewMessage(2, "GameMaster", "Great game yesterday!", "2 hours ago"), Unread: 0},
		{Contact: "PongKing", LastMessage: model.NewMessage(3, "PongKing", "Check out my new high score!", "1 day ago"), Unread: 1},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(model.SelfName, testFeed(), testThreads())
	require.NoError(t, err)
	return s
}

// =============================================================================
// CONSTRUCTION TESTS
// =============================================================================

func TestNewStore_RejectsDuplicateContacts(t *testing.T) {
	threads := append(testThreads(), model.DirectThread{Contact: "PongKing"})

	_, err := NewStore(model.SelfName, nil, threads)

	require.ErrorIs(t, err, ErrDuplicateContact)
	var ce *ContactError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "PongKing", ce.Contact)
}

func TestNewStore_DefaultsSelf(t *testing.T) {
	s, err := NewStore("", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, model.SelfName, s.Self())
}

func TestNewStore_CopiesSeed(t *testing.T) {
	feed := testFeed()
	s, err := NewStore(model.SelfName, feed, nil)
	require.NoError(t, err)

	feed[0].Content = "mutated"
	assert.NotEqual(t, "mutated", s.Feed()[0].Content)
}

// =============================================================================
// BROADCAST TESTS
// =============================================================================

func TestPostBroadcast_PrependsWithGreaterID(t *testing.T) {
	s := newTestStore(t)
	before := s.Feed()

	msg, err := s.PostBroadcast("You", "anyone for ice arena?")
	require.NoError(t, err)

	after := s.Feed()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, msg, after[0])
	assert.Equal(t, "You", msg.Sender)
	assert.Equal(t, model.JustNow, msg.SentAt)
	for _, prior := range before {
		assert.Greater(t, msg.ID, prior.ID)
	}
	assert.Equal(t, before, after[1:])
}

func TestPostBroadcast_IDsStrictlyIncrease(t *testing.T) {
	// Seed IDs out of order; the next ID must clear the maximum, not the length.
	feed := []model.Message{
		model.NewMessage(10, "a", "x", ""),
		model.NewMessage(4, "b", "y", ""),
	}
	s, err := NewStore(model.SelfName, feed, nil)
	require.NoError(t, err)

	var last int64 = 10
	for i := 0; i < 5; i++ {
		msg, err := s.PostBroadcast("You", "tick")
		require.NoError(t, err)
		assert.Greater(t, msg.ID, last)
		last = msg.ID
	}
	assert.Equal(t, 7, s.FeedLen())
}

func TestPostBroadcast_RejectsBlank(t *testing.T) {
	for _, content := range []string{"", " ", "\t\n", "   \r\n  "} {
		s := newTestStore(t)

		_, err := s.PostBroadcast("You", content)

		assert.ErrorIs(t, err, ErrEmptyMessage, "content %q", content)
		assert.Equal(t, 3, s.FeedLen())
	}
}

// =============================================================================
// DIRECT REPLY TESTS
// =============================================================================

func TestReplyToContact_ReplacesLastMessageAndResetsUnread(t *testing.T) {
	s := newTestStore(t)

	thread, err := s.ReplyToContact("Player123", "sure, one match")
	require.NoError(t, err)

	assert.Equal(t, "Player123", thread.Contact)
	assert.Equal(t, 0, thread.Unread)
	assert.Equal(t, "sure, one match", thread.LastMessage.Content)
	assert.Equal(t, model.SelfName, thread.LastMessage.Sender)
	assert.Equal(t, model.JustNow, thread.LastMessage.SentAt)
	assert.Equal(t, 3, s.ThreadCount())

	stored, ok := s.Thread("Player123")
	require.True(t, ok)
	assert.Equal(t, thread, stored)
}

func TestReplyToContact_OverwritesRatherThanAppends(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReplyToContact("PongKing", "first")
	require.NoError(t, err)
	_, err = s.ReplyToContact("PongKing", "second")
	require.NoError(t, err)

	thread, _ := s.Thread("PongKing")
	assert.Equal(t, "second", thread.LastMessage.Content)
	assert.Equal(t, 3, s.ThreadCount())
}

func TestReplyToContact_UnknownContact(t *testing.T) {
	s := newTestStore(t)
	before := s.Threads()

	_, err := s.ReplyToContact("Stranger", "hello?")

	require.ErrorIs(t, err, ErrUnknownContact)
	assert.Contains(t, err.Error(), "Stranger")
	assert.Equal(t, before, s.Threads())
	assert.False(t, s.HasThread("Stranger"))
}

func TestReplyToContact_BlankCheckedBeforeContact(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReplyToContact("Stranger", "  ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestReplyToContact_LeavesOtherThreadsAlone(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReplyToContact("GameMaster", "thanks!")
	require.NoError(t, err)

	p, _ := s.Thread("Player123")
	k, _ := s.Thread("PongKing")
	assert.Equal(t, 2, p.Unread)
	assert.Equal(t, 1, k.Unread)
	assert.Equal(t, 3, s.UnreadTotal())
}

func TestThreads_RosterOrder(t *testing.T) {
	s := newTestStore(t)

	var contacts []string
	for _, th := range s.Threads() {
		contacts = append(contacts, th.Contact)
	}
	assert.Equal(t, []string{"Player123", "GameMaster", "PongKing"}, contacts)
}
