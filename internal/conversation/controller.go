// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"errors"
	"log"

	"github.com/jeranaias/arena-tui/internal/model"
)

// SendResult describes what a successful Send did.
type SendResult struct {
	// Target is the mode the message was routed by.
	Target Mode

	// Message is the message that was created. For a direct reply it is
	// the thread's new last message.
	Message model.Message

	// Thread is set for direct replies.
	Thread *model.DirectThread

	// Notice is set for direct replies.
	Notice *Notice
}

// IsDirect returns true if the send went to a direct thread.
func (r SendResult) IsDirect() bool {
	return r.Thread != nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers fn to receive events.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller routes compose input to the store according to the mode.
// It starts in Broadcast mode.
type Controller struct {
	store    *Store
	mode     Mode
	observer Observer
}

// NewController creates a controller over store.
func NewController(store *Store, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		mode:  BroadcastMode(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the underlying store.
func (c *Controller) Store() *Store {
	return c.store
}

// Mode returns the current compose mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SelectContact targets contact for the next send. The contact does not
// need an existing thread. The compose draft is always discarded.
func (c *Controller) SelectContact(contact string) Transition {
	return c.transition(DirectMode(contact), true)
}

// CancelDirect returns to Broadcast. No-op when already there.
func (c *Controller) CancelDirect() Transition {
	return c.transition(BroadcastMode(), false)
}

// Send routes content by the current mode. A successful direct reply
// returns the controller to Broadcast. On error nothing changes.
func (c *Controller) Send(content string) (SendResult, error) {
	switch c.mode.Kind() {
	case ModeDirect:
		return c.sendDirect(content)
	default:
		return c.sendBroadcast(content)
	}
}

func (c *Controller) sendBroadcast(content string) (SendResult, error) {
	msg, err := c.store.PostBroadcast(c.store.Self(), content)
	if err != nil {
		return SendResult{}, err
	}

	res := SendResult{Target: c.mode, Message: msg}
	log.Printf("CHAT_BROADCAST | id=%d feed_len=%d", msg.ID, c.store.FeedLen())
	c.emit(Event{Kind: EventBroadcastPosted, Result: res})
	return res, nil
}

func (c *Controller) sendDirect(content string) (SendResult, error) {
	contact, _ := c.mode.Contact()

	thread, err := c.store.ReplyToContact(contact, content)
	if err != nil {
		if !errors.Is(err, ErrEmptyMessage) {
			log.Printf("CHAT_DM_FAILED | contact=%s reason=%v", contact, err)
		}
		return SendResult{}, err
	}

	res := SendResult{
		Target:  c.mode,
		Message: thread.LastMessage,
		Thread:  &thread,
		Notice: &Notice{
			Kind:    NoticeInfo,
			Contact: contact,
			Text:    content,
		},
	}
	log.Printf("CHAT_DM_SENT | contact=%s", contact)
	c.emit(Event{Kind: EventReplySent, Result: res})

	// Sending a direct message leaves the direct view.
	c.transition(BroadcastMode(), true)
	return res, nil
}

func (c *Controller) transition(to Mode, clearDraft bool) Transition {
	t := Transition{From: c.mode, To: to, ClearDraft: clearDraft}
	c.mode = to
	if t.Changed() {
		c.emit(Event{Kind: EventModeChanged, Transition: t})
	}
	return t
}

func (c *Controller) emit(ev Event) {
	if c.observer != nil {
		c.observer(ev)
	}
}
