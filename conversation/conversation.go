// Package conversation manages the list of messages shown in a chat: a draft
// that tracks the text being typed, submitted messages that expire after a
// delay, and messages received from elsewhere.
package conversation

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"honnef.co/go/bubble/message"
)

// DefaultExpiry is how long a submitted message stays in the conversation.
const DefaultExpiry = 10 * time.Second

type pendingExpiry struct {
	timer Timer
}

var (
	ErrEmptyDraft = errors.New("draft is empty")
	ErrClosed     = errors.New("conversation is closed")
	ErrDuplicate  = errors.New("message is already in the conversation")
)

type Option func(*Conversation)

// WithExpiry sets how long submitted messages stay in the conversation. A
// duration of zero or less keeps them forever.
func WithExpiry(d time.Duration) Option {
	return func(c *Conversation) { c.expiry = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Conversation) {
		if l != nil {
			c.log = l
		}
	}
}

// WithType sets the type of draft messages. It defaults to [message.Sent].
func WithType(typ message.Type) Option {
	return func(c *Conversation) { c.draftType = typ }
}

func WithClock(clk Clock) Option {
	return func(c *Conversation) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// Conversation is an ordered list of messages whose last element is always
// the draft. It is safe for concurrent use.
type Conversation struct {
	expiry    time.Duration
	draftType message.Type
	clock     Clock
	log       *zap.Logger

	mu      sync.Mutex
	msgs    []message.Message
	timers  map[uuid.UUID]*pendingExpiry
	changes chan struct{}
	closed  bool
}

// New returns a conversation holding a single empty draft.
func New(opts ...Option) *Conversation {
	c := &Conversation{
		expiry:    DefaultExpiry,
		draftType: message.Sent,
		clock:     realClock{},
		log:       zap.NewNop(),
		timers:    make(map[uuid.UUID]*pendingExpiry),
		changes:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.msgs = []message.Message{c.newDraft()}
	return c
}

func (c *Conversation) newDraft() message.Message {
	return message.New("", c.draftType)
}

// notify signals a change without blocking. Multiple changes between two
// receives coalesce into one. The caller must hold c.mu.
func (c *Conversation) notify() {
	if c.closed {
		return
	}
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// Changes returns a channel that receives a value after the conversation
// changed. It is closed by [Conversation.Close].
func (c *Conversation) Changes() <-chan struct{} {
	return c.changes
}

// Draft returns the message currently being typed.
func (c *Conversation) Draft() message.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.msgs[len(c.msgs)-1]
}

// SetDraft replaces the content of the draft.
func (c *Conversation) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	d := &c.msgs[len(c.msgs)-1]
	if d.Content == text {
		return
	}
	d.Content = text
	c.notify()
}

// Submit turns the draft into a regular message and starts a new, empty
// draft. The submitted message is removed once the expiry delay elapses.
func (c *Conversation) Submit(ctx context.Context) (message.Message, error) {
	if err := ctx.Err(); err != nil {
		return message.Message{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return message.Message{}, ErrClosed
	}
	m := c.msgs[len(c.msgs)-1]
	if m.Content == "" {
		return message.Message{}, ErrEmptyDraft
	}
	c.msgs = append(c.msgs, c.newDraft())
	c.scheduleLocked(m.ID)
	c.log.Debug("Submitted message", zap.Stringer("id", m.ID), zap.Int("length", len(m.Content)))
	c.notify()
	return m, nil
}

// Append inserts m before the draft. Like submitted messages, appended
// messages expire. Append returns [ErrDuplicate] if a message with the same
// ID, including the draft, is already in the conversation.
func (c *Conversation) Append(m message.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if slices.ContainsFunc(c.msgs, func(o message.Message) bool { return o.ID == m.ID }) {
		return ErrDuplicate
	}
	c.msgs = slices.Insert(c.msgs, len(c.msgs)-1, m)
	c.scheduleLocked(m.ID)
	c.log.Debug("Appended message", zap.Stringer("id", m.ID), zap.Stringer("type", m.Type))
	c.notify()
	return nil
}

func (c *Conversation) scheduleLocked(id uuid.UUID) {
	if c.expiry <= 0 {
		return
	}
	if e, ok := c.timers[id]; ok {
		e.timer.Stop()
	}
	e := &pendingExpiry{}
	e.timer = c.clock.AfterFunc(c.expiry, func() { c.expire(id, e) })
	c.timers[id] = e
}

func (c *Conversation) expire(id uuid.UUID, e *pendingExpiry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.timers[id] != e {
		// Cancelled or rescheduled after the timer had already fired.
		return
	}
	delete(c.timers, id)
	if c.removeLocked(id) {
		c.log.Debug("Message expired", zap.Stringer("id", id))
		c.notify()
	}
}

// removeLocked deletes the message with the given ID, unless it is the
// draft.
func (c *Conversation) removeLocked(id uuid.UUID) bool {
	i := slices.IndexFunc(c.msgs[:len(c.msgs)-1], func(m message.Message) bool { return m.ID == id })
	if i < 0 {
		return false
	}
	c.msgs = slices.Delete(c.msgs, i, i+1)
	return true
}

// Remove deletes a message and cancels its expiry. The draft can't be
// removed. Remove reports whether a message was deleted.
func (c *Conversation) Remove(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	if e, ok := c.timers[id]; ok {
		e.timer.Stop()
		delete(c.timers, id)
	}
	if !c.removeLocked(id) {
		return false
	}
	c.notify()
	return true
}

// Clear removes all messages, including the draft, and starts a new draft.
// All pending expiries are cancelled.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.stopAllLocked()
	c.msgs = []message.Message{c.newDraft()}
	c.log.Debug("Cleared conversation")
	c.notify()
}

func (c *Conversation) stopAllLocked() {
	for id, e := range c.timers {
		e.timer.Stop()
		delete(c.timers, id)
	}
}

// Messages returns a copy of the conversation, draft last.
func (c *Conversation) Messages() []message.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.msgs)
}

// Pending returns the number of messages waiting to expire.
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Close cancels all pending expiries and closes the channel returned by
// [Conversation.Changes]. Further modifications are ignored or fail with
// [ErrClosed]. Close may be called more than once.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.stopAllLocked()
	c.closed = true
	close(c.changes)
}
