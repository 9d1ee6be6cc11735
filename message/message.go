// Package message models chat messages and decides which of them carry a
// bubble tail, and on which side.
package message

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Type distinguishes messages the user sent from messages they received.
type Type int

const (
	Sent Type = iota
	Received
)

func (t Type) String() string {
	switch t {
	case Sent:
		return "sent"
	case Received:
		return "received"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) MarshalText() ([]byte, error) {
	if t != Sent && t != Received {
		return nil, fmt.Errorf("invalid message type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "sent":
		*t = Sent
	case "received":
		*t = Received
	default:
		return fmt.Errorf("invalid message type %q", b)
	}
	return nil
}

// Message is a single chat message. Messages are compared by ID; the content
// of a draft changes while it is being typed.
type Message struct {
	ID      uuid.UUID
	Content string
	Type    Type
}

// New returns a message with a fresh random ID.
func New(content string, typ Type) Message {
	return Message{
		ID:      uuid.New(),
		Content: content,
		Type:    typ,
	}
}

// Visible reports whether the message has anything to show. Empty messages
// keep their place in a conversation but are not drawn.
func (m Message) Visible() bool {
	return m.Content != ""
}

func (m Message) String() string {
	return fmt.Sprintf("%s %s %q", m.ID, m.Type, m.Content)
}
