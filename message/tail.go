package message

import (
	"fmt"
	"strings"

	"honnef.co/go/bubble"
)

// TailPosition is a caller's request for a bubble tail. Unlike
// [bubble.TailSide] it has an undefined state, its zero value, which lets
// the message's type decide.
type TailPosition int

const (
	TailUndefined TailPosition = iota
	TailLeft
	TailRight
	TailNone
)

func (p TailPosition) String() string {
	switch p {
	case TailUndefined:
		return "undefined"
	case TailLeft:
		return "left"
	case TailRight:
		return "right"
	case TailNone:
		return "none"
	default:
		return fmt.Sprintf("TailPosition(%d)", int(p))
	}
}

// ParseTailPosition parses the names produced by [TailPosition.String]. The
// empty string parses as [TailUndefined].
func ParseTailPosition(s string) (TailPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "undefined":
		return TailUndefined, nil
	case "left":
		return TailLeft, nil
	case "right":
		return TailRight, nil
	case "none":
		return TailNone, nil
	default:
		return TailUndefined, fmt.Errorf("invalid tail position %q", s)
	}
}

func (p *TailPosition) UnmarshalText(b []byte) error {
	v, err := ParseTailPosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Resolve maps the requested position to the side of the bubble that carries
// the tail. An undefined position puts the tail on the right of sent
// messages and on the left of received ones.
func (p TailPosition) Resolve(typ Type) bubble.TailSide {
	switch p {
	case TailLeft:
		return bubble.TailLeft
	case TailRight:
		return bubble.TailRight
	case TailNone:
		return bubble.TailNone
	default:
		if typ == Sent {
			return bubble.TailRight
		}
		return bubble.TailLeft
	}
}

// Tails returns the tail position of each message in a conversation. Only
// the last message carries a tail. When the last message is an empty draft,
// the message before it carries the tail instead, so that the tail doesn't
// disappear while a new message is being started.
//
// Tail-bearing messages get [TailUndefined], letting [TailPosition.Resolve]
// pick the side from the message type; all others get [TailNone].
func Tails(msgs []Message) []TailPosition {
	out := make([]TailPosition, len(msgs))
	for i := range out {
		out[i] = TailNone
	}
	n := len(msgs)
	if n == 0 {
		return out
	}
	out[n-1] = TailUndefined
	if n >= 2 && !msgs[n-1].Visible() {
		out[n-2] = TailUndefined
	}
	return out
}

// Sides resolves [Tails] for every message.
func Sides(msgs []Message) []bubble.TailSide {
	tails := Tails(msgs)
	out := make([]bubble.TailSide, len(msgs))
	for i, m := range msgs {
		out[i] = tails[i].Resolve(m.Type)
	}
	return out
}
