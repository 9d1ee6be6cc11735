package bubble

import (
	"fmt"
	"strings"
)

// TailSide selects which bottom corner of a bubble carries the tail.
type TailSide int

const (
	TailNone TailSide = iota
	TailLeft
	TailRight
)

func (s TailSide) String() string {
	switch s {
	case TailNone:
		return "none"
	case TailLeft:
		return "left"
	case TailRight:
		return "right"
	default:
		return fmt.Sprintf("TailSide(%d)", int(s))
	}
}

// Mirror returns the tail side under horizontal reflection.
func (s TailSide) Mirror() TailSide {
	switch s {
	case TailLeft:
		return TailRight
	case TailRight:
		return TailLeft
	default:
		return s
	}
}

// ParseTailSide parses the names produced by [TailSide.String]. The empty
// string parses as [TailNone].
func ParseTailSide(s string) (TailSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TailNone, nil
	case "left":
		return TailLeft, nil
	case "right":
		return TailRight, nil
	default:
		return TailNone, fmt.Errorf("%w: unknown tail side %q", ErrInvalidArgument, s)
	}
}

func (s TailSide) MarshalText() ([]byte, error) {
	if s < TailNone || s > TailRight {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, s)
	}
	return []byte(s.String()), nil
}

func (s *TailSide) UnmarshalText(b []byte) error {
	v, err := ParseTailSide(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
