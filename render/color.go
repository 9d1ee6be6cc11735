package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the colors of a conversation.
type Palette struct {
	Sent         color.RGBA
	SentText     color.RGBA
	Received     color.RGBA
	ReceivedText color.RGBA
	Background   color.RGBA
}

var DefaultPalette = Palette{
	Sent:         color.RGBA{0x0a, 0x84, 0xff, 0xff},
	SentText:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	Received:     color.RGBA{0xe5, 0xe5, 0xea, 0xff},
	ReceivedText: color.RGBA{0x00, 0x00, 0x00, 0xff},
	Background:   color.RGBA{0xff, 0xff, 0xff, 0xff},
}

// ParseColor parses colors of the form #rgb, #rrggbb and #rrggbbaa. The
// leading hash is optional. Colors with an alpha component are
// non-premultiplied, as in CSS.
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}

// FormatColor formats c as #rrggbb, or #rrggbbaa if it isn't opaque.
func FormatColor(c color.RGBA) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
