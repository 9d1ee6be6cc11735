package render

import (
	"fmt"
	"math"

	"honnef.co/go/bubble"
)

// Layout controls the placement of bubbles. All values are in pixels.
type Layout struct {
	// PaddingX and PaddingY separate the text from the bubble's edges.
	PaddingX float64 `yaml:"padding_x"`
	PaddingY float64 `yaml:"padding_y"`
	// MinWidth is the smallest width of a bubble, used for short messages.
	MinWidth float64 `yaml:"min_width"`
	// MaxWidth is the largest width of a bubble. Text is wrapped to fit.
	MaxWidth float64 `yaml:"max_width"`
	FontSize float64 `yaml:"font_size"`
	// Spacing is the vertical gap between two bubbles.
	Spacing float64 `yaml:"spacing"`
	// Margin separates bubbles from the edges of the image.
	Margin float64 `yaml:"margin"`
}

var DefaultLayout = Layout{
	PaddingX: 10,
	PaddingY: 6,
	MinWidth: 34,
	MaxWidth: 240,
	FontSize: 13,
	Spacing:  2,
	Margin:   16,
}

func (l Layout) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"padding_x", l.PaddingX},
		{"padding_y", l.PaddingY},
		{"min_width", l.MinWidth},
		{"max_width", l.MaxWidth},
		{"font_size", l.FontSize},
		{"spacing", l.Spacing},
		{"margin", l.Margin},
	} {
		if f.v < 0 || math.IsInf(f.v, 0) || math.IsNaN(f.v) {
			return fmt.Errorf("%w: %s must be finite and non-negative, got %g", bubble.ErrInvalidArgument, f.name, f.v)
		}
	}
	if l.FontSize == 0 {
		return fmt.Errorf("%w: font_size must be positive", bubble.ErrInvalidArgument)
	}
	if l.MaxWidth < l.MinWidth {
		return fmt.Errorf("%w: max_width %g is smaller than min_width %g", bubble.ErrInvalidArgument, l.MaxWidth, l.MinWidth)
	}
	if l.MaxWidth <= 2*l.PaddingX {
		return fmt.Errorf("%w: max_width %g leaves no room for text", bubble.ErrInvalidArgument, l.MaxWidth)
	}
	return nil
}
