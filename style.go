package bubble

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned for negative or non-finite geometry.
var ErrInvalidArgument = errors.New("invalid argument")

// Style holds the fixed parameters of the bubble outline.
type Style struct {
	// CornerRadius is the nominal radius of the four rounded corners. It is
	// clamped per outline to half the rectangle's smaller side.
	CornerRadius float64 `yaml:"corner_radius"`
	// TailWidth is how far the tail's tip protrudes past the rectangle's
	// side.
	TailWidth float64 `yaml:"tail_width"`
	// TailHeight is the depth of the tail's inner notch above the bottom
	// edge.
	TailHeight float64 `yaml:"tail_height"`
	// TailCurveControlOffset is the distance above the bottom edge at which
	// the tail's outer curve leaves the side of the rectangle.
	TailCurveControlOffset float64 `yaml:"tail_curve_control_offset"`
}

// DefaultStyle is the style used by [Outline].
var DefaultStyle = Style{
	CornerRadius:           16,
	TailWidth:              5,
	TailHeight:             4,
	TailCurveControlOffset: 8,
}

// Validate reports an error wrapping [ErrInvalidArgument] if any parameter
// is negative, infinite or NaN.
func (s Style) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"corner radius", s.CornerRadius},
		{"tail width", s.TailWidth},
		{"tail height", s.TailHeight},
		{"tail curve control offset", s.TailCurveControlOffset},
	} {
		if !isFiniteNonNegative(f.v) {
			return fmt.Errorf("%w: %s must be finite and non-negative, got %g", ErrInvalidArgument, f.name, f.v)
		}
	}
	return nil
}

// ValidateRect reports an error wrapping [ErrInvalidArgument] if r has a
// negative or non-finite width or height, or non-finite coordinates.
func ValidateRect(r Rect) error {
	if r.IsNaN() || r.IsInf() {
		return fmt.Errorf("%w: rectangle %v is not finite", ErrInvalidArgument, r)
	}
	if r.Width() < 0 || r.Height() < 0 {
		return fmt.Errorf("%w: rectangle size %v is negative", ErrInvalidArgument, r.Size())
	}
	return nil
}

// Radius returns the corner radius used for r: the style's radius clamped to
// half of r's smaller side.
func (s Style) Radius(r Rect) float64 {
	w := r.MaxX() - r.MinX()
	h := r.MaxY() - r.MinY()
	return max(0, min(s.CornerRadius, min(w, h)/2))
}

// Bounds returns the bounding box of an outline of r with the given tail:
// r itself, widened by TailWidth on the tail's side.
//
// This is exact as long as r is at least 2*CornerRadius wide and high and
// TailWidth does not exceed CornerRadius. Smaller rectangles may have the
// tail's inner curve reach past the opposite corner; use
// [BezPath.BoundingBox] on the outline for those.
func (s Style) Bounds(r Rect, tail TailSide) Rect {
	r = r.Abs()
	switch tail {
	case TailLeft:
		r.X0 -= s.TailWidth
	case TailRight:
		r.X1 += s.TailWidth
	}
	return r
}

func isFiniteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
