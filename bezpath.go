package bubble

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location, a control point
	// and an end point.
	QuadToKind
	// Close off the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is a single drawing command of a [BezPath].
//
// For MoveTo and LineTo, P0 is the target point. For QuadTo, P0 is the
// control point and P1 the end point. ClosePath uses neither.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s%s", el.Kind, el.P0)
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.P0, el.P1)
	default:
		return el.Kind.String()
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// QuadTo returns a quadratic Bézier element with control point ctrl ending
// at end.
func QuadTo(ctrl, end Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: ctrl, P1: end}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
)

// PathSegment represents a segment of a Bézier path with an explicit start
// point. It acts as a tagged union of [Line] and [QuadBez].
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
}

var _ ParametricCurve = PathSegment{}
var _ Extremer = PathSegment{}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. Lines are
// raised to a quadratic with the control point at their midpoint.
func (seg PathSegment) Quad() QuadBez {
	if seg.Kind == LineKind {
		return QuadBez{seg.P0, seg.P0.Midpoint(seg.P1), seg.P1}
	}
	return QuadBez{seg.P0, seg.P1, seg.P2}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	default:
		return Rect{}
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Start() Point { return seg.P0 }

func (seg PathSegment) End() Point {
	if seg.Kind == LineKind {
		return seg.P1
	}
	return seg.P2
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	default:
		return PathSegment{}
	}
}

func (seg PathSegment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case QuadKind:
		return seg.Quad().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	default:
		return 0
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
	}
}

func (seg PathSegment) Reverse() PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Reverse().Seg()
	case QuadKind:
		return seg.Quad().Reverse().Seg()
	default:
		return PathSegment{}
	}
}

// PathElement returns the drawing command that produces seg from its start
// point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	default:
		return PathElement{}
	}
}

// windingInner assumes that seg is monotonic in y.
func (seg PathSegment) windingInner(pt Point) int {
	start := seg.Start()
	end := seg.End()
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	switch seg.Kind {
	case LineKind:
		if pt.X < min(start.X, end.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X) {
			return sign
		}
		// line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
			return sign
		}
		return 0
	case QuadKind:
		quad := seg.Quad()
		p1 := quad.P1
		if pt.X < min(start.X, end.X, p1.X) {
			return 0
		}
		if pt.X >= max(start.X, end.X, p1.X) {
			return sign
		}
		a := end.Y - 2.0*p1.Y + start.Y
		b := 2.0 * (p1.Y - start.Y)
		c := start.Y - pt.Y
		solution, n := SolveQuadratic(c, b, a)
		for _, t := range solution[:n] {
			if t >= 0.0 && t <= 1.0 {
				if pt.X >= quad.Eval(t).X {
					return sign
				}
				return 0
			}
		}
		return 0
	default:
		return 0
	}
}

// Winding computes the winding number contribution of a single segment by
// casting a ray to the left and counting crossings.
func (seg PathSegment) Winding(pt Point) int {
	exs, n := ExtremaRanges(seg)
	var w int
	for _, ex := range exs[:n] {
		w += seg.Subsegment(ex[0], ex[1]).windingInner(pt)
	}
	return w
}

// BezPath is a path made of lines and quadratic Béziers, stored as a slice of
// drawing commands.
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to the
// path. See [BezPath.ApplyTransform] for a version that modifies the path
// in-place.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make(BezPath, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// ApplyTransform destructively applies an affine transformation to the path.
func (p BezPath) ApplyTransform(aff Affine) {
	for i := range p {
		p[i] = p[i].Transform(aff)
	}
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element with control point ctrl onto the path.
func (p *BezPath) QuadTo(ctrl, end Point) { p.Push(QuadTo(ctrl, end)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(p.Elements()) }

// Start returns the point of the path's first element.
func (p BezPath) Start() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0].EndPoint()
}

// End returns the current point after the path's last element. A trailing
// ClosePath returns to the start of its subpath.
func (p BezPath) End() (Point, bool) {
	var cur, start Point
	ok := false
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			start, cur, ok = el.P0, el.P0, true
		case ClosePathKind:
			cur = start
		default:
			pt, _ := el.EndPoint()
			if !ok {
				start, ok = pt, true
			}
			cur = pt
		}
	}
	return cur, ok
}

// IsClosed reports whether the path ends where it starts, either because
// the last element returns there or because of a trailing ClosePath.
func (p BezPath) IsClosed() bool {
	start, ok1 := p.Start()
	end, ok2 := p.End()
	return ok1 && ok2 && start == end
}

// Flatten flattens the path to a sequence of MoveTo, LineTo and ClosePath
// elements. The tolerance bounds the distance between the curves and
// their polyline approximations; 0.25 suits antialiased rendering.
func (p BezPath) Flatten(tolerance float64) iter.Seq[PathElement] {
	return Flatten(p.Elements(), tolerance)
}

// SignedArea returns the signed area of the path, treating every subpath as
// closed.
//
// The area is positive for paths that run clockwise in a y-down space.
func (p BezPath) SignedArea() float64 {
	var sum float64
	for seg := range p.closedSegments() {
		sum += seg.SignedArea()
	}
	return sum
}

// Winding returns the winding number of pt, treating every subpath as closed.
// It is positive inside paths with positive [BezPath.SignedArea].
func (p BezPath) Winding(pt Point) int {
	var sum int
	for seg := range p.closedSegments() {
		sum += seg.Winding(pt)
	}
	return sum
}

// Contains reports whether pt lies inside the path under the nonzero fill
// rule.
func (p BezPath) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// BoundingBox returns the tight bounding box of the path, including the
// extrema of curves.
func (p BezPath) BoundingBox() Rect {
	var bbox Rect
	first := true
	for seg := range p.Segments() {
		sbbox := seg.BoundingBox()
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	if first {
		// A path without segments is bounded by its points.
		for _, el := range p {
			if pt, ok := el.EndPoint(); ok {
				if first {
					first = false
					bbox = NewRectFromPoints(pt, pt)
				} else {
					bbox = bbox.UnionPoint(pt)
				}
			}
		}
	}
	return bbox
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [BezPath.BoundingBox], this uses control points directly rather than computing
// tight bounds for curve elements.
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case QuadToKind:
			addPt(el.P0)
			addPt(el.P1)
		}
	}
	return cbox
}

// IsNaN reports whether any point of the path is NaN.
func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// closedSegments is like Segments but closes every subpath that does not
// end at its start.
func (p BezPath) closedSegments() iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		begun := false
		closeSub := func() bool {
			if begun && last != start {
				return yield(Line{last, start}.Seg())
			}
			return true
		}
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				if !closeSub() {
					return
				}
				start, last, begun = el.P0, el.P0, true
			case LineToKind:
				if begun && !yield(Line{last, el.P0}.Seg()) {
					return
				}
				if !begun {
					start, begun = el.P0, true
				}
				last = el.P0
			case QuadToKind:
				if begun && !yield(QuadBez{last, el.P0, el.P1}.Seg()) {
					return
				}
				if !begun {
					start, begun = el.P1, true
				}
				last = el.P1
			case ClosePathKind:
				if !closeSub() {
					return
				}
				last = start
			}
		}
		closeSub()
	}
}

// ReverseSubpaths returns a new path with the direction of all subpaths
// reversed.
func (p BezPath) ReverseSubpaths() BezPath {
	startIdx := 1
	var startPt Point
	reversed := make(BezPath, 0, len(p))
	// pendingMove keeps degenerate subpaths in the reversed output.
	pendingMove := false
	for ix, el := range p {
		switch el.Kind {
		case MoveToKind:
			if pendingMove {
				reversed.Push(MoveTo(startPt))
			}
			if startIdx < ix {
				reverseSubpath(startPt, p[startIdx:ix], &reversed)
			}
			pendingMove = true
			startPt = el.P0
			startIdx = ix + 1
		case ClosePathKind:
			if startIdx <= ix {
				reverseSubpath(startPt, p[startIdx:ix], &reversed)
			}
			reversed.Push(ClosePath())
			startIdx = ix + 1
			pendingMove = false
		default:
			pendingMove = false
		}
	}
	if startIdx < len(p) {
		reverseSubpath(startPt, p[startIdx:], &reversed)
	} else if pendingMove {
		reversed.Push(MoveTo(startPt))
	}
	return reversed
}

// reverseSubpath expects els to contain no MoveTo or ClosePath elements.
func reverseSubpath(startPt Point, els []PathElement, reversed *BezPath) {
	endPt := startPt
	if len(els) > 0 {
		endPt, _ = els[len(els)-1].EndPoint()
	}
	reversed.Push(MoveTo(endPt))
	for ix := len(els) - 1; ix >= 0; ix-- {
		el := &els[ix]
		prev := startPt
		if ix > 0 {
			prev, _ = els[ix-1].EndPoint()
		}
		switch el.Kind {
		case LineToKind:
			reversed.Push(LineTo(prev))
		case QuadToKind:
			reversed.Push(QuadTo(el.P0, prev))
		default:
			panic("reverseSubpath expects MoveTo and ClosePath to be removed")
		}
	}
}

// Flatten flattens a sequence of path elements to a sequence of MoveTo,
// LineTo and ClosePath elements that approximate the original curves.
//
// The tolerance value controls the maximum distance between the curved input
// segments and their polyline approximations. The number of lines per curve
// scales with the inverse square root of tolerance.
func Flatten(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var lastPt option[Point]
		emit := func(pt Point) bool { return yield(LineTo(pt)) }
		for el := range seq {
			switch el.Kind {
			case MoveToKind, LineToKind:
				lastPt.set(el.P0)
				if !yield(el) {
					return
				}
			case QuadToKind:
				if lastPt.isSet {
					if !(QuadBez{lastPt.value, el.P0, el.P1}).Flatten(tolerance, emit) {
						return
					}
				} else if !yield(MoveTo(el.P1)) {
					return
				}
				lastPt.set(el.P1)
			case ClosePathKind:
				lastPt.clear()
				if !yield(el) {
					return
				}
			}
		}
	}
}
