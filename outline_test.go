package bubble

import (
	"math"
	"slices"
	"sync"
	"testing"
)

func TestOutlineRightTail(t *testing.T) {
	got := Outline(NewRect(0, 0, 100, 40), TailRight)
	notch := 100 - 16.0/3
	want := BezPath{
		MoveTo(Pt(16, 0)),
		LineTo(Pt(84, 0)),
		QuadTo(Pt(100, 0), Pt(100, 16)),
		LineTo(Pt(100, 32)),
		QuadTo(Pt(100, 40), Pt(105, 40)),
		QuadTo(Pt(notch, 40), Pt(notch, 36)),
		QuadTo(Pt(notch, 40), Pt(79, 40)),
		LineTo(Pt(16, 40)),
		QuadTo(Pt(0, 40), Pt(0, 24)),
		LineTo(Pt(0, 16)),
		QuadTo(Pt(0, 0), Pt(16, 0)),
	}
	diff(t, want, got, approx)

	if len(got) != 11 {
		t.Fatalf("got %d path elements, want 11", len(got))
	}
	start, _ := got.Start()
	end, _ := got.End()
	assertNear(t, end, start, 1e-9)
}

func TestOutlineLeftTail(t *testing.T) {
	got := Outline(NewRect(0, 0, 100, 40), TailLeft)
	notch := 16.0 / 3
	want := BezPath{
		MoveTo(Pt(16, 0)),
		LineTo(Pt(84, 0)),
		QuadTo(Pt(100, 0), Pt(100, 16)),
		LineTo(Pt(100, 24)),
		QuadTo(Pt(100, 40), Pt(84, 40)),
		LineTo(Pt(21, 40)),
		QuadTo(Pt(notch, 40), Pt(notch, 36)),
		QuadTo(Pt(notch, 40), Pt(-5, 40)),
		QuadTo(Pt(0, 40), Pt(0, 32)),
		LineTo(Pt(0, 16)),
		QuadTo(Pt(0, 0), Pt(16, 0)),
	}
	diff(t, want, got, approx)
}

func TestOutlineNoTail(t *testing.T) {
	for _, r := range []Rect{
		NewRect(0, 0, 100, 40),
		NewRect(-20, 13, 32, 32),
		NewRect(5, 5, 200, 33),
	} {
		p := Outline(r, TailNone)
		if len(p) != 9 {
			t.Fatalf("%v: got %d path elements, want 9", r, len(p))
		}
		rad := DefaultStyle.Radius(r)
		// Every corner is a quadratic whose control point is the corner
		// and whose ends are rad away from it along both edges.
		corners := []Point{
			Pt(r.MaxX(), r.MinY()),
			Pt(r.MaxX(), r.MaxY()),
			Pt(r.MinX(), r.MaxY()),
			Pt(r.MinX(), r.MinY()),
		}
		var i int
		for seg := range p.Segments() {
			if seg.Kind != QuadKind {
				continue
			}
			c := corners[i]
			i++
			assertNear(t, seg.P1, c, 1e-9)
			if d := seg.P0.Distance(c); !approxEqual(d, rad) {
				t.Errorf("%v: corner %s starts %v away, want %v", r, c, d, rad)
			}
			if d := seg.P2.Distance(c); !approxEqual(d, rad) {
				t.Errorf("%v: corner %s ends %v away, want %v", r, c, d, rad)
			}
		}
		if i != 4 {
			t.Errorf("%v: got %d corners, want 4", r, i)
		}

		// The quadratic corners cut rad²/6 off each corner of the rectangle.
		want := r.Width()*r.Height() - 4*rad*rad/6
		if got := p.SignedArea(); !approxEqual(got, want) {
			t.Errorf("%v: got area %v, want %v", r, got, want)
		}
	}
}

func TestOutlineBoundingBox(t *testing.T) {
	for _, r := range []Rect{
		NewRect(0, 0, 32, 32),
		NewRect(0, 0, 100, 40),
		NewRect(-50, 10, 64.5, 120),
	} {
		diff(t, r, Outline(r, TailNone).BoundingBox(), approx)

		right := Outline(r, TailRight).BoundingBox()
		if !approxEqual(right.MaxX(), r.MaxX()+DefaultStyle.TailWidth) {
			t.Errorf("%v: right tail reaches x = %v, want %v", r, right.MaxX(), r.MaxX()+DefaultStyle.TailWidth)
		}
		diff(t, DefaultStyle.Bounds(r, TailRight), right, approx)

		left := Outline(r, TailLeft).BoundingBox()
		if !approxEqual(left.MinX(), r.MinX()-DefaultStyle.TailWidth) {
			t.Errorf("%v: left tail reaches x = %v, want %v", r, left.MinX(), r.MinX()-DefaultStyle.TailWidth)
		}
		diff(t, DefaultStyle.Bounds(r, TailLeft), left, approx)
	}
}

// sameSegments reports whether a and b consist of the same segments, in any
// order and direction.
func sameSegments(t *testing.T, a, b BezPath) {
	t.Helper()
	const epsilon = 1e-9
	match := func(x, y PathSegment) bool {
		if x.Kind != y.Kind {
			return false
		}
		return x.P0.ApproxEqual(y.P0, epsilon) &&
			x.P1.ApproxEqual(y.P1, epsilon) &&
			x.P2.ApproxEqual(y.P2, epsilon)
	}
	rest := slices.Collect(b.Segments())
	for seg := range a.Segments() {
		i := slices.IndexFunc(rest, func(o PathSegment) bool {
			return match(seg, o) || match(seg, o.Reverse())
		})
		if i < 0 {
			t.Errorf("segment %v has no counterpart", seg)
			continue
		}
		rest = slices.Delete(rest, i, i+1)
	}
	for _, seg := range rest {
		t.Errorf("segment %v has no counterpart", seg)
	}
}

func TestOutlineMirrorSymmetry(t *testing.T) {
	for _, r := range []Rect{
		NewRect(0, 0, 100, 40),
		NewRect(12.5, -3, 61, 20),
		NewRect(0, 0, 10, 10),
	} {
		mirror := MirrorX(r.Center().X)
		left := Outline(r, TailLeft)
		right := Outline(r, TailRight)
		sameSegments(t, left.Transform(mirror), right)

		// The mirror image runs the other way around.
		if a, b := left.Transform(mirror).SignedArea(), right.SignedArea(); !approxEqual(a, -b) {
			t.Errorf("%v: got mirrored area %v, want %v", r, a, -b)
		}

		none := Outline(r, TailNone)
		sameSegments(t, none.Transform(mirror), none)
	}
}

func TestOutlineClampsRadius(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if got := DefaultStyle.Radius(r); got != 5 {
		t.Fatalf("got radius %v, want 5", got)
	}
	want := BezPath{
		MoveTo(Pt(5, 0)),
		LineTo(Pt(5, 0)),
		QuadTo(Pt(10, 0), Pt(10, 5)),
		LineTo(Pt(10, 5)),
		QuadTo(Pt(10, 10), Pt(5, 10)),
		LineTo(Pt(5, 10)),
		QuadTo(Pt(0, 10), Pt(0, 5)),
		LineTo(Pt(0, 5)),
		QuadTo(Pt(0, 0), Pt(5, 0)),
	}
	diff(t, want, Outline(r, TailNone))

	if got := DefaultStyle.Radius(NewRect(0, 0, 200, 3)); got != 1.5 {
		t.Errorf("got radius %v, want 1.5", got)
	}
	if got := DefaultStyle.Radius(NewRect(0, 0, 200, 300)); got != 16 {
		t.Errorf("got radius %v, want 16", got)
	}
}

func TestOutlineDegenerate(t *testing.T) {
	for _, r := range []Rect{
		{},
		NewRect(3, 4, 0, 20),
		NewRect(3, 4, 20, 0),
		NewRect(0, 0, 1e-300, 1e-300),
	} {
		for _, tail := range []TailSide{TailNone, TailLeft, TailRight} {
			p := Outline(r, tail)
			if p.IsNaN() {
				t.Errorf("%v, %s: outline contains NaN: %v", r, tail, p)
			}
			if !p.IsClosed() {
				t.Errorf("%v, %s: outline isn't closed: %v", r, tail, p)
			}
			if p[0].Kind != MoveToKind {
				t.Errorf("%v, %s: outline starts with %s", r, tail, p[0])
			}
		}
	}
	diff(t, float64(0), DefaultStyle.Radius(Rect{}))
}

func TestOutlineReversedRect(t *testing.T) {
	r := Rect{X0: 100, Y0: 40, X1: 0, Y1: 0}
	diff(t, Outline(r.Abs(), TailRight), Outline(r, TailRight))
}

func TestOutlineInterior(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	for _, tail := range []TailSide{TailNone, TailLeft, TailRight} {
		p := Outline(r, tail)
		if w := p.Winding(r.Center()); w != 1 {
			t.Errorf("%s: got winding %d at the center, want 1", tail, w)
		}
		if p.SignedArea() <= 0 {
			t.Errorf("%s: got area %v, want positive (clockwise)", tail, p.SignedArea())
		}
		for _, pt := range []Point{Pt(0.5, 0.5), Pt(99.5, 0.5), Pt(-1, 20), Pt(101, 20), Pt(50, 41)} {
			if p.Contains(pt) {
				t.Errorf("%s: %s is inside the outline", tail, pt)
			}
		}
	}

	// The tail protrudes past the rectangle.
	if !Outline(r, TailRight).Contains(Pt(101, 38)) {
		t.Error("expected the right tail to cover (101, 38)")
	}
	if !Outline(r, TailLeft).Contains(Pt(-1, 38)) {
		t.Error("expected the left tail to cover (-1, 38)")
	}
	// Below the notch, a gap separates the tail from the body; above it,
	// the body is solid.
	if Outline(r, TailRight).Contains(Pt(100-16.0/3, 38)) {
		t.Error("expected the gap below the right tail's notch to be empty")
	}
	if !Outline(r, TailRight).Contains(Pt(100-16.0/3, 34)) {
		t.Error("expected the body above the right tail's notch to be filled")
	}
}

func TestOutlineIdempotent(t *testing.T) {
	r := NewRect(1.25, 2.5, 123.75, 45.125)
	for _, tail := range []TailSide{TailNone, TailLeft, TailRight} {
		a := Outline(r, tail)
		b := Outline(r, tail)
		diff(t, a, b)
		// The results don't share storage.
		a[0] = MoveTo(Pt(-1, -1))
		if b[0] == a[0] {
			t.Fatal("outlines share their backing array")
		}
	}
}

func TestOutlineConcurrent(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	want := Outline(r, TailRight)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := Outline(r, TailRight); !slices.Equal(got, want) {
					t.Error("concurrent outline differs")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestOutlineCustomStyle(t *testing.T) {
	s := Style{CornerRadius: 6, TailWidth: 4, TailHeight: 2, TailCurveControlOffset: 3}
	p := s.Outline(NewRect(0, 0, 60, 20), TailRight)
	diff(t, QuadTo(Pt(60, 20), Pt(64, 20)), p[4])
	diff(t, QuadTo(Pt(58, 20), Pt(58, 18)), p[5])
	diff(t, QuadTo(Pt(58, 20), Pt(50, 20)), p[6])
	diff(t, LineTo(Pt(60, 17)), p[3])

	square := Style{}.Outline(NewRect(0, 0, 10, 10), TailNone)
	if a := square.SignedArea(); !approxEqual(a, 100) {
		t.Errorf("zero radius: got area %v, want 100", a)
	}
	if rad := (Style{}).Radius(NewRect(0, 0, 1, 1)); rad != 0 || math.Signbit(rad) {
		t.Errorf("got radius %v for a zero style, want 0", rad)
	}
}
