package bubble

// Outline returns the outline of a speech bubble filling r, using
// [DefaultStyle].
func Outline(r Rect, tail TailSide) BezPath {
	return DefaultStyle.Outline(r, tail)
}

// Outline returns the outline of a speech bubble filling r: a rounded
// rectangle whose bottom-left or bottom-right corner is replaced by a tail,
// depending on tail.
//
// The path is a single contour made of one MoveTo followed by lines and
// quadratic Béziers, running clockwise (in a y-down space) from the end of
// the top-left corner. It has no ClosePath element; its last curve ends
// exactly at its first point. Without a tail it has 9 elements, with a tail
// 11.
//
// The corner radius is clamped to half of r's smaller side, so arbitrarily
// small rectangles, including empty ones, produce well-formed outlines.
// Rectangles with reversed corners are treated as their absolute extents.
//
// Outline has no side effects and allocates only its result.
func (s Style) Outline(r Rect, tail TailSide) BezPath {
	var (
		minX = r.MinX()
		minY = r.MinY()
		maxX = r.MaxX()
		maxY = r.MaxY()
		rad  = s.Radius(r)
		tw   = s.TailWidth
		th   = s.TailHeight
		off  = s.TailCurveControlOffset
		// the tail's notch sits a third of the corner radius in from the side
		notch = rad / 3
	)

	n := 9
	if tail == TailLeft || tail == TailRight {
		n = 11
	}
	p := make(BezPath, 0, n)

	start := Pt(minX+rad, minY)
	p.MoveTo(start)

	// top edge and top-right corner
	p.LineTo(Pt(maxX-rad, minY))
	p.QuadTo(Pt(maxX, minY), Pt(maxX, minY+rad))

	// right edge and bottom-right corner
	if tail == TailRight {
		p.LineTo(Pt(maxX, maxY-off))
		p.QuadTo(Pt(maxX, maxY), Pt(maxX+tw, maxY))
		p.QuadTo(Pt(maxX-notch, maxY), Pt(maxX-notch, maxY-th))
		p.QuadTo(Pt(maxX-notch, maxY), Pt(maxX-rad-tw, maxY))
	} else {
		p.LineTo(Pt(maxX, maxY-rad))
		p.QuadTo(Pt(maxX, maxY), Pt(maxX-rad, maxY))
	}

	// bottom edge and bottom-left corner
	if tail == TailLeft {
		p.LineTo(Pt(minX+rad+tw, maxY))
		p.QuadTo(Pt(minX+notch, maxY), Pt(minX+notch, maxY-th))
		p.QuadTo(Pt(minX+notch, maxY), Pt(minX-tw, maxY))
		p.QuadTo(Pt(minX, maxY), Pt(minX, maxY-off))
	} else {
		p.LineTo(Pt(minX+rad, maxY))
		p.QuadTo(Pt(minX, maxY), Pt(minX, maxY-rad))
	}

	// left edge and top-left corner, ending on the start point
	p.LineTo(Pt(minX, minY+rad))
	p.QuadTo(Pt(minX, minY), start)

	return p
}
