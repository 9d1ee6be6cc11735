package render

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"honnef.co/go/bubble"
)

// FillPath fills p onto dst with src, using the nonzero winding rule and
// antialiasing. Subpaths are closed implicitly. src is aligned with dst.
func FillPath(dst draw.Image, p bubble.BezPath, src image.Image) {
	if len(p) == 0 {
		return
	}
	clip := imageRect(p.ControlBox()).Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	pt := func(p bubble.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}
	open := false
	for _, el := range p {
		switch el.Kind {
		case bubble.MoveToKind:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(el.P0))
			open = true
		case bubble.LineToKind:
			z.LineTo(pt(el.P0))
		case bubble.QuadToKind:
			bx, by := pt(el.P0)
			cx, cy := pt(el.P1)
			z.QuadTo(bx, by, cx, cy)
		case bubble.ClosePathKind:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, clip, src, clip.Min)
}

func imageRect(r bubble.Rect) image.Rectangle {
	r = r.Expand()
	return image.Rect(int(r.X0), int(r.Y0), int(r.X1), int(r.Y1))
}
