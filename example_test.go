package bubble_test

import (
	"fmt"

	"honnef.co/go/bubble"
)

func ExampleOutline() {
	p := bubble.Outline(bubble.NewRect(0, 0, 100, 40), bubble.TailRight)
	fmt.Println(len(p))
	fmt.Println(p.SVG(bubble.SVGOptions{MaxPrecision: 2}))

	// Output:
	// 11
	// M16,0 L84,0 Q100,0 100,16 L100,32 Q100,40 105,40 Q94.67,40 94.67,36 Q94.67,40 79,40 L16,40 Q0,40 0,24 L0,16 Q0,0 16,0
}

func ExampleStyle_Outline() {
	// A small bubble clamps its corner radius to half its height.
	s := bubble.Style{CornerRadius: 20, TailWidth: 4, TailHeight: 3, TailCurveControlOffset: 6}
	r := bubble.NewRect(0, 0, 60, 24)
	fmt.Println(s.Radius(r))
	fmt.Println(s.Outline(r, bubble.TailLeft).SVG(bubble.SVGOptions{MaxPrecision: 2}))

	// Output:
	// 12
	// M12,0 L48,0 Q60,0 60,12 L60,12 Q60,24 48,24 L16,24 Q4,24 4,21 Q4,24 -4,24 Q0,24 0,18 L0,12 Q0,0 12,0
}

func ExampleBezPath_Transform() {
	// Mirroring a bubble about its center line moves the tail to the other
	// side.
	r := bubble.NewRect(0, 0, 100, 40)
	p := bubble.Outline(r, bubble.TailLeft).Transform(bubble.MirrorX(r.Center().X))
	fmt.Println(p.BoundingBox())

	// Output:
	// {0 0 105 40}
}
