package bubble

import (
	"testing"
)

func TestAffineTranslate(t *testing.T) {
	diff(t, Pt(8, 10), Pt(3, 4).Transform(Translate(Vec(5, 6))))
}

func TestMirrorX(t *testing.T) {
	mirror := MirrorX(50)
	diff(t, Pt(100, 7), Pt(0, 7).Transform(mirror))
	diff(t, Pt(40, -3), Pt(60, -3).Transform(mirror))
	diff(t, Pt(50, 50), Pt(50, 50).Transform(mirror))

	// Mirroring twice is the identity.
	p := Pt(12.5, -3)
	diff(t, p, p.Transform(mirror.Then(mirror)))
}

func TestAffineThen(t *testing.T) {
	a := Translate(Vec(1, 2)).Then(MirrorX(0))
	diff(t, Pt(-4, 5), Pt(3, 3).Transform(a))
	b := MirrorX(0).Then(Translate(Vec(1, 2)))
	diff(t, Pt(-2, 5), Pt(3, 3).Transform(b))
}
