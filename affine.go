package bubble

// Affine is a 2D affine transform with the coefficients (a, b, c, d, e, f),
// mapping (x, y) to (a x + c y + e, b x + d y + f).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Translate returns the transform that moves points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// MirrorX returns the reflection about the vertical line through x. A bubble
// outline mirrored about its rectangle's center line carries its tail on the
// opposite side.
func MirrorX(x float64) Affine {
	return Affine{-1, 0, 0, 1, 2 * x, 0}
}

// Then returns the transform that applies aff, then o.
func (aff Affine) Then(o Affine) Affine {
	return Affine{
		o.N0*aff.N0 + o.N2*aff.N1,
		o.N1*aff.N0 + o.N3*aff.N1,
		o.N0*aff.N2 + o.N2*aff.N3,
		o.N1*aff.N2 + o.N3*aff.N3,
		o.N0*aff.N4 + o.N2*aff.N5 + o.N4,
		o.N1*aff.N4 + o.N3*aff.N5 + o.N5,
	}
}
