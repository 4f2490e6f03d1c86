package quorum

// Affine is a 2D affine transform. The coefficients (N0, …, N5) form the
// matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	| 0  0  1  |
//
// applied to column vectors, so a.Mul(b) applies b first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale returns a transform scaling x by sx and y by sy.
func Scale(sx, sy float64) Affine {
	return Affine{N0: sx, N3: sy}
}

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine {
	return Affine{N0: 1, N3: 1, N4: v.X, N5: v.Y}
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns the transform that applies aff, then scales by (sx, sy).
func (aff Affine) ThenScale(sx, sy float64) Affine {
	return Scale(sx, sy).Mul(aff)
}
