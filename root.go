package quorum

import (
	"fmt"
	"math"
)

// PositiveRoot solves quadratic·t² + linear·t + constant = 0 and returns
//
//	(−linear + √(linear² − 4·quadratic·constant)) / (2·quadratic)
//
// For the coefficients of a dynamic quorum this is the first-quadrant root,
// the point past which the quorum saturates at its maximum.
//
// Unlike a general quadratic solver, PositiveRoot doesn't fall back to the
// linear solution when quadratic is zero and doesn't return the other root.
// It returns an error wrapping [ErrInvalidCurveParameters] if quadratic is
// zero, if the discriminant is negative, or if the selected root isn't a
// finite positive number.
func PositiveRoot(linear, quadratic, constant float64) (float64, error) {
	if quadratic == 0 {
		return 0, fmt.Errorf("%w: quadratic coefficient is zero", ErrInvalidCurveParameters)
	}
	disc := linear*linear - 4*quadratic*constant
	if math.IsNaN(disc) || disc < 0 {
		return 0, fmt.Errorf("%w: negative discriminant %g", ErrInvalidCurveParameters, disc)
	}
	root := (-linear + math.Sqrt(disc)) / (2 * quadratic)
	if !finite(root) {
		return 0, fmt.Errorf("%w: root %g is not finite", ErrInvalidCurveParameters, root)
	}
	if root <= 0 {
		return 0, fmt.Errorf("%w: root %g is not positive", ErrInvalidCurveParameters, root)
	}
	return root, nil
}
