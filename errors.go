package quorum

import "errors"

var (
	// ErrInvalidCurveParameters is returned when the dynamic quorum
	// coefficients or sampling settings cannot describe a curve: a zero
	// quadratic coefficient, a negative discriminant, no positive root, or
	// out-of-range basis point values.
	ErrInvalidCurveParameters = errors.New("invalid curve parameters")

	// ErrInvalidChartBounds is returned when a [ChartBounds] or a canvas
	// [Size] cannot be used to project points into pixel space.
	ErrInvalidChartBounds = errors.New("invalid chart bounds")
)
