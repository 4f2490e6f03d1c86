// Package quorum computes the dynamic quorum curve of a governance proposal
// and turns it into SVG path data.
//
// # Dynamic quorum
//
// With a dynamic quorum, the number of For votes a proposal needs in order to
// pass grows with the number of Against votes it has received. All values are
// expressed in basis points (bps) of the total supply, where 10000 bps is
// 100%. Given against votes a, the required quorum is
//
//	adjusted = max(a − offset, 0)
//	quorum   = min(minQuorum + quadratic·adjusted² + linear·adjusted, maxQuorum)
//
// [Params] holds these coefficients together with the size of the canvas the
// curve is drawn onto, and [Params.QuorumAt] evaluates the function for a
// single value.
//
// # Saturation point
//
// The quorum stops growing once the polynomial reaches maxQuorum − minQuorum.
// [PositiveRoot] solves for that point, R, using the quadratic formula. The
// root is undefined for a zero quadratic coefficient or a negative
// discriminant; those cases, and roots that aren't positive, are reported as
// [ErrInvalidCurveParameters].
//
// # Sampling
//
// [Params.Samples] samples the curve densely between 0 and ⌈R⌉, then sparsely
// in the saturated region past R. The density is controlled by [Sampling];
// its defaults were picked for visual smoothness and carry no further
// meaning. Samples are ordered by x and are fully determined by their
// inputs.
//
// # Charts
//
// [ChartBounds] describes the region of data space that is visible on the
// canvas, and [ChartBounds.Projection] returns the [Affine] transform from
// data space into y-down pixel space. [SmoothPath] projects the samples and
// connects them with cubic Béziers, producing a [BezPath] that can be
// serialized with [BezPath.SVG].
//
// [Generator] runs the whole pipeline and returns a [Chart]:
//
//	chart, err := quorum.GenerateChart(quorum.DefaultParams())
//	if err != nil {
//		// show a placeholder instead of the curve
//	}
//	d := chart.D(quorum.SVGOptions{MaxPrecision: 2})
//
// Nothing in this package keeps state between calls, and all functions are
// safe for concurrent use.
package quorum
