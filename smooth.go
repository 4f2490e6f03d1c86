package quorum

import (
	"fmt"
	"math"
)

// DefaultSmoothing is the fraction of the distance between a point's
// neighbours used as the length of its control arms.
const DefaultSmoothing = 0.2

// SmoothOptions configures [SmoothPath].
type SmoothOptions struct {
	// Smoothing scales the control arms. Zero produces straight segments;
	// negative values are rejected.
	Smoothing float64
	// Fill closes the path along the bottom edge of the canvas so that it
	// can be filled as an area chart.
	Fill bool
}

// SmoothPath projects points from data space onto a canvas of size sz and
// connects them with cubic Béziers.
//
// The control arms at each point are parallel to the line through its two
// neighbours, which keeps the path G1-continuous at every sample point. At
// the first and last point, the missing neighbour is the point itself. An
// arm is shortened when it would reach past the neighbouring sample in x,
// so every control point lies between its segment's end points in x.
//
// points should be ordered by x; SmoothPath doesn't reorder them. An empty
// slice produces an empty path.
func SmoothPath(points []Point, sz Size, bounds ChartBounds, opts SmoothOptions) (BezPath, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if !sz.positive() {
		return nil, fmt.Errorf("%w: canvas size %s", ErrInvalidChartBounds, sz)
	}
	if !finite(opts.Smoothing) || opts.Smoothing < 0 {
		return nil, fmt.Errorf("%w: smoothing %g", ErrInvalidChartBounds, opts.Smoothing)
	}
	if len(points) == 0 {
		return nil, nil
	}

	aff := bounds.Projection(sz)
	px := make([]Point, len(points))
	for i, pt := range points {
		px[i] = pt.Transform(aff)
	}

	at := func(i int) Point {
		return px[min(max(i, 0), len(px)-1)]
	}
	// controlPoint returns the control point for px[i]. The arm points
	// forward along the tangent, or backward if reverse is set. Its x extent
	// is limited to the segment it belongs to, so the curve never runs
	// backwards between unevenly spaced samples.
	controlPoint := func(i int, reverse bool) Point {
		arm := at(i + 1).Sub(at(i - 1)).Mul(opts.Smoothing)
		seg := max(at(i+1).X-px[i].X, 0)
		if reverse {
			arm = arm.Negate()
			seg = max(px[i].X-at(i-1).X, 0)
		}
		if dx := math.Abs(arm.X); dx > seg {
			arm = arm.Mul(seg / dx)
		}
		return px[i].Translate(arm)
	}

	path := make(BezPath, 0, len(px)+4)
	path.MoveTo(px[0])
	for i := 1; i < len(px); i++ {
		path.CubicTo(controlPoint(i-1, false), controlPoint(i, true), px[i])
	}
	if opts.Fill {
		end, _ := path[len(path)-1].EndPoint()
		path.LineTo(Pt(end.X, sz.Height))
		path.LineTo(Pt(px[0].X, sz.Height))
		path.ClosePath()
	}
	return path, nil
}
