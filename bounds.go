package quorum

import (
	"fmt"
	"math"
)

// ChartBounds is the region of data space that is mapped onto the canvas.
// X is against votes and Y is quorum, both in basis points.
type ChartBounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (b ChartBounds) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", b.XMin, b.XMax, b.YMin, b.YMax)
}

// Validate checks that the bounds are finite and have positive width and
// height.
func (b ChartBounds) Validate() error {
	if !finite(b.XMin) || !finite(b.XMax) || !finite(b.YMin) || !finite(b.YMax) {
		return fmt.Errorf("%w: %s is not finite", ErrInvalidChartBounds, b)
	}
	if b.XMax <= b.XMin {
		return fmt.Errorf("%w: x range %s is empty", ErrInvalidChartBounds, b)
	}
	if b.YMax <= b.YMin {
		return fmt.Errorf("%w: y range %s is empty", ErrInvalidChartBounds, b)
	}
	return nil
}

// Projection returns the transform from data space into the pixel space of a
// canvas of size sz. Pixel space is y-down: (XMin, YMax) maps to the top left
// corner and (XMax, YMin) maps to the bottom right corner.
func (b ChartBounds) Projection(sz Size) Affine {
	sx := sz.Width / (b.XMax - b.XMin)
	sy := sz.Height / (b.YMax - b.YMin)
	return Translate(Vec(-b.XMin, -b.YMax)).ThenScale(sx, -sy)
}

// Framing maps a curve onto a chart. The scales are applied to the
// saturation point and the quorum limits to leave some room around the curve.
type Framing struct {
	// XMaxScale sets XMax to ⌈XMaxScale·R⌉.
	XMaxScale float64
	// YMinScale sets YMin to YMinScale·MinQuorumBPS.
	YMinScale float64
	// YMaxScale sets YMax to YMaxScale·MaxQuorumBPS.
	YMaxScale float64
	// WidthScale is applied to Params.ChartWidth to get the width of the
	// canvas the curve is projected onto.
	WidthScale float64
}

// DefaultFraming extends the x axis to 2.5R and leaves a margin of 13% below
// the minimum quorum and 6% above the maximum quorum.
func DefaultFraming() Framing {
	return Framing{
		XMaxScale:  2.5,
		YMinScale:  0.87,
		YMaxScale:  1.06,
		WidthScale: 2.5,
	}
}

// Bounds returns the chart bounds for p given its saturation point root.
func (f Framing) Bounds(p Params, root float64) ChartBounds {
	return ChartBounds{
		XMin: 0,
		XMax: math.Ceil(f.XMaxScale * root),
		YMin: f.YMinScale * float64(p.MinQuorumBPS),
		YMax: f.YMaxScale * float64(p.MaxQuorumBPS),
	}
}

// CanvasSize returns the size of the canvas the curve of p is projected onto.
func (f Framing) CanvasSize(p Params) Size {
	return p.ChartSize().Scale(f.WidthScale, 1)
}

// Bounds is like [Framing.Bounds] but uses [DefaultFraming].
func (p Params) Bounds(root float64) ChartBounds {
	return DefaultFraming().Bounds(p, root)
}
