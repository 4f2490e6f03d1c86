package quorum

import (
	"fmt"
	"log/slog"
)

// Chart is a sampled and projected dynamic quorum curve.
type Chart struct {
	Params Params
	// Root is the saturation point of the curve, in basis points of against
	// votes.
	Root float64
	// Points are the samples in data space, ordered by x.
	Points []Point
	// Bounds is the region of data space mapped onto the canvas.
	Bounds ChartBounds
	// Size is the canvas Path was projected onto.
	Size Size
	// Path is the smoothed curve in pixel space.
	Path BezPath
}

// D returns the SVG path data of the curve, suitable for the d attribute of
// a path element.
func (c Chart) D(opts SVGOptions) string {
	return c.Path.SVG(opts)
}

// Generator turns [Params] into a [Chart]. The zero value is ready to use
// and behaves like [NewGenerator], except that it draws straight, unfilled
// segments between samples.
type Generator struct {
	// Sampling controls sample density. The zero value means
	// [DefaultSampling]. To sample only the evenly spaced points up to the
	// saturation point, leave Tail at 0 and set Multipliers to a non-nil
	// empty slice.
	Sampling Sampling
	// Framing controls chart bounds. The zero value means [DefaultFraming].
	Framing Framing
	Smooth  SmoothOptions
	// Logger receives debug output about intermediate results. It may be nil.
	Logger *slog.Logger
}

// NewGenerator returns a generator using the default sampling, framing and
// smoothing, and producing a filled area path.
func NewGenerator() *Generator {
	return &Generator{
		Sampling: DefaultSampling(),
		Framing:  DefaultFraming(),
		Smooth:   SmoothOptions{Smoothing: DefaultSmoothing, Fill: true},
	}
}

// Generate computes the chart for p. It has no side effects besides logging,
// and returns identical charts for identical params.
//
// Errors wrap [ErrInvalidCurveParameters] or [ErrInvalidChartBounds]. A
// caller that gets an error should show a placeholder instead of a curve.
func (g *Generator) Generate(p Params) (Chart, error) {
	sampling := g.Sampling
	if sampling.isZero() {
		sampling = DefaultSampling()
	}
	framing := g.Framing
	if framing == (Framing{}) {
		framing = DefaultFraming()
	}

	if err := p.Validate(); err != nil {
		return Chart{}, err
	}
	root, err := p.PositiveRoot()
	if err != nil {
		return Chart{}, err
	}
	g.debug("solved saturation point", "root", root)

	pts, err := p.samplesFromRoot(root, sampling)
	if err != nil {
		return Chart{}, err
	}
	g.debug("sampled quorum curve", "points", len(pts), "first", pts[0], "last", pts[len(pts)-1])

	bounds := framing.Bounds(p, root)
	size := framing.CanvasSize(p)
	path, err := SmoothPath(pts, size, bounds, g.Smooth)
	if err != nil {
		return Chart{}, fmt.Errorf("project quorum curve: %w", err)
	}
	if !path.finite() {
		return Chart{}, fmt.Errorf("%w: projected path has non-finite coordinates", ErrInvalidChartBounds)
	}
	g.debug("projected quorum curve", "bounds", bounds, "size", size, "elements", len(path))

	return Chart{
		Params: p,
		Root:   root,
		Points: pts,
		Bounds: bounds,
		Size:   size,
		Path:   path,
	}, nil
}

func (g *Generator) debug(msg string, args ...any) {
	if g.Logger == nil {
		return
	}
	g.Logger.Debug(msg, args...)
}

// GenerateChart is shorthand for NewGenerator().Generate(p).
func GenerateChart(p Params) (Chart, error) {
	return NewGenerator().Generate(p)
}
