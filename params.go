package quorum

import (
	"fmt"
	"math"
)

// MaxBPS is 100% expressed in basis points.
const MaxBPS = 10000

// Params describes a dynamic quorum configuration and the canvas its curve
// is drawn onto. Params is a plain value; nothing in this package mutates it.
type Params struct {
	// MinQuorumBPS is the quorum required when no against votes were cast.
	MinQuorumBPS int
	// MaxQuorumBPS is the ceiling the quorum saturates at.
	MaxQuorumBPS int
	// LinearCoefficient is the linear term of the quorum adjustment polynomial.
	LinearCoefficient float64
	// QuadraticCoefficient is the quadratic term of the quorum adjustment
	// polynomial. It must not be zero.
	QuadraticCoefficient float64
	// OffsetBPS is subtracted from the against votes before evaluating the
	// polynomial. Against votes at or below the offset don't raise the quorum.
	OffsetBPS int
	// NumSamplePoints is the number of evenly spaced samples taken between
	// zero and the saturation point.
	NumSamplePoints int
	// ChartWidth and ChartHeight are the dimensions of the target canvas.
	ChartWidth  float64
	ChartHeight float64
}

// DefaultParams returns the configuration shown by the dynamic quorum info
// panel: a quorum between 10% and 20%, 100 samples, and a 400×320 canvas.
func DefaultParams() Params {
	return Params{
		MinQuorumBPS:         1000,
		MaxQuorumBPS:         2000,
		LinearCoefficient:    0.01,
		QuadraticCoefficient: 0.0005,
		OffsetBPS:            250,
		NumSamplePoints:      100,
		ChartWidth:           320 * 1.25,
		ChartHeight:          320,
	}
}

// Validate checks the invariants of p. It doesn't check whether the
// polynomial has a positive root; see [Params.PositiveRoot] for that.
func (p Params) Validate() error {
	switch {
	case p.MinQuorumBPS < 0 || p.MinQuorumBPS > MaxBPS:
		return fmt.Errorf("%w: min quorum %d bps outside [0, %d]", ErrInvalidCurveParameters, p.MinQuorumBPS, MaxBPS)
	case p.MaxQuorumBPS < p.MinQuorumBPS || p.MaxQuorumBPS > MaxBPS:
		return fmt.Errorf("%w: max quorum %d bps outside [%d, %d]", ErrInvalidCurveParameters, p.MaxQuorumBPS, p.MinQuorumBPS, MaxBPS)
	case p.OffsetBPS < 0:
		return fmt.Errorf("%w: negative offset %d bps", ErrInvalidCurveParameters, p.OffsetBPS)
	case !finite(p.LinearCoefficient):
		return fmt.Errorf("%w: linear coefficient %g is not finite", ErrInvalidCurveParameters, p.LinearCoefficient)
	case !finite(p.QuadraticCoefficient):
		return fmt.Errorf("%w: quadratic coefficient %g is not finite", ErrInvalidCurveParameters, p.QuadraticCoefficient)
	case p.QuadraticCoefficient == 0:
		return fmt.Errorf("%w: quadratic coefficient is zero", ErrInvalidCurveParameters)
	case p.NumSamplePoints < 1:
		return fmt.Errorf("%w: need at least one sample point, got %d", ErrInvalidCurveParameters, p.NumSamplePoints)
	case !p.ChartSize().positive():
		return fmt.Errorf("%w: %w: chart size %s", ErrInvalidCurveParameters, ErrInvalidChartBounds, p.ChartSize())
	}
	return nil
}

// ChartSize returns the canvas size as a [Size].
func (p Params) ChartSize() Size {
	return Sz(p.ChartWidth, p.ChartHeight)
}

// ConstantTerm is the constant term of the root equation,
// MinQuorumBPS − MaxQuorumBPS.
func (p Params) ConstantTerm() float64 {
	return float64(p.MinQuorumBPS - p.MaxQuorumBPS)
}

// PositiveRoot returns the number of against votes, in basis points, at
// which the adjustment polynomial reaches MaxQuorumBPS − MinQuorumBPS.
func (p Params) PositiveRoot() (float64, error) {
	return PositiveRoot(p.LinearCoefficient, p.QuadraticCoefficient, p.ConstantTerm())
}

// Adjustment evaluates the quorum adjustment polynomial for the given number
// of against votes. Votes at or below OffsetBPS contribute nothing.
func (p Params) Adjustment(againstBPS float64) float64 {
	adjusted := 0.0
	if off := float64(p.OffsetBPS); againstBPS > off {
		adjusted = againstBPS - off
	}
	return p.QuadraticCoefficient*adjusted*adjusted + p.LinearCoefficient*adjusted
}

// QuorumAt returns the quorum, in basis points, required when againstBPS
// basis points voted against. The result is clamped to
// [MinQuorumBPS, MaxQuorumBPS].
func (p Params) QuorumAt(againstBPS float64) float64 {
	lo, hi := float64(p.MinQuorumBPS), float64(p.MaxQuorumBPS)
	return max(min(lo+p.Adjustment(againstBPS), hi), lo)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
