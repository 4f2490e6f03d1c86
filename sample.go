package quorum

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Sampling controls how densely the quorum curve is sampled beyond the
// evenly spaced samples covering [0, ⌈R⌉], where R is the saturation point
// returned by [Params.PositiveRoot].
type Sampling struct {
	// Tail is the number of samples taken at R, R+TailStep, R+2·TailStep, …
	Tail int
	// TailStep is the distance between tail samples, in basis points.
	TailStep float64
	// Multipliers adds one sample at R·m for every m.
	Multipliers []float64
}

// DefaultSampling returns 500 tail samples one basis point apart, followed by
// samples at 2R and 2.5R.
func DefaultSampling() Sampling {
	return Sampling{
		Tail:        500,
		TailStep:    1,
		Multipliers: []float64{2, 2.5},
	}
}

// isZero reports whether s is the zero value. A non-nil empty Multipliers
// slice makes s non-zero.
func (s Sampling) isZero() bool {
	return s.Tail == 0 && s.TailStep == 0 && s.Multipliers == nil
}

// Validate checks that s describes a finite set of non-negative x values.
func (s Sampling) Validate() error {
	if s.Tail < 0 {
		return fmt.Errorf("%w: negative tail sample count %d", ErrInvalidCurveParameters, s.Tail)
	}
	if !finite(s.TailStep) || s.TailStep < 0 {
		return fmt.Errorf("%w: tail step %g", ErrInvalidCurveParameters, s.TailStep)
	}
	for _, m := range s.Multipliers {
		if !finite(m) || m <= 0 {
			return fmt.Errorf("%w: root multiplier %g", ErrInvalidCurveParameters, m)
		}
	}
	return nil
}

// Len returns the number of x values [SampleXs] produces for n dense samples.
func (s Sampling) Len(n int) int {
	return n + s.Tail + len(s.Multipliers)
}

// SampleXs yields the x values, in basis points of against votes, at which
// the curve is sampled, in generation order:
//
//  1. n values round(i·⌈root⌉/n) for i ∈ [0, n)
//  2. s.Tail values root + i·s.TailStep
//  3. root·m for each multiplier m
//
// Each stage is non-decreasing on its own. The stages may overlap for small
// roots; [Params.Samples] sorts the combined sequence when that happens.
func SampleXs(root float64, n int, s Sampling) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		step := math.Ceil(root) / float64(n)
		for i := range n {
			if !yield(math.Round(float64(i) * step)) {
				return
			}
		}
		for i := range s.Tail {
			if !yield(root + float64(i)*s.TailStep) {
				return
			}
		}
		for _, m := range s.Multipliers {
			if !yield(root * m) {
				return
			}
		}
	}
}

// Samples returns the points tracing the quorum curve of p, ordered by
// non-decreasing x. Every y lies in [p.MinQuorumBPS, p.MaxQuorumBPS].
//
// The result only depends on p and s; calling Samples twice with the same
// arguments yields identical points.
func (p Params) Samples(s Sampling) ([]Point, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	root, err := p.PositiveRoot()
	if err != nil {
		return nil, err
	}
	return p.samplesFromRoot(root, s)
}

func (p Params) samplesFromRoot(root float64, s Sampling) ([]Point, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	xs := make([]float64, 0, s.Len(p.NumSamplePoints))
	xs = slices.AppendSeq(xs, SampleXs(root, p.NumSamplePoints, s))
	if !slices.IsSorted(xs) {
		slices.Sort(xs)
	}
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Pt(x, p.QuorumAt(x))
	}
	return pts, nil
}

// SamplePoints is like [Params.Samples] but uses [DefaultSampling].
func SamplePoints(p Params) ([]Point, error) {
	return p.Samples(DefaultSampling())
}
