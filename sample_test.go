package quorum

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func checkSamples(t *testing.T, p Params, pts []Point) {
	t.Helper()
	lo, hi := float64(p.MinQuorumBPS), float64(p.MaxQuorumBPS)
	for i, pt := range pts {
		if pt.Y < lo || pt.Y > hi {
			t.Errorf("point %d %s: y outside [%v, %v]", i, pt, lo, hi)
		}
		if !pt.isFinite() {
			t.Errorf("point %d %s isn't finite", i, pt)
		}
	}
	if !slices.IsSortedFunc(pts, func(a, b Point) int { return cmpFloat(a.X, b.X) }) {
		t.Errorf("points aren't ordered by x")
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func TestSamplesDefault(t *testing.T) {
	p := DefaultParams()
	pts, err := SamplePoints(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(pts), 100+500+2; got != want {
		t.Fatalf("got %d points, want %d", got, want)
	}
	checkSamples(t, p, pts)

	root, _ := p.PositiveRoot()
	diff(t, Pt(0, 1000), pts[0])
	// Dense samples are rounded to whole basis points.
	diff(t, Pt(14, 1000), pts[1])
	diff(t, Pt(1391, p.QuorumAt(1391)), pts[99])
	diff(t, Pt(root, p.QuorumAt(root)), pts[100])
	diff(t, Pt(root+499, p.QuorumAt(root+499)), pts[599])
	diff(t, Pt(root*2, 2000), pts[600])
	diff(t, Pt(root*2.5, 2000), pts[601])
}

func TestSamplesIdempotent(t *testing.T) {
	p := DefaultParams()
	a, err := p.Samples(DefaultSampling())
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Samples(DefaultSampling())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, b)
}

func TestSamplesOverlappingStages(t *testing.T) {
	// R = 10, so the tail runs up to 509 while the multiplier samples sit at
	// 20 and 25.
	p := Params{
		MinQuorumBPS:         1000,
		MaxQuorumBPS:         2000,
		QuadraticCoefficient: 10,
		NumSamplePoints:      10,
		ChartWidth:           100,
		ChartHeight:          100,
	}
	xs := slices.Collect(SampleXs(10, p.NumSamplePoints, DefaultSampling()))
	if slices.IsSorted(xs) {
		t.Fatal("expected unsorted generation order")
	}

	pts, err := SamplePoints(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(pts), DefaultSampling().Len(10); got != want {
		t.Fatalf("got %d points, want %d", got, want)
	}
	checkSamples(t, p, pts)
	diff(t, Pt(509, 2000), pts[len(pts)-1])
}

func TestSamplesProperties(t *testing.T) {
	params := []Params{
		DefaultParams(),
		{MinQuorumBPS: 0, MaxQuorumBPS: 10000, LinearCoefficient: 1, QuadraticCoefficient: 0.01, NumSamplePoints: 1, ChartWidth: 1, ChartHeight: 1},
		{MinQuorumBPS: 400, MaxQuorumBPS: 1500, LinearCoefficient: 0, QuadraticCoefficient: 0.00001, OffsetBPS: 1000, NumSamplePoints: 1000, ChartWidth: 300, ChartHeight: 200},
		// Concave polynomial that turns back down past its vertex.
		{MinQuorumBPS: 1000, MaxQuorumBPS: 2000, LinearCoefficient: 100, QuadraticCoefficient: -1, NumSamplePoints: 50, ChartWidth: 300, ChartHeight: 200},
		// Rounding pushes the last dense sample past the root.
		{MinQuorumBPS: 1000, MaxQuorumBPS: 1010, QuadraticCoefficient: 1, NumSamplePoints: 10, ChartWidth: 10, ChartHeight: 10},
	}
	for _, p := range params {
		root, err := p.PositiveRoot()
		if err != nil {
			t.Fatalf("%+v: %v", p, err)
		}
		if !(root > 0) || math.IsInf(root, 0) {
			t.Errorf("%+v: got root %v, want finite positive", p, root)
		}
		pts, err := SamplePoints(p)
		if err != nil {
			t.Fatalf("%+v: %v", p, err)
		}
		checkSamples(t, p, pts)
		again, _ := SamplePoints(p)
		diff(t, pts, again)
	}
}

func TestSamplesInvalid(t *testing.T) {
	p := DefaultParams()
	p.QuadraticCoefficient = 0
	if _, err := SamplePoints(p); !errors.Is(err, ErrInvalidCurveParameters) {
		t.Errorf("zero quadratic: got %v, want %v", err, ErrInvalidCurveParameters)
	}

	p = DefaultParams()
	p.LinearCoefficient = 0
	p.QuadraticCoefficient = -1
	if _, err := SamplePoints(p); !errors.Is(err, ErrInvalidCurveParameters) {
		t.Errorf("negative discriminant: got %v, want %v", err, ErrInvalidCurveParameters)
	}

	bad := []Sampling{
		{Tail: -1, TailStep: 1},
		{Tail: 10, TailStep: math.NaN()},
		{Tail: 10, TailStep: -1},
		{Multipliers: []float64{2, 0}},
		{Multipliers: []float64{math.Inf(1)}},
	}
	for _, s := range bad {
		if _, err := DefaultParams().Samples(s); !errors.Is(err, ErrInvalidCurveParameters) {
			t.Errorf("%+v: got %v, want %v", s, err, ErrInvalidCurveParameters)
		}
	}
}

func TestSampleXsStops(t *testing.T) {
	var got []float64
	for x := range SampleXs(100, 10, DefaultSampling()) {
		got = append(got, x)
		if len(got) == 12 {
			break
		}
	}
	diff(t, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 101}, got)
}
