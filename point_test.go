package quorum

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Vec(2, -3).Mul(0.5).Negate(), Vec(-1, 1.5))
}

func TestPointFinite(t *testing.T) {
	if !Pt(1, 2).isFinite() {
		t.Error("(1, 2) should be finite")
	}
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("(NaN, 0) should be NaN")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("(0, -Inf) should be infinite")
	}
	if Pt(math.Inf(1), 0).isFinite() {
		t.Error("(Inf, 0) shouldn't be finite")
	}
}
