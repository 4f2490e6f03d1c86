package quorum

import (
	"fmt"
	"math"
)

// Size is the extent of a drawing surface, in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Splat returns the width and height.
func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Scale returns a new size with the width scaled by x and the height scaled by y.
func (sz Size) Scale(x, y float64) Size {
	return Size{
		Width:  sz.Width * x,
		Height: sz.Height * y,
	}
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// positive reports whether both sides are finite and strictly positive.
func (sz Size) positive() bool {
	return !sz.IsNaN() && !sz.IsInf() && sz.Width > 0 && sz.Height > 0
}
