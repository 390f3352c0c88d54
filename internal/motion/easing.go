package motion

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Easing maps linear progress in [0, 1] to eased progress. Implementations
// must return exactly 0 at 0 and 1 at 1.
type Easing func(t float64) float64

func Linear(t float64) float64 {
	return clamp01(t)
}

// FastOutSlowIn is the Material standard curve, cubic-bezier(0.4, 0, 0.2, 1).
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier builds a CSS-style timing function with fixed end points
// (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solve := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < 1e-7 {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < 32 && lo < hi; i++ {
			v := sampleX(t)
			if math.Abs(v-x) < 1e-7 {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return sampleY(solve(t))
	}
}

// Lerp interpolates between from and to by frac.
func Lerp[T constraints.Float](from, to T, frac float64) T {
	return from + (to-from)*T(frac)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
