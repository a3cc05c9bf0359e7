package reveal

import "math"

// EaseInOutCubic maps t in [0, 1] onto the ease-in-out cubic curve.
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInOutCubicRange eases t and maps the result onto [from, to].
func EaseInOutCubicRange(t, from, to float64) float64 {
	return from + (to-from)*EaseInOutCubic(t)
}

// Clamp01 restricts v to [0, 1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp01 is the internal spelling used by color parsing.
func clamp01(v float64) float64 { return Clamp01(v) }
