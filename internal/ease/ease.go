// Package ease provides the interpolation curves used by the arena's timed
// transitions: the indicator's heading blend, the round fade and the gallery
// cross-fade.
package ease

import "math"

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress returns how far now is through a timer of length dur started at
// start, clamped to [0, 1]. A non-positive duration is always complete.
func Progress(now, start, dur float64) float64 {
	if dur <= 0 {
		return 1
	}
	return Clamp01((now - start) / dur)
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InOutQuad accelerates through the first half and decelerates through the
// second.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// OutQuint decelerates sharply toward t = 1.
func OutQuint(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u*u
}

// InOutQuint is the symmetric quint curve.
func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u*u/2
}

// WrapAngle maps a to (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// AngleLerp interpolates from a toward b along the shorter arc. The result
// is not wrapped, so it stays continuous with a for small t.
func AngleLerp(a, b, t float64) float64 {
	return a + WrapAngle(b-a)*t
}
