// Package scene turns the per-tick vision snapshot and manual control
// input into per-frame target transforms for the particle cloud, the
// ornament set, the attraction dust and the photo objects. All motion
// is computed as smoothed targets; nothing snaps.
package scene

import "math"

// clamp01 clamps v to the [0,1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// damp exponentially moves current toward target with the given rate
// (1/seconds) over dt. Frame-rate independent: the same wall-clock span
// covers the same fraction of the gap regardless of tick size.
func damp(current, target, rate, dt float64) float64 {
	return current + (target-current)*(1-math.Exp(-rate*dt))
}

// easeOutCubic is the standard cubic ease-out curve on t in [0,1].
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// shortestArc normalizes an angular difference to (-π, π] so that
// interpolation always takes the shorter way around.
func shortestArc(delta float64) float64 {
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}
