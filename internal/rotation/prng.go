package rotation

import "math"

// Rand maps an integer seed to a pseudo-random value in [0, 1).
//
// The formula is a sine-based congruential transform chosen for stability:
// the same seed yields the same value on every platform and in every
// implementation of the planner. Schedules are never persisted, so replaying
// this exact stream is what makes a week's plan reproducible.
func Rand(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}
