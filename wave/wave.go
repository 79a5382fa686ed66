// Package wave holds the analytic wave sources of the pond surface and
// the bounded pool that owns them. Every source is immutable after
// creation and pure: influence is a closed-form function of the
// evaluation point and the current simulation time.
package wave

import "math"

// harmonics stacks three sine components of the signed front offset. The
// 2f and f/2 components produce the secondary rings of a real wake train
// instead of a single smooth pulse. The fundamental is phase-shifted so
// the main crest rides just ahead of the geometric front.
func harmonics(offset, freq, phase float64) float64 {
	return math.Sin(offset*freq+phase) +
		0.5*math.Sin(offset*freq*2) +
		0.3*math.Sin(offset*freq*0.5)
}

// angleDiff returns the absolute wrapped difference between two angles,
// in [0, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return math.Abs(d)
}
