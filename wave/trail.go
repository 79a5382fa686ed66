package wave

import (
	"math"

	"asciipond/constants"
)

// TrailPoint is a transient stern-wake emitter: a recent pointer
// position tagged with the movement angle at capture time. Unlike a
// discrete wake source it feeds a continuous field evaluated over the
// whole trail history.
type TrailPoint struct {
	X, Y  float64
	Angle float64 // travel direction at capture
	Birth float64
}

// Alive reports whether the trail point still contributes.
func (p TrailPoint) Alive(now float64) bool {
	age := now - p.Birth
	return age >= 0 && age < constants.TrailLifespan
}

// TrailField sums the stern-wake contributions of all live trail points
// at a point. Each point emits only inside a cone centered opposite its
// travel direction; a cosine taper peaks on the two edges of the cone,
// which is what splits the wedge into the twin arms of a V.
func TrailField(points []TrailPoint, px, py, now float64) float64 {
	sum := 0.0
	for _, p := range points {
		age := now - p.Birth
		if age < 0 || age >= constants.TrailLifespan {
			continue
		}

		dx := px - p.X
		dy := py - p.Y
		dist := math.Hypot(dx, dy)
		// Skip evaluation right on top of the emitter: the angle below
		// is undefined there.
		if dist < constants.TrailMinDistance || dist > constants.TrailRange {
			continue
		}

		stern := p.Angle + math.Pi
		diff := angleDiff(math.Atan2(dy, dx), stern)
		if diff > 2*constants.WakeHalfAngle {
			continue
		}

		taper := math.Cos((diff - constants.WakeHalfAngle) / constants.WakeHalfAngle * (math.Pi / 2))
		fall := 1 - dist/constants.TrailRange
		ride := math.Sin((dist - age*constants.TrailSpeedFactor) * constants.TrailFreq)
		life := 1 - age/constants.TrailLifespan
		sum += taper * fall * ride * life * constants.TrailStrength
	}
	return sum
}
