package wave

import (
	"math"

	"asciipond/constants"
)

// RippleKind selects the tuning profile of an expanding ring.
type RippleKind uint8

const (
	// RippleNormal is a full-strength ring from a click or tap
	RippleNormal RippleKind = iota
	// RippleMicro is a faint ring from rain or ambient disturbance
	RippleMicro
	// RippleSplash is the faintest ring, shed behind the moving cursor
	RippleSplash
)

// Ripple is an isotropically expanding ring. The ring band widens with
// age and carries a three-harmonic crest pattern with linear radial and
// lifetime decay.
type Ripple struct {
	X, Y  float64
	Birth float64
	Kind  RippleKind
}

func (r Ripple) lifespan() float64 {
	switch r.Kind {
	case RippleMicro:
		return constants.MicroLifespan
	case RippleSplash:
		return constants.SplashLifespan
	default:
		return constants.RippleLifespan
	}
}

func (r Ripple) speed() float64 {
	switch r.Kind {
	case RippleMicro:
		return constants.MicroSpeed
	case RippleSplash:
		return constants.SplashSpeed
	default:
		return constants.RippleSpeed
	}
}

func (r Ripple) strength() float64 {
	switch r.Kind {
	case RippleMicro:
		return constants.MicroStrength
	case RippleSplash:
		return constants.SplashStrength
	default:
		return 1.0
	}
}

// Age returns elapsed time since birth.
func (r Ripple) Age(now float64) float64 {
	return now - r.Birth
}

// Alive reports whether the ripple still contributes to the surface.
func (r Ripple) Alive(now float64) bool {
	age := r.Age(now)
	return age >= 0 && age < r.lifespan()
}

// RemainingLife returns the fraction of lifetime left, in [0, 1].
func (r Ripple) RemainingLife(now float64) float64 {
	rem := 1 - r.Age(now)/r.lifespan()
	if rem < 0 {
		return 0
	}
	if rem > 1 {
		return 1
	}
	return rem
}

// Influence evaluates the ripple at a point. It returns exactly 0 for a
// dead ripple and for any point outside the radius±width band.
func (r Ripple) Influence(px, py, now float64) float64 {
	age := r.Age(now)
	life := r.lifespan()
	if age < 0 || age >= life {
		return 0
	}

	radius := age * r.speed()
	width := constants.RingBaseWidth + age*constants.RingGrowthRate

	dx := px - r.X
	dy := py - r.Y

	// Cheap rejection before the square root. The box spans radius+width
	// per axis, which strictly contains the admissible annulus, so it can
	// only over-include relative to the exact circular test below.
	reach := radius + width
	if dx > reach || dx < -reach || dy > reach || dy < -reach {
		return 0
	}

	dist := math.Hypot(dx, dy)
	ringDist := math.Abs(dist - radius)
	if ringDist >= width {
		return 0
	}

	crest := harmonics(dist-radius, constants.RippleFreq, constants.RipplePhase)
	falloff := 1 - ringDist/width
	strength := (1 - age/life) * r.strength()
	return crest * falloff * strength
}
