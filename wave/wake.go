package wave

import (
	"math"

	"asciipond/constants"
)

// Wake is a directional V-front: the bow wave of the moving cursor,
// expanding away from its origin along a fixed travel direction. The
// front itself travels outward on the direction axis at a fraction of
// the ripple propagation speed.
type Wake struct {
	X, Y       float64
	DirX, DirY float64 // unit travel direction
	Birth      float64
}

// NewWake builds a wake at origin travelling along angle.
func NewWake(x, y, angle, birth float64) Wake {
	return Wake{
		X:     x,
		Y:     y,
		DirX:  math.Cos(angle),
		DirY:  math.Sin(angle),
		Birth: birth,
	}
}

// Age returns elapsed time since birth.
func (w Wake) Age(now float64) float64 {
	return now - w.Birth
}

// Alive reports whether the wake still contributes to the surface.
func (w Wake) Alive(now float64) bool {
	age := w.Age(now)
	return age >= 0 && age < constants.WakeLifespan
}

// RemainingLife returns the fraction of lifetime left, in [0, 1].
func (w Wake) RemainingLife(now float64) float64 {
	rem := 1 - w.Age(now)/constants.WakeLifespan
	if rem < 0 {
		return 0
	}
	if rem > 1 {
		return 1
	}
	return rem
}

// Influence evaluates the wake at a point in its rotated frame: the
// evaluation point is projected onto the travel axis (along) and its
// perpendicular (perp). Influence is zero behind the origin and beyond
// the V's growing lateral width.
func (w Wake) Influence(px, py, now float64) float64 {
	age := w.Age(now)
	if age < 0 || age >= constants.WakeLifespan {
		return 0
	}

	dx := px - w.X
	dy := py - w.Y

	along := dx*w.DirX + dy*w.DirY
	if along <= 0 || along > constants.WakeMaxRange {
		return 0
	}

	perp := math.Abs(dx*w.DirY - dy*w.DirX)
	halfWidth := constants.WakeBaseHalfWidth + along*constants.WakeSpreadRate
	if perp >= halfWidth {
		return 0
	}

	front := age * constants.RippleSpeed * constants.WakeFrontFactor
	crest := harmonics(along-front, constants.RippleFreq, constants.RipplePhase)

	alongFall := 1 - along/constants.WakeMaxRange
	crossFall := 1 - 0.5*(perp/halfWidth)
	life := 1 - age/constants.WakeLifespan
	return crest * alongFall * crossFall * life * constants.WakeStrength
}
