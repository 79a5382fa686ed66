package sim

import (
	"math"

	"asciipond/constants"
)

// Pointer tracks the cursor in world coordinates. Input events set the
// target position between frames; Update derives a smoothed velocity
// and reports when accumulated travel distance crosses the wake spawn
// threshold. Spawning is distance-based, so fast movement sheds more
// wakes per unit time.
type Pointer struct {
	X, Y         float64
	PrevX, PrevY float64
	VelX, VelY   float64
	Speed        float64
	OnScreen     bool

	travel float64 // distance since last wake spawn
}

// NewPointer returns a pointer parked on the off-screen sentinel.
func NewPointer() *Pointer {
	p := &Pointer{}
	p.Leave()
	return p
}

// MoveTo records a new pointer position from an input event.
func (p *Pointer) MoveTo(x, y float64) {
	if !p.OnScreen {
		// Re-entering: don't synthesize a huge jump velocity.
		p.PrevX, p.PrevY = x, y
		p.VelX, p.VelY = 0, 0
		p.travel = 0
	}
	p.X, p.Y = x, y
	p.OnScreen = true
}

// Leave parks the pointer off screen and clears motion state.
func (p *Pointer) Leave() {
	p.X, p.Y = constants.OffscreenSentinel, constants.OffscreenSentinel
	p.PrevX, p.PrevY = p.X, p.Y
	p.VelX, p.VelY = 0, 0
	p.Speed = 0
	p.OnScreen = false
	p.travel = 0
}

// Update folds the frame's movement into the velocity average and
// reports whether a wake spawn fired, with the travel angle it should
// use. At most one spawn fires per frame.
func (p *Pointer) Update(dt float64) (angle float64, spawn bool) {
	if !p.OnScreen || dt <= 0 {
		return 0, false
	}

	dx := p.X - p.PrevX
	dy := p.Y - p.PrevY

	p.VelX += (dx/dt - p.VelX) * constants.VelocitySmoothing
	p.VelY += (dy/dt - p.VelY) * constants.VelocitySmoothing
	p.Speed = math.Hypot(p.VelX, p.VelY)

	step := math.Hypot(dx, dy)
	p.travel += step
	p.PrevX, p.PrevY = p.X, p.Y

	if p.travel < constants.WakeSpawnDistance || step == 0 {
		return 0, false
	}
	p.travel -= constants.WakeSpawnDistance
	if p.travel >= constants.WakeSpawnDistance {
		// Don't let a single wild jump bank several future spawns.
		p.travel = 0
	}

	// Prefer the smoothed velocity for the travel angle; fall back to the
	// raw frame delta right after re-entry.
	if p.Speed > 1e-9 {
		return math.Atan2(p.VelY, p.VelX), true
	}
	return math.Atan2(dy, dx), true
}
