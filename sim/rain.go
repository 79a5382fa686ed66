package sim

import (
	"math"
	"math/rand"

	"asciipond/constants"
	"asciipond/wave"
)

// Raindrop is a falling point with no wave behavior of its own: linear
// vertical motion toward a randomized target height, then one micro
// ripple at the landing point and discard.
type Raindrop struct {
	X, Y    float64
	Speed   float64
	TargetY float64
}

// Weather drives the ambient disturbances: raindrops, random
// micro-events, and the slow wind drift. Both spawners re-arm with a
// fresh random interval each time they fire, so the background rate is
// bounded but never periodic.
type Weather struct {
	Drops []Raindrop
	Wind  float64

	rain      bool
	nextDrop  float64
	nextMicro float64
	rng       *rand.Rand
}

// NewWeather seeds the spawn timers relative to sim time zero.
func NewWeather(rng *rand.Rand, rain bool) *Weather {
	w := &Weather{
		Drops: make([]Raindrop, 0, constants.MaxDrops),
		rain:  rain,
		rng:   rng,
	}
	w.nextDrop = constants.DropMinGap * rng.Float64()
	w.nextMicro = constants.MicroMinGap * rng.Float64()
	return w
}

// Update advances drops and fires due spawners. Landing drops add micro
// ripples to the pool; the caller must have reaped the pool already.
func (w *Weather) Update(now, dt, worldW, worldH float64, pool *wave.Pool) {
	w.Wind += dt * constants.WindDriftRate

	live := w.Drops[:0]
	for _, d := range w.Drops {
		d.Y += d.Speed * dt
		d.X += constants.WindRainBias * dt * w.windLean()
		if d.Y >= d.TargetY {
			pool.AddRipple(wave.Ripple{X: d.X, Y: d.TargetY, Birth: now, Kind: wave.RippleMicro}, now)
			continue
		}
		live = append(live, d)
	}
	w.Drops = live

	if w.rain && now >= w.nextDrop && len(w.Drops) < constants.MaxDrops {
		targetSpan := constants.DropTargetMax - constants.DropTargetMin
		w.Drops = append(w.Drops, Raindrop{
			X:       w.rng.Float64() * worldW,
			Y:       0,
			Speed:   constants.DropMinSpeed + w.rng.Float64()*constants.DropSpeedJitter,
			TargetY: (constants.DropTargetMin + w.rng.Float64()*targetSpan) * worldH,
		})
		w.nextDrop = now + constants.DropMinGap + w.rng.Float64()*constants.DropJitter
	}

	if now >= w.nextMicro {
		pool.AddRipple(wave.Ripple{
			X:     w.rng.Float64() * worldW,
			Y:     w.rng.Float64() * worldH,
			Birth: now,
			Kind:  wave.RippleMicro,
		}, now)
		w.nextMicro = now + constants.MicroMinGap + w.rng.Float64()*constants.MicroJitter
	}
}

// windLean maps the drifting wind phase onto [-1, 1].
func (w *Weather) windLean() float64 {
	return math.Sin(w.Wind)
}
