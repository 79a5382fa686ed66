// Package sim owns all mutable pond state and the fixed-step frame
// procedure. Everything is driven by one goroutine: input setters and
// Step are never called concurrently, so no locking exists here.
package sim

import (
	"math"
	"math/rand"

	"asciipond/constants"
	"asciipond/wave"
)

// Config carries the startup parameters of a simulation.
type Config struct {
	Cols, Rows int
	Seed       int64
	Rain       bool
}

// Simulation is the explicit state struct for the whole pond: pointer,
// source pools, trail history, drag grid, weather, and the sim clock.
// Time advances exactly TimeStep per Step call regardless of wall
// time — every speed and lifespan constant is tuned against that step.
type Simulation struct {
	cols, rows     int
	worldW, worldH float64
	now            float64

	pointer *Pointer
	pool    *wave.Pool
	trail   []wave.TrailPoint
	fluid   *Fluid
	weather *Weather
	rng     *rand.Rand

	frame [][]Cell
}

// New builds a simulation for a cols×rows glyph grid.
func New(cfg Config) *Simulation {
	rng := rand.New(rand.NewSource(cfg.Seed))
	s := &Simulation{
		pointer: NewPointer(),
		pool:    wave.NewPool(),
		trail:   make([]wave.TrailPoint, 0, constants.MaxTrailPoints),
		weather: NewWeather(rng, cfg.Rain),
		rng:     rng,
	}
	s.Resize(cfg.Cols, cfg.Rows)
	return s
}

// Resize rebuilds the grid-shape-dependent state. Sources and weather
// survive a resize; the drag grid does not.
func (s *Simulation) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	s.worldW = float64(cols) * constants.CellWidth
	s.worldH = float64(rows) * constants.CellHeight

	if s.fluid == nil {
		s.fluid = NewFluid(cols, rows)
	} else {
		s.fluid.Resize(cols, rows)
	}

	s.frame = make([][]Cell, rows)
	for y := range s.frame {
		s.frame[y] = make([]Cell, cols)
	}
}

// Size returns the grid dimensions.
func (s *Simulation) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Now returns the current simulation time in seconds.
func (s *Simulation) Now() float64 {
	return s.now
}

// SetPointer moves the cursor to a world position.
func (s *Simulation) SetPointer(x, y float64) {
	s.pointer.MoveTo(x, y)
}

// PointerLeave parks the cursor off screen.
func (s *Simulation) PointerLeave() {
	s.pointer.Leave()
}

// Splash spawns a full-strength ripple at a world position (click/tap).
func (s *Simulation) Splash(x, y float64) {
	s.pool.AddRipple(wave.Ripple{X: x, Y: y, Birth: s.now, Kind: wave.RippleNormal}, s.now)
}

// Drops exposes the airborne raindrops for the streak overlay.
func (s *Simulation) Drops() []Raindrop {
	return s.weather.Drops
}

// Counts reports live population sizes for the status line.
func (s *Simulation) Counts() (ripples, wakes, drops int) {
	return len(s.pool.Ripples), len(s.pool.Wakes), len(s.weather.Drops)
}

// Step advances the pond by one fixed timestep: reap, spawn, relax the
// drag grid, then composite every cell into the frame buffer.
func (s *Simulation) Step() {
	s.now += constants.TimeStep

	// Reap before anything spawns so capacity pressure never comes from
	// dead entries.
	s.pool.Reap(s.now)
	s.reapTrail()

	if angle, ok := s.pointer.Update(constants.TimeStep); ok {
		s.spawnWake(angle)
	}

	s.weather.Update(s.now, constants.TimeStep, s.worldW, s.worldH, s.pool)

	if s.pointer.OnScreen && s.pointer.Speed > 0 {
		col := int(s.pointer.X / constants.CellWidth)
		row := int(s.pointer.Y / constants.CellHeight)
		s.fluid.Impulse(col, row,
			s.pointer.VelX*constants.FluidVelocityImpulse,
			s.pointer.VelY*constants.FluidVelocityImpulse,
			s.pointer.Speed*constants.FluidHeightImpulse)
	}
	s.fluid.Step()

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			s.frame[row][col] = s.compositeCell(col, row)
		}
	}
}

// Frame returns the cell buffer computed by the last Step. The buffer
// is reused across frames; callers must not retain it.
func (s *Simulation) Frame() [][]Cell {
	return s.frame
}

// spawnWake sheds the full stern package behind the pointer: one trail
// point at the cursor, a symmetric pair of directional wakes on the two
// V arms, and one faint splash ripple between them.
func (s *Simulation) spawnWake(angle float64) {
	s.trail = append(s.trail, wave.TrailPoint{
		X:     s.pointer.X,
		Y:     s.pointer.Y,
		Angle: angle,
		Birth: s.now,
	})
	if len(s.trail) > constants.MaxTrailPoints {
		copy(s.trail, s.trail[1:])
		s.trail = s.trail[:constants.MaxTrailPoints]
	}

	stern := angle + math.Pi
	for _, side := range [2]float64{-constants.WakeHalfAngle, constants.WakeHalfAngle} {
		a := stern + side
		x := s.pointer.X + math.Cos(a)*constants.WakeSpawnOffset
		y := s.pointer.Y + math.Sin(a)*constants.WakeSpawnOffset
		s.pool.AddWake(wave.NewWake(x, y, a, s.now))
	}

	s.pool.AddRipple(wave.Ripple{
		X:     s.pointer.X + math.Cos(stern)*constants.WakeSpawnOffset,
		Y:     s.pointer.Y + math.Sin(stern)*constants.WakeSpawnOffset,
		Birth: s.now,
		Kind:  wave.RippleSplash,
	}, s.now)
}

// reapTrail drops expired trail points in place.
func (s *Simulation) reapTrail() {
	live := s.trail[:0]
	for _, p := range s.trail {
		if p.Alive(s.now) {
			live = append(live, p)
		}
	}
	s.trail = live
}
