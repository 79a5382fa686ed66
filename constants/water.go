package constants

import "time"

// Frame Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TimeStep is the fixed simulation step in seconds. All propagation
	// speeds and lifespans below are tuned against this step; the loop
	// advances by exactly this amount per frame regardless of wall time.
	TimeStep = 1.0 / 60.0
)

// World Geometry Constants
//
// Terminal cells are roughly twice as tall as wide, so one cell spans
// 12 world units horizontally and 24 vertically. Wave math runs in world
// units; only the painter thinks in cells.
const (
	CellWidth  = 12.0
	CellHeight = 24.0
)

// Ripple Tuning Constants
const (
	// RippleSpeed is ring propagation speed in world units per second
	RippleSpeed = 280.0

	// RippleLifespan is the lifetime of a normal ripple in seconds
	RippleLifespan = 6.0

	// RingBaseWidth is the half-width of the ring band at birth
	RingBaseWidth = 30.0

	// RingGrowthRate widens the band linearly with age (dispersion)
	RingGrowthRate = 45.0

	// RippleFreq is the fundamental spatial frequency of the ring band
	RippleFreq = 0.15

	// RipplePhase shifts the fundamental so the crest rides slightly
	// ahead of the geometric front instead of zeroing out on it
	RipplePhase = 0.785398163397448 // pi/4

	// Micro ripples: ambient disturbances and raindrop impacts
	MicroSpeed    = 200.0
	MicroLifespan = 4.2
	MicroStrength = 0.25

	// Splash ripples: the faint rings shed behind a moving cursor
	SplashSpeed    = 170.0
	SplashLifespan = 3.0
	SplashStrength = 0.12

	// MaxRipples caps the live ripple population
	MaxRipples = 36
)
