package constants

// Compositor Constants
const (
	// InterferenceBoost amplifies summed influence where sources overlap:
	// sum * (1 + (n-1)*InterferenceBoost) for n overlapping sources.
	// Real superposition is linear; the boost keeps interference legible
	// at character resolution.
	InterferenceBoost = 0.35

	// InterferenceThreshold gates the interference color treatment
	InterferenceThreshold = 0.35

	// WaveClamp bounds the composite wave value
	WaveClamp = 2.0

	// FluidHeightWeight folds the drag grid height into the composite
	FluidHeightWeight = 0.55
)

// Gaze Constants
const (
	// GazeRadius is the cursor glow reach in world units
	GazeRadius = 140.0

	// GazeShimmerAmp scales the shimmer added inside the gaze radius
	GazeShimmerAmp = 0.15

	// GazeShimmerFreq is the shimmer oscillation rate in rad/s
	GazeShimmerFreq = 6.0
)

// Fluid Grid Constants
const (
	// FluidDamping multiplies cell velocity every step
	FluidDamping = 0.96

	// FluidBlend weighs the 4-neighbor average against the cell's own
	// damped height
	FluidBlend = 0.6

	// FluidVelocityLift converts residual velocity into surface height
	FluidVelocityLift = 0.04

	// FluidImpulseRadius is the stamp radius of a pointer impulse, in cells
	FluidImpulseRadius = 2

	// FluidVelocityImpulse scales pointer velocity injected into the grid
	FluidVelocityImpulse = 0.012

	// FluidHeightImpulse scales the height bump under a moving pointer
	FluidHeightImpulse = 0.0025

	// DisplacementScale converts cell velocity into glyph displacement
	DisplacementScale = 0.18
)
