package constants

// Directional Wake Constants
//
// A wake source models the bow wave of the moving cursor: a V-shaped
// front expanding away from its origin along a fixed travel direction.
const (
	// WakeFrontFactor scales RippleSpeed down for the travelling front
	WakeFrontFactor = 0.5

	// WakeLifespan is the lifetime of a directional wake in seconds
	WakeLifespan = 2.5

	// WakeStrength scales wake influence relative to a normal ripple
	WakeStrength = 0.3

	// WakeBaseHalfWidth is the lateral half-width at the origin
	WakeBaseHalfWidth = 18.0

	// WakeSpreadRate widens the V linearly with along-axis distance
	WakeSpreadRate = 0.55

	// WakeMaxRange is the along-axis reach of a wake front
	WakeMaxRange = 420.0

	// WakeHalfAngle is the half-angle of the wake cone in radians
	WakeHalfAngle = 0.35

	// MaxWakes caps the live directional wake population
	MaxWakes = 24
)

// Cursor Trail Constants
const (
	// TrailLifespan is the lifetime of one trail point in seconds
	TrailLifespan = 1.2

	// TrailRange is the reach of a trail point's stern field
	TrailRange = 260.0

	// TrailSpeedFactor moves the trail ring outward, world units per second
	TrailSpeedFactor = 120.0

	// TrailFreq is the spatial frequency of the trail ring
	TrailFreq = 0.11

	// TrailStrength scales the stern field
	TrailStrength = 0.35

	// TrailMinDistance guards the angle formula near the emitter itself
	TrailMinDistance = 4.0

	// MaxTrailPoints caps the trail history
	MaxTrailPoints = 24
)

// Pointer Constants
const (
	// WakeSpawnDistance is accumulated travel before a wake spawn fires
	WakeSpawnDistance = 30.0

	// WakeSpawnOffset places spawned wake sources behind the pointer
	WakeSpawnOffset = 22.0

	// VelocitySmoothing is the EMA factor for pointer velocity
	VelocitySmoothing = 0.3

	// OffscreenSentinel parks the pointer far outside any grid
	OffscreenSentinel = -9999.0
)
