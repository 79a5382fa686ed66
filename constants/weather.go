package constants

// Weather Constants
const (
	// MicroMinGap and MicroJitter bound the random re-arm interval of the
	// ambient micro-disturbance timer: next = now + MicroMinGap + rand*MicroJitter
	MicroMinGap = 1.5
	MicroJitter = 2.5

	// DropMinGap and DropJitter bound the raindrop spawn interval
	DropMinGap = 0.9
	DropJitter = 2.2

	// DropMinSpeed and DropSpeedJitter bound fall speed in world units/s
	DropMinSpeed    = 300.0
	DropSpeedJitter = 360.0

	// DropTargetMin and DropTargetMax bound the landing height as a
	// fraction of world height
	DropTargetMin = 0.25
	DropTargetMax = 0.95

	// MaxDrops caps airborne raindrops
	MaxDrops = 16

	// WindDriftRate is the slow global wind phase drift in rad/s
	WindDriftRate = 0.05

	// WindRainBias is the horizontal pull wind exerts on falling drops
	WindRainBias = 40.0
)
