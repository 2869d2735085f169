package parameter

// Fall and water death lines
const (
	// FallDeathMargin is how far below the level bottom the player may drop
	FallDeathMargin = 50.0

	// WaterDeathMargin raises the death line above the water surface
	WaterDeathMargin = 10.0

	// EnemyPruneMargin drops enemies that fell this far past the death line
	EnemyPruneMargin = 200.0
)

// Rising water on upscroller levels
const (
	RisingWaterStart = 50.0
	RisingWaterSpeed = 60.0

	// RisingWaterDepth is how far under the surface the player survives
	RisingWaterDepth = 150.0
)

// Chasing flood on escape levels
const (
	FloodStartX = -100.0

	// FloodReach is the wave front's lead over its tracked line
	FloodReach = 30.0

	// FloodSpeedDefault applies when the level carries no escape speed
	FloodSpeedDefault = 120.0
)
