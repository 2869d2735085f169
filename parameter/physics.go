package parameter

// World Physics
const (
	// Gravity is the downward acceleration in px/s²
	Gravity = 800.0

	// MaxFallSpeed clamps terminal velocity
	MaxFallSpeed = 900.0

	// GroundProbe is the tolerance for resting contact on a surface top
	GroundProbe = 1.0
)
