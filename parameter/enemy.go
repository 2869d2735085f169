package parameter

import "time"

// Gull
const (
	GullWidth  = 32.0
	GullHeight = 28.0
	GullSpeed  = 60.0

	// GullFadeDelay is the time a stomped gull shows its death pose
	GullFadeDelay = 500 * time.Millisecond

	// GullFadeDuration is the fade-out after the death pose
	GullFadeDuration = 300 * time.Millisecond
)

// Heron
const (
	HeronWidth       = 32.0
	HeronHeight      = 48.0
	HeronShellHeight = 24.0

	HeronWalkSpeed  = 40.0
	HeronShellSpeed = 300.0

	HeronRecoverTime = 5000 * time.Millisecond

	// HeronWobbleLead is how long before recovery the shell starts wobbling
	HeronWobbleLead = 1500 * time.Millisecond

	// HeronKnockbackX and HeronKnockbackY are applied when hit by a moving shell
	HeronKnockbackX = 100.0
	HeronKnockbackY = -200.0

	// HeronShellHitRemoval is the delay before a shell-hit enemy is removed
	HeronShellHitRemoval = 1000 * time.Millisecond
)

// Flying Heron
const (
	FlyingAmplitudeDefault = 40.0
	FlyingSpeedDefault     = 40.0

	// FlyingFrequency is the angular speed of the sine path in rad/s
	FlyingFrequency = 2.0

	// FlyingTurnMargin keeps flyers this far inside the level width
	FlyingTurnMargin = 100.0

	FlyingDeathFade = 500 * time.Millisecond
)

// Trajinera
const (
	TrajineraHeightDefault = 28.0
	TrajineraRangeDefault  = 240.0
)
