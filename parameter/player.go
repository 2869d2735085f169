package parameter

import (
	"time"
)

// Player Body
const (
	PlayerWidth  = 30.0
	PlayerHeight = 50.0

	// PlayerSmallHeight is the body height before the mushroom power-up
	PlayerSmallHeight = 38.0
)

// Player Movement
const (
	PlayerMoveSpeed = 200.0
	PlayerRunSpeed  = 320.0

	// PlayerHorizontalDecay multiplies vx each tick when no direction is held
	PlayerHorizontalDecay = 0.85

	// PlayerStopThreshold snaps decaying vx to zero below this magnitude
	PlayerStopThreshold = 10.0
)

// Player Jump
const (
	PlayerJumpForce = -400.0

	// PlayerJumpHoldForce is added per 60Hz-normalized tick while jump is held
	PlayerJumpHoldForce = -50.0

	PlayerMaxJumpTime = 200 * time.Millisecond

	// PlayerCoyoteTime is the grace period after walking off an edge
	PlayerCoyoteTime = 100 * time.Millisecond

	PlayerSuperJumpForce    = -650.0
	PlayerSuperJumpCooldown = 500 * time.Millisecond
)

// Player Damage
const (
	PlayerDamageInvincibility  = 2000 * time.Millisecond
	PlayerPowerUpInvincibility = 1500 * time.Millisecond

	// PlayerDeathImpulse is the vertical velocity applied on death
	PlayerDeathImpulse = -300.0

	// PlayerStompBounce is the rebound velocity after any stomp
	PlayerStompBounce = -250.0

	// PlayerRespawnDelay is the pause between death and respawn
	PlayerRespawnDelay = 1500 * time.Millisecond
)

// Ledge Grab
const (
	// GrabFallThreshold is the minimum downward velocity to arm a grab
	GrabFallThreshold = 100.0

	// GrabRange is both the horizontal reach and the vertical tolerance around an edge top
	GrabRange = 45.0

	GrabCooldown = 400 * time.Millisecond

	// GrabTrajineraLift raises a trajinera's grab line above its hull
	GrabTrajineraLift = 5.0

	// Snap offsets relative to the edge point
	GrabSnapInsetX = 8.0
	GrabSnapDropY  = 10.0

	ClimbPullUpDuration = 80 * time.Millisecond
	ClimbPullUpX        = 10.0
	ClimbPullUpY        = 10.0

	ClimbVaultDuration = 100 * time.Millisecond
	ClimbVaultX        = 30.0
	ClimbVaultY        = 35.0

	// ClimbLandingVelocity is the gentle downward velocity after the vault
	ClimbLandingVelocity = 50.0
)
