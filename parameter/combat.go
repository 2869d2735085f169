package parameter

import "time"

// Mace Swing
const (
	MaceCooldown = 500 * time.Millisecond

	// MaceRange is the horizontal reach in front of the player
	MaceRange = 70.0

	// MaceReachY is the vertical tolerance for enemies; MaceReachBossY for the boss
	MaceReachY     = 40.0
	MaceReachBossY = 60.0

	// MaceKnockoutX and MaceKnockoutY launch an enemy knocked out by the mace or a bolt
	MaceKnockoutX = 150.0
	MaceKnockoutY = -150.0

	MaceKnockoutRemoval = 500 * time.Millisecond

	ScoreMaceHit = 100
)

// Thunderbolt, spent from the mace stock on every swing that has one
const (
	BoltSpeed    = 400.0
	BoltLifetime = 1500 * time.Millisecond
	BoltWidth    = 20.0
	BoltHeight   = 12.0

	// BoltOffsetX is the launch point ahead of the player center
	BoltOffsetX = 30.0

	ScoreBoltHit = 200
)

// Flyer Shots
const (
	FlyerShotSpeed    = 200.0
	FlyerShotLifetime = 3000 * time.Millisecond
	FlyerShotSize     = 12.0

	// FlyerShotRange is the distance inside which a reloaded flyer fires
	FlyerShotRange = 400.0

	FlyerFirstShot = 2000 * time.Millisecond

	// FlyerReloadMin and FlyerReloadMax bound the alternating reload times
	FlyerReloadMin = 2000 * time.Millisecond
	FlyerReloadMax = 4000 * time.Millisecond

	// FlyerShotDropY is the muzzle offset below the flyer center
	FlyerShotDropY = 10.0
)

// Power-up effects beyond the mushroom
const (
	FeatherSuperJumps = 3
	StarSuperJumps    = 2

	EloteInvincibility = 8000 * time.Millisecond

	ThunderMaceAttacks = 1
	ThunderSuperJumps  = 1
)

// Dark Xochi
const (
	BossWidth  = 40.0
	BossHeight = 56.0

	// BossSpawnOffsetX places the boss to the right of the player spawn
	BossSpawnOffsetX = 300.0

	BossSpeed      = 80.0
	BossSpeedFinal = 100.0

	// BossSpeedRamp is the extra speed fraction reached at zero health
	BossSpeedRamp = 0.5

	// BossEngageRange is the horizontal distance at which the boss turns from the baby to the player
	BossEngageRange = 300.0

	// BossHoldDistance stops the approach walk this close to the target
	BossHoldDistance = 80.0

	// BossTelegraphRange ends the approach early when the player is this close
	BossTelegraphRange = 120.0

	BossJumpForce = -380.0

	// BossClimbTrigger makes the boss jump when the player is this far above it
	BossClimbTrigger = 120.0

	BossApproachTime      = 2000 * time.Millisecond
	BossApproachTimeFinal = 1500 * time.Millisecond
	BossTelegraphTime     = 500 * time.Millisecond
	BossAttackTime        = 400 * time.Millisecond
	BossRecoverTime       = 1500 * time.Millisecond
	BossRecoverTimeFinal  = 1200 * time.Millisecond

	BossLeapVX = 300.0
	BossLeapVY = -450.0

	// BossStrikeReach is the horizontal half-width of a swing or landing shockwave
	BossStrikeReach = 100.0

	// BossShockwaveReachY is the vertical half-height of the landing shockwave
	BossShockwaveReachY = 50.0

	// BossHitInvulnerability follows every point of damage
	BossHitInvulnerability = 500 * time.Millisecond

	// BossHitKnockback pushes the boss away from the player on damage
	BossHitKnockback = 200.0

	// BossRemoval is the defeat animation before the boss is dropped
	BossRemoval = 1000 * time.Millisecond

	// BossRecoverPush shoves a player touching the tired boss
	BossRecoverPush = 200.0

	// BossStompBounce is the rebound after stomping the boss
	BossStompBounce = -400.0

	BossRaceTime      = 45
	BossRaceTimeFinal = 60

	ScoreBossDefeat = 2000

	// ScoreBossTimeBonus is awarded per race second left at the rescue
	ScoreBossTimeBonus = 50
)
