package parameter

import "time"

// Scoring
const (
	ScoreFlower   = 10
	ScoreStomp    = 100
	ScoreShellHit = 200
	ScoreStar     = 500
	ScoreRescue   = 1000
	ScorePowerUp  = 50
)

// Flower Currency
const (
	// FlowersPerSuperJump grants a super jump on each multiple crossed
	FlowersPerSuperJump = 10

	// FlowersPerLife wraps the counter into an extra life
	FlowersPerLife = 100
)

// Rescue & Completion
const (
	// RescueCompletionDelay is the celebration time between rescue and level end
	RescueCompletionDelay = 2000 * time.Millisecond

	// StarsPerLevel is the fixed star count on every level
	StarsPerLevel = 3
)

// Unlock thresholds by collected star count
const (
	UnlockColorBlue    = 3
	UnlockColorGold    = 6
	UnlockColorRainbow = 12

	UnlockAccessoryFlower     = 5
	UnlockAccessoryBow        = 8
	UnlockAccessorySunglasses = 10
	UnlockAccessoryCrown      = 15
)

// Progression
const (
	TotalLevels = 10
	TotalWorlds = 6
)

// Pickup hitboxes, centered on the item position
const (
	FlowerSize  = 24.0
	StarSize    = 28.0
	PowerUpSize = 28.0
	BabyWidth   = 32.0
	BabyHeight  = 32.0
)

// ShellKickGrace is how long a freshly kicked shell ignores the kicker
const ShellKickGrace = 250 * time.Millisecond

// GameOverDelay is the pause between the last death and the return to menu
const GameOverDelay = 2000 * time.Millisecond
