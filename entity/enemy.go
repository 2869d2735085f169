package entity

import (
	"time"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/physics"
	"github.com/lixenwraith/xochi/vmath"
)

// StompResult is the enemy-side outcome of a stomp
type StompResult uint8

const (
	// StompIgnored means the enemy was already dead or immune in its current phase
	StompIgnored StompResult = iota
	StompKilled
	StompShelled
	StompKicked
	// StompDamaged took a point of health without defeating the enemy
	StompDamaged
)

// Enemy is the capability shared by every hostile variant
type Enemy interface {
	Kind() level.EnemyKind
	// Update runs after the physics step for the frame
	Update(dt time.Duration)
	Stomp(playerX float64) StompResult
	// HitByShell kills the enemy, knocking it back against its own heading; returns false if it was already dead
	HitByShell() bool
	// Strike is a mace or thunderbolt hit travelling in dir; returns false if it had no effect
	Strike(dir int) bool
	Body() *physics.Body
	Bounds() vmath.Rect
	Alive() bool
	Removed() bool
}

// ShellKicker is implemented by enemies whose resting phase can be kicked from the side
type ShellKicker interface {
	Enemy
	IsShell() bool
	IsMovingShell() bool
	Kick(playerX float64) bool
	Direction() int
}

// knockout launches a defeated body off the level and flags removal after delay
func knockout(b *physics.Body, sched *engine.Scheduler, vel vmath.Vec2, delay time.Duration, removed *bool) {
	b.Vel = vel
	b.CollisionOff = true
	sched.After(delay, func() {
		*removed = true
	})
}

func strikeVelocity(dir int) vmath.Vec2 {
	return vmath.V(parameter.MaceKnockoutX*float64(normDir(dir)), parameter.MaceKnockoutY)
}

// Shooter is implemented by enemies that fire projectiles at the player
type Shooter interface {
	Enemy
	Shoot(target vmath.Vec2) *Projectile
}

func normDir(d int) int {
	if d > 0 {
		return 1
	}
	return -1
}
