package entity

import (
	"time"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/physics"
)

// DamageResult is the outcome of TakeDamage
type DamageResult uint8

const (
	DamageIgnored DamageResult = iota
	DamageShrunk
	DamageDied
)

// Action reports what the player did during Update
type Action struct {
	Moving      bool
	Jumped      bool
	SuperJumped bool
	Landed      bool
	// Struck is a mace swing started this frame
	Struck bool
}

// Player is the controllable axolotl
// Form (Big/Small), Invincible, Dead and Climbing are orthogonal flags over the movement states
type Player struct {
	body  *physics.Body
	sched *engine.Scheduler

	big        bool
	invincible bool
	dead       bool

	jumping   bool
	canJump   bool
	jumpHeld  bool
	jumpTimer time.Duration
	coyote    time.Duration

	facing Facing

	climbing     bool
	hanging      bool
	grabCooldown time.Duration

	superJumpCooldown bool

	// A swing needs a fresh press and the mace off cooldown
	strikeHeld     bool
	strikeCooldown bool

	invincibleTimer *engine.Timer
	superJumpTimer  *engine.Timer
	strikeTimer     *engine.Timer
}

// NewPlayer creates a small player centered at (x, y)
func NewPlayer(x, y float64, sched *engine.Scheduler) *Player {
	return &Player{
		body:    physics.NewBody(physics.PlayerProfile, x, y),
		sched:   sched,
		canJump: true,
		facing:  FacingRight,
	}
}

func (p *Player) Body() *physics.Body         { return p.body }
func (p *Player) Big() bool                   { return p.big }
func (p *Player) Invincible() bool            { return p.invincible }
func (p *Player) Dead() bool                  { return p.dead }
func (p *Player) Jumping() bool               { return p.jumping }
func (p *Player) CanJump() bool               { return p.canJump }
func (p *Player) Facing() Facing              { return p.facing }
func (p *Player) Climbing() bool              { return p.climbing }
func (p *Player) Hanging() bool               { return p.hanging }
func (p *Player) GrabCooldown() time.Duration { return p.grabCooldown }
func (p *Player) SuperJumpReady() bool        { return !p.superJumpCooldown }
func (p *Player) StrikeReady() bool           { return !p.strikeCooldown }

// Update applies one frame of input before the physics step
// superJumps is the remaining stock; the caller consumes one when SuperJumped is reported
func (p *Player) Update(in Input, dt time.Duration, superJumps int) Action {
	var act Action
	if p.dead || p.climbing || p.hanging {
		return act
	}
	b := p.body
	onGround := b.Grounded

	if onGround {
		p.coyote = parameter.PlayerCoyoteTime
	} else if p.coyote > 0 {
		p.coyote = max(p.coyote-dt, 0)
	}

	speed := parameter.PlayerMoveSpeed
	if in.Run {
		speed = parameter.PlayerRunSpeed
	}
	switch {
	case in.Left:
		b.Vel.X = -speed
		p.facing = FacingLeft
		act.Moving = true
	case in.Right:
		b.Vel.X = speed
		p.facing = FacingRight
		act.Moving = true
	default:
		physics.Decay(b, parameter.PlayerHorizontalDecay, parameter.PlayerStopThreshold)
	}

	jumpKey := in.JumpKey()
	if jumpKey && (onGround || p.coyote > 0) && p.canJump && !p.jumping {
		b.Vel.Y = parameter.PlayerJumpForce
		p.jumping = true
		p.jumpHeld = true
		p.jumpTimer = 0
		p.canJump = false
		p.coyote = 0
		act.Jumped = true
	}

	// Variable height: impulse only inside the hold window and while rising
	if jumpKey && p.jumping && p.jumpHeld {
		p.jumpTimer += dt
		if p.jumpTimer < parameter.PlayerMaxJumpTime && b.Vel.Y < 0 {
			b.Vel.Y += parameter.PlayerJumpHoldForce * dt.Seconds() * 60
		}
	}

	if !jumpKey {
		p.jumpHeld = false
		if onGround {
			act.Landed = p.jumping
			p.canJump = true
			p.jumping = false
		}
	}

	if in.Attack && superJumps > 0 && onGround && !p.superJumpCooldown {
		p.superJump()
		act.SuperJumped = true
	}

	if in.Strike && !p.strikeHeld && !p.strikeCooldown {
		p.startStrike()
		act.Struck = true
	}
	p.strikeHeld = in.Strike
	return act
}

func (p *Player) startStrike() {
	p.strikeCooldown = true
	p.strikeTimer.Cancel()
	var t *engine.Timer
	t = p.sched.After(parameter.MaceCooldown, func() {
		if p.strikeTimer != t {
			return
		}
		p.strikeCooldown = false
	})
	p.strikeTimer = t
}

func (p *Player) superJump() {
	p.body.Vel.Y = parameter.PlayerSuperJumpForce
	p.jumping = true
	p.superJumpCooldown = true
	p.superJumpTimer.Cancel()
	var t *engine.Timer
	t = p.sched.After(parameter.PlayerSuperJumpCooldown, func() {
		if p.superJumpTimer != t {
			return
		}
		p.superJumpCooldown = false
	})
	p.superJumpTimer = t
}

// TakeDamage shrinks a big player or kills a small one; no-op while invincible or dead
func (p *Player) TakeDamage() DamageResult {
	if p.invincible || p.dead {
		return DamageIgnored
	}
	if p.big {
		p.setBig(false)
		p.SetInvincible(parameter.PlayerDamageInvincibility)
		return DamageShrunk
	}
	p.Die()
	return DamageDied
}

// PowerUp grows a small player; returns false if already big
func (p *Player) PowerUp() bool {
	if p.big || p.dead {
		return false
	}
	p.setBig(true)
	p.SetInvincible(parameter.PlayerPowerUpInvincibility)
	return true
}

func (p *Player) setBig(big bool) {
	p.big = big
	h := parameter.PlayerSmallHeight
	if big {
		h = parameter.PlayerHeight
	}
	p.body.Resize(parameter.PlayerWidth, h)
}

// SetInvincible starts or restarts the invincibility window
func (p *Player) SetInvincible(d time.Duration) {
	p.invincible = true
	p.invincibleTimer.Cancel()
	var t *engine.Timer
	t = p.sched.After(d, func() {
		if p.invincibleTimer != t {
			return
		}
		p.invincible = false
	})
	p.invincibleTimer = t
}

// Bounce rebounds the player after a stomp
func (p *Player) Bounce() {
	p.BounceWith(parameter.PlayerStompBounce)
}

// BounceWith rebounds the player with vertical velocity vy
func (p *Player) BounceWith(vy float64) {
	p.body.Vel.Y = vy
	p.jumping = true
}

// Die latches death once; returns false if already dead
func (p *Player) Die() bool {
	if p.dead {
		return false
	}
	p.dead = true
	p.climbing = false
	p.hanging = false
	p.invincibleTimer.Cancel()
	p.invincible = false
	b := p.body
	b.Vel.X, b.Vel.Y = 0, parameter.PlayerDeathImpulse
	b.GravityOff = false
	b.CollisionOff = true
	return true
}

// Reset clears per-life state and places the player at (x, y)
func (p *Player) Reset(x, y float64) {
	p.invincibleTimer.Cancel()
	p.superJumpTimer.Cancel()
	p.strikeTimer.Cancel()
	p.invincibleTimer, p.superJumpTimer, p.strikeTimer = nil, nil, nil
	if p.big {
		p.setBig(false)
	}
	p.body.Teleport(x, y)
	p.body.GravityOff = false
	p.body.CollisionOff = false
	p.dead = false
	p.invincible = false
	p.climbing = false
	p.hanging = false
	p.grabCooldown = 0
	p.jumping = false
	p.canJump = true
	p.jumpHeld = false
	p.jumpTimer = 0
	p.coyote = 0
	p.superJumpCooldown = false
	p.strikeHeld = false
	p.strikeCooldown = false
}

// CanGrab reports whether a ledge grab may be attempted this frame
func (p *Player) CanGrab() bool {
	return !p.dead && !p.climbing && !p.hanging && p.grabCooldown <= 0 &&
		!p.body.Grounded && p.body.Vel.Y > parameter.GrabFallThreshold
}

// TickGrabCooldown decrements the re-grab cooldown
func (p *Player) TickGrabCooldown(dt time.Duration) {
	if p.grabCooldown > 0 {
		p.grabCooldown = max(p.grabCooldown-dt, 0)
	}
}

// BeginClimb suspends physics for a scripted climb onto an edge
func (p *Player) BeginClimb() {
	p.climbing = true
	p.grabCooldown = parameter.GrabCooldown
	p.body.Vel.X, p.body.Vel.Y = 0, 0
	p.body.GravityOff = true
}

// EndClimb restores physics once the climb reaches the top
func (p *Player) EndClimb() {
	if !p.climbing {
		return
	}
	p.climbing = false
	p.body.GravityOff = false
	p.body.Vel.Y = parameter.ClimbLandingVelocity
	p.jumping = false
	p.jumpHeld = false
}
