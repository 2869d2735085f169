package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/physics"
	"github.com/lixenwraith/xochi/vmath"
)

const tick = 16 * time.Millisecond

type rig struct {
	sched  *engine.Scheduler
	world  *physics.World
	player *Player
}

func newRig(t *testing.T) *rig {
	t.Helper()
	sched := engine.NewScheduler(nil)
	world := physics.NewWorld(2000, 1000, []vmath.Rect{{X: 0, Y: 800, W: 2000, H: 200}})
	p := NewPlayer(200, 800-parameter.PlayerSmallHeight/2, sched)
	r := &rig{sched: sched, world: world, player: p}
	r.step(Input{})
	require.True(t, p.Body().Grounded)
	return r
}

func (r *rig) step(in Input) Action {
	act := r.player.Update(in, tick, 0)
	if !r.player.Climbing() {
		r.world.Step(r.player.Body(), tick.Seconds())
	}
	r.sched.Advance(tick)
	return act
}

// jumpApex holds jump for holdFrames and returns the highest top reached
func (r *rig) jumpApex(holdFrames int) float64 {
	apex := r.player.Body().Top()
	for i := 0; i < 120; i++ {
		r.step(Input{Jump: i < holdFrames})
		apex = min(apex, r.player.Body().Top())
	}
	return apex
}

func TestDamageSequence(t *testing.T) {
	r := newRig(t)
	p := r.player

	require.True(t, p.PowerUp())
	assert.True(t, p.Big())
	assert.Equal(t, parameter.PlayerHeight, p.Body().H)
	assert.False(t, p.PowerUp(), "already big")

	// Power-up invincibility swallows damage
	assert.Equal(t, DamageIgnored, p.TakeDamage())
	r.sched.Advance(parameter.PlayerPowerUpInvincibility)
	require.False(t, p.Invincible())

	assert.Equal(t, DamageShrunk, p.TakeDamage())
	assert.False(t, p.Big())
	assert.True(t, p.Invincible())
	for i := 0; i < 5; i++ {
		assert.Equal(t, DamageIgnored, p.TakeDamage())
	}
	assert.False(t, p.Dead())

	r.sched.Advance(parameter.PlayerDamageInvincibility)
	require.False(t, p.Invincible())

	assert.Equal(t, DamageDied, p.TakeDamage())
	assert.True(t, p.Dead())
	assert.True(t, p.Body().CollisionOff)
	assert.Equal(t, parameter.PlayerDeathImpulse, p.Body().Vel.Y)

	assert.Equal(t, DamageIgnored, p.TakeDamage())
	assert.False(t, p.Die())
}

func TestInvincibilityRestartKeepsLatestWindow(t *testing.T) {
	r := newRig(t)
	p := r.player

	p.SetInvincible(time.Second)
	r.sched.Advance(800 * time.Millisecond)
	p.SetInvincible(time.Second)
	r.sched.Advance(300 * time.Millisecond)
	assert.True(t, p.Invincible(), "first window expiry must not clear the second")
	r.sched.Advance(800 * time.Millisecond)
	assert.False(t, p.Invincible())
}

func TestHorizontalMovement(t *testing.T) {
	r := newRig(t)
	p := r.player

	act := r.step(Input{Right: true})
	assert.True(t, act.Moving)
	assert.Equal(t, parameter.PlayerMoveSpeed, p.Body().Vel.X)

	r.step(Input{Left: true, Run: true})
	assert.Equal(t, -parameter.PlayerRunSpeed, p.Body().Vel.X)
	assert.Equal(t, FacingLeft, p.Facing())

	r.step(Input{})
	assert.InDelta(t, -parameter.PlayerRunSpeed*0.85, p.Body().Vel.X, 1e-9)
	for i := 0; i < 30; i++ {
		r.step(Input{})
	}
	assert.Equal(t, 0.0, p.Body().Vel.X)
}

func TestJumpHeightIsBounded(t *testing.T) {
	full := newRig(t).jumpApex(60)
	capped := newRig(t).jumpApex(13)
	early := newRig(t).jumpApex(3)

	assert.InDelta(t, full, capped, 1e-9, "holding past the max jump time adds nothing")
	assert.Greater(t, early, full, "early release peaks lower")
}

func TestJumpRequiresRelease(t *testing.T) {
	r := newRig(t)
	p := r.player

	act := r.step(Input{Jump: true})
	require.True(t, act.Jumped)
	assert.False(t, p.CanJump())

	// Land while still holding jump: no re-jump
	for i := 0; i < 400 && !(p.Body().Grounded && p.Body().Vel.Y == 0 && i > 10); i++ {
		r.step(Input{Jump: true})
	}
	require.True(t, p.Body().Grounded)
	act = r.step(Input{Jump: true})
	assert.False(t, act.Jumped)
	assert.False(t, p.CanJump())

	act = r.step(Input{})
	assert.True(t, p.CanJump())
	assert.True(t, act.Landed)

	act = r.step(Input{Up: true})
	assert.True(t, act.Jumped)
}

func TestCoyoteTime(t *testing.T) {
	sched := engine.NewScheduler(nil)
	world := physics.NewWorld(2000, 1000, []vmath.Rect{{X: 0, Y: 800, W: 100, H: 200}})
	p := NewPlayer(85, 800-parameter.PlayerSmallHeight/2, sched)
	step := func(in Input) Action {
		act := p.Update(in, tick, 0)
		world.Step(p.Body(), tick.Seconds())
		return act
	}
	step(Input{})
	require.True(t, p.Body().Grounded)

	for p.Body().Grounded {
		step(Input{Right: true})
	}
	act := step(Input{Jump: true})
	assert.True(t, act.Jumped, "jump inside the coyote window")
}

func TestSuperJump(t *testing.T) {
	r := newRig(t)
	p := r.player

	act := p.Update(Input{Attack: true}, tick, 0)
	assert.False(t, act.SuperJumped, "no stock")

	act = p.Update(Input{Attack: true}, tick, 2)
	require.True(t, act.SuperJumped)
	assert.Equal(t, parameter.PlayerSuperJumpForce, p.Body().Vel.Y)
	assert.False(t, p.SuperJumpReady())

	r.sched.Advance(parameter.PlayerSuperJumpCooldown)
	assert.True(t, p.SuperJumpReady())
}

func TestBounce(t *testing.T) {
	r := newRig(t)
	r.player.Bounce()
	assert.Equal(t, parameter.PlayerStompBounce, r.player.Body().Vel.Y)
	assert.True(t, r.player.Jumping())
}

func TestGrabGating(t *testing.T) {
	r := newRig(t)
	p := r.player
	assert.False(t, p.CanGrab(), "grounded")

	p.Body().Grounded = false
	p.Body().Vel.Y = parameter.GrabFallThreshold
	assert.False(t, p.CanGrab(), "not falling fast enough")
	p.Body().Vel.Y = parameter.GrabFallThreshold + 1
	assert.True(t, p.CanGrab())

	p.BeginClimb()
	assert.True(t, p.Climbing())
	assert.True(t, p.Body().GravityOff)
	assert.Equal(t, vmath.Vec2{}, p.Body().Vel)
	assert.False(t, p.CanGrab())
	assert.Equal(t, Action{}, p.Update(Input{Right: true}, tick, 0), "input ignored while climbing")

	p.EndClimb()
	assert.False(t, p.Climbing())
	assert.False(t, p.Body().GravityOff)
	assert.Equal(t, parameter.ClimbLandingVelocity, p.Body().Vel.Y)

	p.Body().Vel.Y = 300
	assert.False(t, p.CanGrab(), "cooldown")
	p.TickGrabCooldown(parameter.GrabCooldown)
	assert.True(t, p.CanGrab())
}

func TestResetClearsLifeState(t *testing.T) {
	r := newRig(t)
	p := r.player
	p.PowerUp()
	p.Die()

	p.Reset(50, 60)
	assert.False(t, p.Dead())
	assert.False(t, p.Big())
	assert.False(t, p.Invincible())
	assert.False(t, p.Body().CollisionOff)
	assert.Equal(t, vmath.V(50, 60), p.Body().Pos)
	assert.True(t, p.CanJump())
	assert.Zero(t, r.sched.Pending())
}

func TestStrikeNeedsFreshPressAndCooldown(t *testing.T) {
	r := newRig(t)
	p := r.player

	act := r.step(Input{Strike: true})
	require.True(t, act.Struck)
	assert.False(t, p.StrikeReady())

	assert.False(t, r.step(Input{Strike: true}).Struck, "holding does not repeat")
	r.step(Input{})
	assert.False(t, r.step(Input{Strike: true}).Struck, "cooldown blocks a new press")

	r.sched.Advance(parameter.MaceCooldown)
	assert.True(t, p.StrikeReady())
	r.step(Input{})
	assert.True(t, r.step(Input{Strike: true}).Struck)

	p.Reset(200, 700)
	assert.True(t, p.StrikeReady(), "reset clears the cooldown")
}
