package entity

import (
	"time"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/physics"
	"github.com/lixenwraith/xochi/vmath"
)

// HeronPhase is the heron's behavioral state
type HeronPhase uint8

const (
	HeronWalking HeronPhase = iota
	HeronShelled
	HeronMovingShell
	HeronDead
)

func (h HeronPhase) String() string {
	switch h {
	case HeronWalking:
		return "walking"
	case HeronShelled:
		return "shelled"
	case HeronMovingShell:
		return "moving_shell"
	default:
		return "dead"
	}
}

// Heron is the three-phase shell enemy
// Walking -stomp-> Shelled -stomp or kick-> MovingShell; Shelled -timer-> Walking
type Heron struct {
	body  *physics.Body
	sched *engine.Scheduler

	phase    HeronPhase
	dir      int
	wobbling bool
	removed  bool

	recoverTimer *engine.Timer
	wobbleTimer  *engine.Timer
}

// NewHeron creates a walking heron centered at (x, y)
func NewHeron(x, y float64, dir int, sched *engine.Scheduler) *Heron {
	h := &Heron{
		body:  physics.NewBody(physics.HeronProfile, x, y),
		sched: sched,
		dir:   normDir(dir),
	}
	h.body.Vel.X = parameter.HeronWalkSpeed * float64(h.dir)
	return h
}

func (h *Heron) Kind() level.EnemyKind { return level.KindHeron }
func (h *Heron) Body() *physics.Body   { return h.body }
func (h *Heron) Bounds() vmath.Rect    { return h.body.Bounds() }
func (h *Heron) Alive() bool           { return h.phase != HeronDead }
func (h *Heron) Removed() bool         { return h.removed }
func (h *Heron) Phase() HeronPhase     { return h.phase }
func (h *Heron) Direction() int        { return h.dir }
func (h *Heron) Wobbling() bool        { return h.wobbling }
func (h *Heron) IsShell() bool         { return h.phase == HeronShelled || h.phase == HeronMovingShell }
func (h *Heron) IsMovingShell() bool   { return h.phase == HeronMovingShell }

// RecoveryPending reports whether the shell recovery callback is still armed
func (h *Heron) RecoveryPending() bool { return h.recoverTimer.Active() }

func (h *Heron) Update(dt time.Duration) {
	b := h.body
	switch h.phase {
	case HeronWalking:
		h.bounceOffWalls()
		b.Vel.X = parameter.HeronWalkSpeed * float64(h.dir)
	case HeronShelled:
		b.Vel.X = 0
	case HeronMovingShell:
		h.bounceOffWalls()
		b.Vel.X = parameter.HeronShellSpeed * float64(h.dir)
	}
}

func (h *Heron) bounceOffWalls() {
	switch {
	case h.body.Blocked.Left:
		h.dir = 1
	case h.body.Blocked.Right:
		h.dir = -1
	}
}

// Stomp advances walking to shelled and shelled to kicked; a moving shell ignores it
func (h *Heron) Stomp(playerX float64) StompResult {
	switch h.phase {
	case HeronWalking:
		h.enterShell()
		return StompShelled
	case HeronShelled:
		h.Kick(playerX)
		return StompKicked
	default:
		return StompIgnored
	}
}

func (h *Heron) enterShell() {
	h.phase = HeronShelled
	h.wobbling = false
	h.body.Vel.X, h.body.Vel.Y = 0, 0
	h.body.Resize(parameter.HeronWidth, parameter.HeronShellHeight)

	h.cancelTimers()
	var rt, wt *engine.Timer
	rt = h.sched.After(parameter.HeronRecoverTime, func() {
		if h.recoverTimer != rt {
			return
		}
		h.exitShell()
	})
	wt = h.sched.After(parameter.HeronRecoverTime-parameter.HeronWobbleLead, func() {
		if h.wobbleTimer != wt || h.phase != HeronShelled {
			return
		}
		h.wobbling = true
	})
	h.recoverTimer, h.wobbleTimer = rt, wt
}

func (h *Heron) exitShell() {
	if h.phase != HeronShelled {
		return
	}
	h.phase = HeronWalking
	h.wobbling = false
	h.body.Resize(parameter.HeronWidth, parameter.HeronHeight)
	h.body.Vel.X = parameter.HeronWalkSpeed * float64(h.dir)
}

// Kick launches a resting shell away from playerX and cancels recovery
func (h *Heron) Kick(playerX float64) bool {
	if h.phase != HeronShelled {
		return false
	}
	h.cancelTimers()
	h.phase = HeronMovingShell
	h.wobbling = false
	if playerX < h.body.Pos.X {
		h.dir = 1
	} else {
		h.dir = -1
	}
	h.body.Vel.X = parameter.HeronShellSpeed * float64(h.dir)
	return true
}

// HitByShell kills the heron with a knockback against its heading
func (h *Heron) HitByShell() bool {
	if h.phase == HeronDead {
		return false
	}
	h.cancelTimers()
	h.phase = HeronDead
	h.wobbling = false
	knockout(h.body, h.sched, vmath.V(parameter.HeronKnockbackX*float64(-h.dir), parameter.HeronKnockbackY),
		parameter.HeronShellHitRemoval, &h.removed)
	return true
}

// Strike knocks the heron out in any phase, shells included
func (h *Heron) Strike(dir int) bool {
	if h.phase == HeronDead {
		return false
	}
	h.cancelTimers()
	h.phase = HeronDead
	h.wobbling = false
	knockout(h.body, h.sched, strikeVelocity(dir), parameter.MaceKnockoutRemoval, &h.removed)
	return true
}

func (h *Heron) cancelTimers() {
	h.recoverTimer.Cancel()
	h.wobbleTimer.Cancel()
	h.recoverTimer, h.wobbleTimer = nil, nil
}
