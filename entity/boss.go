package entity

import (
	"math"
	"time"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/physics"
	"github.com/lixenwraith/xochi/vmath"
)

// BossPhase is Dark Xochi's attack cycle state
type BossPhase uint8

const (
	BossApproach BossPhase = iota
	BossTelegraph
	BossAttack
	BossRecover
	BossDefeated
)

func (p BossPhase) String() string {
	switch p {
	case BossApproach:
		return "approach"
	case BossTelegraph:
		return "telegraph"
	case BossAttack:
		return "attack"
	case BossRecover:
		return "recover"
	default:
		return "defeated"
	}
}

// BossAttackKind alternates every cycle
type BossAttackKind uint8

const (
	BossLeap BossAttackKind = iota
	BossSwing
)

// BossConfig is the per-level tuning
type BossConfig struct {
	Health       int
	Speed        float64
	ApproachTime time.Duration
	RecoverTime  time.Duration
	RaceSeconds  int

	// Goal is the baby the boss races the player to
	Goal vmath.Vec2
}

// BossConfigFor returns the tuning for level n; the final level is faster with a longer race
func BossConfigFor(n, health int, goal vmath.Vec2) BossConfig {
	c := BossConfig{
		Health:       max(health, 1),
		Speed:        parameter.BossSpeed,
		ApproachTime: parameter.BossApproachTime,
		RecoverTime:  parameter.BossRecoverTime,
		RaceSeconds:  parameter.BossRaceTime,
		Goal:         goal,
	}
	if n >= parameter.TotalLevels {
		c.Speed = parameter.BossSpeedFinal
		c.ApproachTime = parameter.BossApproachTimeFinal
		c.RecoverTime = parameter.BossRecoverTimeFinal
		c.RaceSeconds = parameter.BossRaceTimeFinal
	}
	return c
}

// Boss is Dark Xochi: Approach -> Telegraph -> Attack -> Recover, vulnerable to contact only while recovering
// Stomps, mace swings and thunderbolts deal one point of damage in any phase
// A race clock runs alongside; the boss wins when it expires or the boss reaches the baby first
type Boss struct {
	body  *physics.Body
	sched *engine.Scheduler
	cfg   BossConfig

	health int
	phase  BossPhase
	facing int

	phaseTimer *engine.Timer
	phaseDue   bool

	next     BossAttackKind
	leaping  bool
	airborne bool

	invulnerable bool
	invulnTimer  *engine.Timer

	player   vmath.Vec2
	strike   vmath.Rect
	striking bool

	timeLeft  int
	raceTimer *engine.Timer
	won       bool
	removed   bool
}

// NewBoss creates the boss centered at (x, y) and starts its race clock
func NewBoss(x, y float64, cfg BossConfig, sched *engine.Scheduler) *Boss {
	b := &Boss{
		body:     physics.NewBody(physics.BossProfile, x, y),
		sched:    sched,
		cfg:      cfg,
		health:   cfg.Health,
		facing:   -1,
		timeLeft: cfg.RaceSeconds,
	}
	b.enter(BossApproach, cfg.ApproachTime)
	b.raceTimer = sched.Every(time.Second, b.tickRace)
	return b
}

func (b *Boss) Kind() level.EnemyKind { return level.KindBoss }
func (b *Boss) Body() *physics.Body   { return b.body }
func (b *Boss) Bounds() vmath.Rect    { return b.body.Bounds() }
func (b *Boss) Alive() bool           { return b.phase != BossDefeated }
func (b *Boss) Removed() bool         { return b.removed }
func (b *Boss) Phase() BossPhase      { return b.phase }
func (b *Boss) Health() int           { return b.health }
func (b *Boss) MaxHealth() int        { return b.cfg.Health }
func (b *Boss) TimeLeft() int         { return b.timeLeft }
func (b *Boss) Won() bool             { return b.won }
func (b *Boss) Invulnerable() bool    { return b.invulnerable }
func (b *Boss) Facing() int           { return b.facing }
func (b *Boss) NextAttack() BossAttackKind {
	return b.next
}

// Vulnerable reports the tired phase where touching the boss is safe
func (b *Boss) Vulnerable() bool { return b.phase == BossRecover }

// Track feeds the player position for the next Update
func (b *Boss) Track(player vmath.Vec2) { b.player = player }

func (b *Boss) speedMult() float64 {
	return 1 + (1-float64(b.health)/float64(b.cfg.Health))*parameter.BossSpeedRamp
}

func (b *Boss) enter(p BossPhase, d time.Duration) {
	b.phase = p
	b.phaseDue = false
	b.phaseTimer.Cancel()
	var t *engine.Timer
	t = b.sched.After(d, func() {
		if b.phaseTimer != t {
			return
		}
		b.phaseDue = true
	})
	b.phaseTimer = t
}

func (b *Boss) face(dx float64) {
	if dx < 0 {
		b.facing = -1
	} else if dx > 0 {
		b.facing = 1
	}
}

// Update runs one frame of the attack cycle before the physics step
func (b *Boss) Update(time.Duration) {
	b.striking = false
	if !b.Alive() || b.won {
		return
	}
	body := b.body
	dx := b.player.X - body.Pos.X
	dy := b.player.Y - body.Pos.Y
	mult := b.speedMult()

	switch b.phase {
	case BossApproach:
		// Heads for the baby until the player comes close enough to fight
		engaged := math.Abs(dx) < parameter.BossEngageRange
		target, hold := b.cfg.Goal.X, 0.0
		if engaged {
			target, hold = b.player.X, parameter.BossHoldDistance
		}
		tdx := target - body.Pos.X
		if math.Abs(tdx) > hold {
			b.face(tdx)
			body.Vel.X = b.cfg.Speed * mult * float64(b.facing)
		} else {
			body.Vel.X = 0
		}
		if body.Grounded && (body.Blocked.Left || body.Blocked.Right || dy < -parameter.BossClimbTrigger) {
			body.Vel.Y = parameter.BossJumpForce
		}
		if (b.phaseDue && engaged) || math.Abs(dx) < parameter.BossTelegraphRange {
			body.Vel.X = 0
			b.face(dx)
			b.enter(BossTelegraph, parameter.BossTelegraphTime)
		}

	case BossTelegraph:
		body.Vel.X = 0
		if b.phaseDue {
			b.attack(mult)
		}

	case BossAttack:
		if b.leaping {
			if !body.Grounded {
				b.airborne = true
			} else if b.airborne {
				b.leaping = false
				body.Vel.X = 0
				b.strikeAt(parameter.BossShockwaveReachY)
			}
		}
		if b.phaseDue && body.Grounded && !b.leaping {
			body.Vel = vmath.Vec2{}
			b.enter(BossRecover, time.Duration(float64(b.cfg.RecoverTime)/mult))
		}

	case BossRecover:
		body.Vel.X = 0
		if b.phaseDue {
			b.enter(BossApproach, time.Duration(float64(b.cfg.ApproachTime)/mult))
		}
	}
}

func (b *Boss) attack(mult float64) {
	b.face(b.player.X - b.body.Pos.X)
	switch b.next {
	case BossLeap:
		b.body.Vel = vmath.V(parameter.BossLeapVX*mult*float64(b.facing), parameter.BossLeapVY)
		b.leaping = true
		b.airborne = false
		b.next = BossSwing
	default:
		b.strikeAt(b.body.H)
		b.next = BossLeap
	}
	b.enter(BossAttack, parameter.BossAttackTime)
}

func (b *Boss) strikeAt(reachY float64) {
	b.strike = vmath.RectFromCenter(b.body.Pos.X, b.body.Pos.Y, 2*parameter.BossStrikeReach, 2*reachY)
	b.striking = true
}

// TakeStrike returns the zone of a swing or landing shockwave made this frame, once
func (b *Boss) TakeStrike() (vmath.Rect, bool) {
	if !b.striking {
		return vmath.Rect{}, false
	}
	b.striking = false
	return b.strike, true
}

// Hit deals one point of damage from a blow landed at fromX
// Ignored while invulnerable; the boss is knocked away from the blow
func (b *Boss) Hit(fromX float64) StompResult {
	if !b.Alive() || b.won || b.invulnerable {
		return StompIgnored
	}
	b.health--
	away := 1.0
	if fromX > b.body.Pos.X {
		away = -1
	}
	b.body.Vel.X = parameter.BossHitKnockback * away
	if b.health <= 0 {
		b.defeat()
		return StompKilled
	}

	b.invulnerable = true
	b.invulnTimer.Cancel()
	var t *engine.Timer
	t = b.sched.After(parameter.BossHitInvulnerability, func() {
		if b.invulnTimer != t {
			return
		}
		b.invulnerable = false
	})
	b.invulnTimer = t
	return StompDamaged
}

// Stomp always lands a hit and resets the cycle to the approach
func (b *Boss) Stomp(playerX float64) StompResult {
	res := b.Hit(playerX)
	if res == StompDamaged {
		b.leaping = false
		b.enter(BossApproach, b.cfg.ApproachTime)
	}
	return res
}

// Strike is a mace or thunderbolt blow travelling in dir
func (b *Boss) Strike(dir int) bool {
	return b.Hit(b.body.Pos.X-float64(normDir(dir))) != StompIgnored
}

// HitByShell has no effect; shells bounce off the boss
func (b *Boss) HitByShell() bool { return false }

func (b *Boss) defeat() {
	b.phase = BossDefeated
	b.health = 0
	b.leaping = false
	b.invulnerable = false
	b.stopTimers()
	b.body.Vel = vmath.Vec2{}
	b.sched.After(parameter.BossRemoval, func() {
		b.removed = true
	})
}

// Win ends the race in the boss's favor; returns false once decided
func (b *Boss) Win() bool {
	if b.won || !b.Alive() {
		return false
	}
	b.won = true
	b.leaping = false
	b.stopTimers()
	b.body.Vel.X = 0
	return true
}

// Withdraw drops the boss once the baby is rescued; the race clock keeps its reading
func (b *Boss) Withdraw() {
	b.stopTimers()
	b.striking = false
	b.removed = true
}

func (b *Boss) tickRace() {
	if !b.Alive() || b.won {
		return
	}
	b.timeLeft--
	if b.timeLeft <= 0 {
		b.timeLeft = 0
		b.Win()
	}
}

func (b *Boss) stopTimers() {
	b.raceTimer.Cancel()
	b.phaseTimer.Cancel()
	b.invulnTimer.Cancel()
	b.raceTimer, b.phaseTimer, b.invulnTimer = nil, nil, nil
}
