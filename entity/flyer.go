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

// Flyer is the flying heron: a sine path across the level, killed by one stomp
type Flyer struct {
	body  *physics.Body
	sched *engine.Scheduler

	baseY      float64
	amplitude  float64
	speed      float64
	levelWidth float64
	elapsed    time.Duration

	dir     int
	alive   bool
	removed bool

	// reload counts down to the next shot; reloads alternate short and long
	reload     time.Duration
	longReload bool
}

// NewFlyer creates a flyer whose path centers on y; zero amplitude or speed use defaults
func NewFlyer(x, y, amplitude, speed float64, dir int, levelWidth float64, sched *engine.Scheduler) *Flyer {
	if amplitude <= 0 {
		amplitude = parameter.FlyingAmplitudeDefault
	}
	if speed <= 0 {
		speed = parameter.FlyingSpeedDefault
	}
	f := &Flyer{
		body:       physics.NewBody(physics.FlyerProfile, x, y),
		sched:      sched,
		baseY:      y,
		amplitude:  amplitude,
		speed:      speed,
		levelWidth: levelWidth,
		dir:        normDir(dir),
		alive:      true,
		reload:     parameter.FlyerFirstShot,
	}
	f.body.Vel.X = speed * float64(f.dir)
	return f
}

func (f *Flyer) Kind() level.EnemyKind { return level.KindFlying }
func (f *Flyer) Body() *physics.Body   { return f.body }
func (f *Flyer) Bounds() vmath.Rect    { return f.body.Bounds() }
func (f *Flyer) Alive() bool           { return f.alive }
func (f *Flyer) Removed() bool         { return f.removed }
func (f *Flyer) Direction() int        { return f.dir }

func (f *Flyer) Update(dt time.Duration) {
	if !f.alive {
		return
	}
	f.elapsed += dt
	f.reload = max(f.reload-dt, 0)
	t := f.elapsed.Seconds()
	f.body.Pos.Y = f.baseY + math.Sin(t*parameter.FlyingFrequency)*f.amplitude
	f.body.Vel.Y = 0

	x := f.body.Pos.X
	switch {
	case x < parameter.FlyingTurnMargin && f.dir < 0:
		f.dir = 1
	case x > f.levelWidth-parameter.FlyingTurnMargin && f.dir > 0:
		f.dir = -1
	}
	f.body.Vel.X = f.speed * float64(f.dir)
}

// Shoot fires at target once reloaded; a reload that finds the target out of range is spent without a shot
func (f *Flyer) Shoot(target vmath.Vec2) *Projectile {
	if !f.alive || f.reload > 0 {
		return nil
	}
	f.reload = parameter.FlyerReloadMin
	if f.longReload {
		f.reload = parameter.FlyerReloadMax
	}
	f.longReload = !f.longReload

	d := target.Sub(f.body.Pos)
	dist := math.Hypot(d.X, d.Y)
	if dist >= parameter.FlyerShotRange || dist == 0 {
		return nil
	}
	muzzle := f.body.Pos.Add(vmath.V(0, parameter.FlyerShotDropY))
	return NewProjectile(muzzle, d.Scale(parameter.FlyerShotSpeed/dist),
		parameter.FlyerShotSize, parameter.FlyerShotSize, parameter.FlyerShotLifetime, true)
}

// Stomp kills the flyer outright
func (f *Flyer) Stomp(float64) StompResult {
	if !f.die(vmath.V(0, 200)) {
		return StompIgnored
	}
	return StompKilled
}

// HitByShell kills the flyer with a knockback
func (f *Flyer) HitByShell() bool {
	return f.die(vmath.V(parameter.HeronKnockbackX*float64(-f.dir), parameter.HeronKnockbackY))
}

// Strike knocks the flyer out of the air along dir
func (f *Flyer) Strike(dir int) bool {
	return f.die(strikeVelocity(dir))
}

func (f *Flyer) die(vel vmath.Vec2) bool {
	if !f.alive {
		return false
	}
	f.alive = false
	f.body.Vel = vel
	f.body.GravityOff = false
	f.body.CollisionOff = true
	f.sched.After(parameter.FlyingDeathFade, func() {
		f.removed = true
	})
	return true
}
