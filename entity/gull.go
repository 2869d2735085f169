package entity

import (
	"time"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/physics"
	"github.com/lixenwraith/xochi/vmath"
)

// Gull is the ground patroller: walks, turns at walls, dies on the first stomp
type Gull struct {
	body  *physics.Body
	sched *engine.Scheduler

	alive   bool
	fading  bool
	removed bool
	dir     int
}

// NewGull creates a gull centered at (x, y) walking in dir
func NewGull(x, y float64, dir int, sched *engine.Scheduler) *Gull {
	g := &Gull{
		body:  physics.NewBody(physics.GullProfile, x, y),
		sched: sched,
		alive: true,
		dir:   normDir(dir),
	}
	g.body.Vel.X = parameter.GullSpeed * float64(g.dir)
	return g
}

func (g *Gull) Kind() level.EnemyKind     { return level.KindGull }
func (g *Gull) Body() *physics.Body       { return g.body }
func (g *Gull) Bounds() vmath.Rect        { return g.body.Bounds() }
func (g *Gull) Alive() bool               { return g.alive }
func (g *Gull) Removed() bool             { return g.removed }
func (g *Gull) Direction() int            { return g.dir }
func (g *Gull) Fading() bool              { return g.fading }

func (g *Gull) Update(dt time.Duration) {
	if !g.alive {
		return
	}
	switch {
	case g.body.Blocked.Left:
		g.dir = 1
	case g.body.Blocked.Right:
		g.dir = -1
	}
	g.body.Vel.X = parameter.GullSpeed * float64(g.dir)
}

// Stomp kills the gull: flattened, frozen, faded then removed
func (g *Gull) Stomp(float64) StompResult {
	if !g.alive {
		return StompIgnored
	}
	g.alive = false
	g.body.Vel.X, g.body.Vel.Y = 0, 0
	g.body.GravityOff = true
	g.body.CollisionOff = true
	g.body.Resize(parameter.GullWidth, parameter.GullHeight/2)

	g.sched.After(parameter.GullFadeDelay, func() {
		if g.removed {
			return
		}
		g.fading = true
		g.sched.After(parameter.GullFadeDuration, func() {
			g.removed = true
		})
	})
	return StompKilled
}

// HitByShell knocks the gull off the level
func (g *Gull) HitByShell() bool {
	if !g.alive {
		return false
	}
	g.alive = false
	knockout(g.body, g.sched, vmath.V(parameter.HeronKnockbackX*float64(-g.dir), parameter.HeronKnockbackY),
		parameter.HeronShellHitRemoval, &g.removed)
	return true
}

// Strike knocks the gull out along dir
func (g *Gull) Strike(dir int) bool {
	if !g.alive {
		return false
	}
	g.alive = false
	knockout(g.body, g.sched, strikeVelocity(dir), parameter.MaceKnockoutRemoval, &g.removed)
	return true
}
