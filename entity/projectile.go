package entity

import (
	"time"

	"github.com/lixenwraith/xochi/vmath"
)

// Projectile is a straight-line shot: a flyer's bolt at the player or the player's thunderbolt
// It ignores gravity and terrain and expires after its lifetime or on its first hit
type Projectile struct {
	Pos  vmath.Vec2
	Vel  vmath.Vec2
	W, H float64

	// Hostile shots hurt the player; the rest hit enemies
	Hostile bool

	life  time.Duration
	spent bool
}

// NewProjectile launches a shot centered at pos
func NewProjectile(pos, vel vmath.Vec2, w, h float64, life time.Duration, hostile bool) *Projectile {
	return &Projectile{Pos: pos, Vel: vel, W: w, H: h, Hostile: hostile, life: life}
}

// Update moves the shot and ages it
func (p *Projectile) Update(dt time.Duration) {
	if p.Spent() {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt.Seconds()))
	p.life -= dt
}

func (p *Projectile) Bounds() vmath.Rect {
	return vmath.RectFromCenter(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Direction is the horizontal sign of travel
func (p *Projectile) Direction() int {
	if p.Vel.X < 0 {
		return -1
	}
	return 1
}

// Spend consumes the shot on a hit; returns false if it was already gone
func (p *Projectile) Spend() bool {
	if p.Spent() {
		return false
	}
	p.spent = true
	return true
}

// Spent reports a used or expired shot
func (p *Projectile) Spent() bool {
	return p.spent || p.life <= 0
}
