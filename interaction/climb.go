package interaction

import (
	"time"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// ClimbPhase is the scripted step of a ledge climb
type ClimbPhase uint8

const (
	ClimbPullUp ClimbPhase = iota
	ClimbVault
	ClimbDone
)

// Climb drives the player from a grabbed edge to standing on top of it
// Positions are kept relative to the edge so a moving trajinera carries the climb
type Climb struct {
	player  *entity.Player
	ledge   Ledge
	phase   ClimbPhase
	elapsed time.Duration
	from    vmath.Vec2
}

// StartClimb suspends the player's physics and snaps it under the edge
func StartClimb(p *entity.Player, l Ledge) *Climb {
	p.BeginClimb()
	c := &Climb{
		player: p,
		ledge:  l,
		from:   snapOffset(l.Side),
	}
	c.place(c.from)
	return c
}

// Into the wall side of the edge and just below its top
func snapOffset(s Side) vmath.Vec2 {
	return vmath.V(s.Sign()*parameter.GrabSnapInsetX, parameter.GrabSnapDropY)
}

func pullUpOffset(s Side) vmath.Vec2 {
	return vmath.V(-s.Sign()*parameter.ClimbPullUpX, -parameter.ClimbPullUpY)
}

func vaultOffset(s Side) vmath.Vec2 {
	return vmath.V(-s.Sign()*parameter.ClimbVaultX, -parameter.ClimbVaultY)
}

func (c *Climb) Phase() ClimbPhase { return c.phase }
func (c *Climb) Ledge() Ledge      { return c.ledge }
func (c *Climb) Done() bool        { return c.phase == ClimbDone }

// Update advances the climb; returns true on the frame it finishes
func (c *Climb) Update(dt time.Duration) bool {
	if c.phase == ClimbDone {
		return false
	}
	if c.player.Dead() {
		c.phase = ClimbDone
		return false
	}
	c.elapsed += dt

	var to vmath.Vec2
	var dur time.Duration
	switch c.phase {
	case ClimbPullUp:
		to, dur = pullUpOffset(c.ledge.Side), parameter.ClimbPullUpDuration
	default:
		to, dur = vaultOffset(c.ledge.Side), parameter.ClimbVaultDuration
	}

	if c.elapsed < dur {
		t := float64(c.elapsed) / float64(dur)
		c.place(c.from.Lerp(to, easeOut(t)))
		return false
	}

	c.place(to)
	c.from = to
	c.elapsed = 0
	if c.phase == ClimbPullUp {
		c.phase = ClimbVault
		return false
	}
	c.phase = ClimbDone
	c.player.EndClimb()
	return true
}

func (c *Climb) place(offset vmath.Vec2) {
	e := c.ledge.Edge().Add(offset)
	c.player.Body().Teleport(e.X, e.Y)
}

func easeOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
