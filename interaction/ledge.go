// Package interaction turns overlaps between the player, enemies and pickups into state changes.
package interaction

import (
	"math"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// Side names which edge of a surface is held
type Side int8

const (
	// SideLeft is the surface's left edge, grabbed while moving right
	SideLeft Side = iota
	SideRight
)

// Sign is -1 for the left edge, 1 for the right
func (s Side) Sign() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

// Ledge is a grabbable edge point; Boat is set when the edge belongs to a trajinera
type Ledge struct {
	X, Y float64
	Side Side
	Boat *entity.Trajinera
}

// Edge returns the current edge point, following the boat when attached to one
func (l Ledge) Edge() vmath.Vec2 {
	if l.Boat == nil {
		return vmath.V(l.X, l.Y)
	}
	return boatEdge(l.Boat, l.Side)
}

func boatEdge(t *entity.Trajinera, side Side) vmath.Vec2 {
	b := t.Bounds()
	x := b.Left()
	if side == SideRight {
		x = b.Right()
	}
	return vmath.V(x, b.Top()-parameter.GrabTrajineraLift)
}

// FindLedge looks for an edge the falling player can grab
// The player must press toward the edge; with both directions held the rightward grab is tried first
// Trajineras are tested before static platforms
func FindLedge(player vmath.Rect, in entity.Input, boats []*entity.Trajinera, platforms []vmath.Rect) (Ledge, bool) {
	if !in.Left && !in.Right {
		return Ledge{}, false
	}
	for _, t := range boats {
		left, right := boatEdge(t, SideLeft), boatEdge(t, SideRight)
		if l, ok := match(player, in, left.X, right.X, left.Y); ok {
			l.Boat = t
			return l, true
		}
	}
	for _, p := range platforms {
		if l, ok := match(player, in, p.Left(), p.Right(), p.Top()); ok {
			return l, true
		}
	}
	return Ledge{}, false
}

func match(player vmath.Rect, in entity.Input, left, right, top float64) (Ledge, bool) {
	r := parameter.GrabRange
	if player.Top() <= top-r || player.Top() >= top+r {
		return Ledge{}, false
	}
	if in.Right && math.Abs(player.Right()-left) < r {
		return Ledge{X: left, Y: top, Side: SideLeft}, true
	}
	if in.Left && math.Abs(player.Left()-right) < r {
		return Ledge{X: right, Y: top, Side: SideRight}, true
	}
	return Ledge{}, false
}
