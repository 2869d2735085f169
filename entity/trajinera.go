package entity

import (
	"time"

	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/vmath"
)

// Trajinera is a boat oscillating horizontally between two center bounds
type Trajinera struct {
	spec  level.TrajineraSpec
	pos   vmath.Vec2
	dir   int
	delta vmath.Vec2
}

// NewTrajinera creates a boat from its level placement
func NewTrajinera(spec level.TrajineraSpec) *Trajinera {
	if spec.StartX > spec.EndX {
		spec.StartX, spec.EndX = spec.EndX, spec.StartX
	}
	return &Trajinera{
		spec: spec,
		pos:  vmath.V(vmath.Clamp(spec.X, spec.StartX, spec.EndX), spec.Y),
		dir:  normDir(spec.Dir),
	}
}

// Update moves the boat and reflects direction at either bound
func (t *Trajinera) Update(dt time.Duration) {
	old := t.pos
	x := t.pos.X + t.spec.Speed*float64(t.dir)*dt.Seconds()
	lo, hi := t.spec.StartX, t.spec.EndX
	for x < lo || x > hi {
		if hi <= lo {
			x = lo
			break
		}
		if x > hi {
			x = 2*hi - x
			t.dir = -1
		} else {
			x = 2*lo - x
			t.dir = 1
		}
	}
	t.pos.X = x
	t.delta = t.pos.Sub(old)
}

func (t *Trajinera) Pos() vmath.Vec2   { return t.pos }
func (t *Trajinera) Direction() int    { return t.dir }
func (t *Trajinera) Name() string      { return t.spec.Name }
func (t *Trajinera) Delta() vmath.Vec2 { return t.delta }

// Bounds returns the hull box
func (t *Trajinera) Bounds() vmath.Rect {
	return vmath.RectFromCenter(t.pos.X, t.pos.Y, t.spec.W, t.spec.H)
}
