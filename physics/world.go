package physics

import (
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// Mover is a one-way moving surface that carries what stands on it
type Mover interface {
	Bounds() vmath.Rect
	// Delta is the displacement applied during the current frame
	Delta() vmath.Vec2
}

// World holds the level's static solids and moving surfaces
type World struct {
	Width   float64
	Height  float64
	Gravity float64
	Solids  []vmath.Rect
	Movers  []Mover
}

// NewWorld creates a world with default gravity
func NewWorld(width, height float64, solids []vmath.Rect) *World {
	return &World{
		Width:   width,
		Height:  height,
		Gravity: parameter.Gravity,
		Solids:  solids,
	}
}

// AddMover registers a moving surface
func (w *World) AddMover(m Mover) {
	w.Movers = append(w.Movers, m)
}

// Step integrates one body over dt seconds and resolves contacts
// Movers must already be advanced for this frame
func (w *World) Step(b *Body, dt float64) {
	if dt <= 0 {
		return
	}
	ApplyGravity(b, w.Gravity, dt)

	// Carry riders with the surface they stood on last frame
	if b.Riding != nil && !b.CollisionOff {
		b.Pos = b.Pos.Add(vmath.V(b.Riding.Delta().X, 0))
	}

	b.Grounded = false
	b.Blocked = Contact{}
	b.Riding = nil

	b.Pos.X += b.Vel.X * dt
	if !b.CollisionOff {
		resolveX(b, w.Solids)
		left, right := ClampBoundsX(b, 0, w.Width)
		b.Blocked.Left = b.Blocked.Left || left
		b.Blocked.Right = b.Blocked.Right || right
	}

	prevBottom := b.Bottom()
	b.Pos.Y += b.Vel.Y * dt
	if b.CollisionOff {
		return
	}
	resolveY(b, w.Solids, prevBottom)
	if b.Grounded {
		return
	}
	for _, m := range w.Movers {
		if landOn(b, m, prevBottom) {
			return
		}
	}
}

// OnSurface reports whether rect r rests on a solid or mover top within the ground probe
func (w *World) OnSurface(r vmath.Rect) bool {
	probe := vmath.Rect{X: r.X, Y: r.Bottom(), W: r.W, H: parameter.GroundProbe}
	for _, s := range w.Solids {
		if vmath.Overlaps(probe, s) {
			return true
		}
	}
	for _, m := range w.Movers {
		if vmath.Overlaps(probe, m.Bounds()) {
			return true
		}
	}
	return false
}

// Below reports whether the body's center has sunk past deathY
func Below(b *Body, deathY float64) bool {
	return b.Pos.Y > deathY
}
