// Package physics is the arcade body integrator: gravity, axis-separated AABB resolution, one-way moving surfaces.
package physics

import "github.com/lixenwraith/xochi/vmath"

// Contact flags which sides touched a solid during the last step
type Contact struct {
	Left, Right, Up, Down bool
}

// Any reports any contact
func (c Contact) Any() bool {
	return c.Left || c.Right || c.Up || c.Down
}

// Body is a center-positioned axis-aligned box owned by one entity
type Body struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
	W   float64
	H   float64

	// GravityOff suspends gravity (ledge climb, flyers, death pose)
	GravityOff bool

	// CollisionOff passes through every surface (dying entities, flyers)
	CollisionOff bool

	// Populated by World.Step
	Grounded bool
	Blocked  Contact
	Riding   Mover
}

// NewBody creates a body from a profile at center (x, y)
func NewBody(p Profile, x, y float64) *Body {
	return &Body{
		Pos:          vmath.V(x, y),
		W:            p.W,
		H:            p.H,
		GravityOff:   !p.Gravity,
		CollisionOff: !p.Collides,
	}
}

// Bounds returns the body's box
func (b *Body) Bounds() vmath.Rect {
	return vmath.RectFromCenter(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Bottom returns the lower edge
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.H/2
}

// Top returns the upper edge
func (b *Body) Top() float64 {
	return b.Pos.Y - b.H/2
}

// Resize changes the box keeping the bottom edge in place
func (b *Body) Resize(w, h float64) {
	bottom := b.Bottom()
	b.W, b.H = w, h
	b.Pos.Y = bottom - h/2
}

// Teleport moves the body and clears motion and contact state
func (b *Body) Teleport(x, y float64) {
	b.Pos = vmath.V(x, y)
	b.Vel = vmath.Vec2{}
	b.Grounded = false
	b.Blocked = Contact{}
	b.Riding = nil
}
