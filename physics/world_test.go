package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

const frame = 0.016

type stubMover struct {
	rect  vmath.Rect
	delta vmath.Vec2
}

func (m *stubMover) Bounds() vmath.Rect { return m.rect }
func (m *stubMover) Delta() vmath.Vec2  { return m.delta }

func (m *stubMover) move(dx float64) {
	m.rect = m.rect.Translate(dx, 0)
	m.delta = vmath.V(dx, 0)
}

func settle(w *World, b *Body, frames int) {
	for i := 0; i < frames; i++ {
		w.Step(b, frame)
	}
}

func TestBodyLandsOnGround(t *testing.T) {
	w := NewWorld(1000, 600, []vmath.Rect{{X: 0, Y: 500, W: 1000, H: 100}})
	b := NewBody(PlayerProfile, 100, 300)

	settle(w, b, 120)

	assert.True(t, b.Grounded)
	assert.True(t, b.Blocked.Down)
	assert.InDelta(t, 500.0, b.Bottom(), 1e-9)
	assert.Equal(t, 0.0, b.Vel.Y)
}

func TestFallSpeedIsCapped(t *testing.T) {
	w := NewWorld(1000, 100000, nil)
	b := NewBody(PlayerProfile, 100, 0)

	settle(w, b, 300)
	assert.Equal(t, parameter.MaxFallSpeed, b.Vel.Y)
}

func TestWallBlocksHorizontal(t *testing.T) {
	w := NewWorld(1000, 600, []vmath.Rect{
		{X: 0, Y: 500, W: 1000, H: 100},
		{X: 300, Y: 300, W: 50, H: 200},
	})
	b := NewBody(GullProfile, 200, 486)
	settle(w, b, 5)

	for i := 0; i < 100; i++ {
		b.Vel.X = 200
		w.Step(b, frame)
		if b.Blocked.Right {
			break
		}
	}
	assert.True(t, b.Blocked.Right)
	assert.InDelta(t, 300.0, b.Bounds().Right(), 1e-9)
	assert.True(t, b.Grounded)
}

func TestWorldEdgesBlock(t *testing.T) {
	w := NewWorld(500, 600, []vmath.Rect{{X: 0, Y: 500, W: 500, H: 100}})
	b := NewBody(GullProfile, 20, 486)
	b.Vel.X = -300
	w.Step(b, frame)

	assert.True(t, b.Blocked.Left)
	assert.Equal(t, b.W/2, b.Pos.X)
}

func TestHeadBump(t *testing.T) {
	w := NewWorld(1000, 600, []vmath.Rect{{X: 0, Y: 200, W: 1000, H: 32}})
	b := NewBody(PlayerProfile, 100, 253)
	b.Vel.Y = -400

	w.Step(b, frame)
	assert.True(t, b.Blocked.Up)
	assert.InDelta(t, 232.0, b.Top(), 1e-9)
	assert.GreaterOrEqual(t, b.Vel.Y, 0.0)
}

func TestMoverIsOneWay(t *testing.T) {
	boat := &stubMover{rect: vmath.Rect{X: 50, Y: 300, W: 120, H: 28}}
	w := NewWorld(1000, 600, nil)
	w.AddMover(boat)

	// Jumping up through the boat does not stick
	b := NewBody(PlayerProfile, 100, 340)
	b.Vel.Y = -500
	w.Step(b, frame)
	assert.False(t, b.Grounded)
	assert.Nil(t, b.Riding)

	// Falling onto it lands and rides
	b.Teleport(100, 250)
	settle(w, b, 60)
	require.True(t, b.Grounded)
	assert.Equal(t, Mover(boat), b.Riding)
	assert.InDelta(t, 300.0, b.Bottom(), 1e-9)
}

func TestRiderIsCarried(t *testing.T) {
	boat := &stubMover{rect: vmath.Rect{X: 50, Y: 300, W: 120, H: 28}}
	w := NewWorld(1000, 600, nil)
	w.AddMover(boat)

	b := NewBody(PlayerProfile, 100, 250)
	settle(w, b, 60)
	require.NotNil(t, b.Riding)

	startX := b.Pos.X
	for i := 0; i < 10; i++ {
		boat.move(2)
		w.Step(b, frame)
	}
	assert.InDelta(t, startX+20, b.Pos.X, 1e-9)
	assert.True(t, b.Grounded)
}

func TestCollisionOffFallsThrough(t *testing.T) {
	w := NewWorld(1000, 600, []vmath.Rect{{X: 0, Y: 500, W: 1000, H: 100}})
	b := NewBody(PlayerProfile, 100, 470)
	b.CollisionOff = true

	settle(w, b, 60)
	assert.False(t, b.Grounded)
	assert.True(t, Below(b, 600))
}

func TestResizeKeepsBottom(t *testing.T) {
	b := NewBody(PlayerProfile, 100, 100)
	bottom := b.Bottom()
	b.Resize(parameter.PlayerWidth, parameter.PlayerHeight)
	assert.Equal(t, bottom, b.Bottom())
	assert.Equal(t, parameter.PlayerHeight, b.H)
}

func TestDecaySnapsToZero(t *testing.T) {
	b := &Body{Vel: vmath.V(200, 0)}
	for i := 0; i < 40; i++ {
		Decay(b, 0.85, 10)
	}
	assert.Equal(t, 0.0, b.Vel.X)

	b.Vel.X = 100
	Decay(b, 0.85, 10)
	assert.InDelta(t, 85.0, b.Vel.X, 1e-9)
}

func TestOnSurface(t *testing.T) {
	w := NewWorld(1000, 600, []vmath.Rect{{X: 0, Y: 500, W: 100, H: 100}})
	assert.True(t, w.OnSurface(vmath.Rect{X: 10, Y: 470, W: 20, H: 30}))
	assert.False(t, w.OnSurface(vmath.Rect{X: 200, Y: 470, W: 20, H: 30}))
}
