package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

func TestProjectileFliesAndExpires(t *testing.T) {
	p := NewProjectile(vmath.V(100, 100), vmath.V(-200, 0), 10, 10, time.Second, true)
	assert.Equal(t, -1, p.Direction())

	p.Update(500 * time.Millisecond)
	assert.Equal(t, vmath.V(0, 100), p.Pos)
	assert.False(t, p.Spent())

	p.Update(500 * time.Millisecond)
	assert.True(t, p.Spent())
	p.Update(500 * time.Millisecond)
	assert.Equal(t, vmath.V(-100, 100), p.Pos, "expired shots stay put")
}

func TestProjectileSpendOnce(t *testing.T) {
	p := NewProjectile(vmath.V(0, 0), vmath.V(100, 0), 10, 10, time.Second, false)
	assert.Equal(t, 1, p.Direction())
	assert.True(t, p.Spend())
	assert.False(t, p.Spend())
	assert.True(t, p.Spent())
}

func TestFlyerShootsWhenReloadedAndInRange(t *testing.T) {
	sched := engine.NewScheduler(nil)
	f := NewFlyer(500, 300, 40, 60, -1, 2000, sched)
	assert.Nil(t, f.Shoot(vmath.V(300, 300)), "first shot waits for the initial reload")
	f.Update(parameter.FlyerFirstShot)
	target := f.Body().Pos.Add(vmath.V(-200, 0))

	shot := f.Shoot(target)
	require.NotNil(t, shot)
	assert.True(t, shot.Hostile)
	assert.InDelta(t, -parameter.FlyerShotSpeed, shot.Vel.X, 1e-9)
	assert.InDelta(t, 0, shot.Vel.Y, 1e-9)
	assert.Equal(t, f.Body().Pos.Y+parameter.FlyerShotDropY, shot.Pos.Y)
	assert.Nil(t, f.Shoot(target))

	// Reloads alternate short then long
	f.Update(parameter.FlyerReloadMin)
	require.NotNil(t, f.Shoot(target))
	f.Update(parameter.FlyerReloadMin)
	assert.Nil(t, f.Shoot(target))
	f.Update(parameter.FlyerReloadMax - parameter.FlyerReloadMin)
	assert.NotNil(t, f.Shoot(target))
}

func TestFlyerHoldsFireOutOfRange(t *testing.T) {
	sched := engine.NewScheduler(nil)
	f := NewFlyer(500, 300, 40, 60, -1, 2000, sched)
	f.Update(parameter.FlyerFirstShot)

	assert.Nil(t, f.Shoot(vmath.V(500+parameter.FlyerShotRange+50, 300)))
	assert.Nil(t, f.Shoot(vmath.V(520, 300)), "the reload was spent")

	require.True(t, f.Strike(1))
	f.Update(parameter.FlyerReloadMax)
	assert.Nil(t, f.Shoot(vmath.V(520, 300)), "dead flyers hold fire")
}
