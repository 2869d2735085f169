package interaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

var ledgePlatform = vmath.Rect{X: 200, Y: 300, W: 100, H: 20}

func playerRect(cx, cy float64) vmath.Rect {
	return vmath.RectFromCenter(cx, cy, parameter.PlayerWidth, parameter.PlayerSmallHeight)
}

func TestFindLedge(t *testing.T) {
	tests := []struct {
		name   string
		player vmath.Rect
		in     entity.Input
		want   Ledge
		ok     bool
	}{
		{"left edge pressing right", playerRect(180, 320), entity.Input{Right: true}, Ledge{X: 200, Y: 300, Side: SideLeft}, true},
		{"right edge pressing left", playerRect(320, 320), entity.Input{Left: true}, Ledge{X: 300, Y: 300, Side: SideRight}, true},
		{"pressing away", playerRect(180, 320), entity.Input{Left: true}, Ledge{}, false},
		{"no direction", playerRect(180, 320), entity.Input{}, Ledge{}, false},
		{"both directions grab rightward", playerRect(180, 320), entity.Input{Left: true, Right: true}, Ledge{X: 200, Y: 300, Side: SideLeft}, true},
		{"both directions fall back to leftward", playerRect(320, 320), entity.Input{Left: true, Right: true}, Ledge{X: 300, Y: 300, Side: SideRight}, true},
		{"too low", playerRect(180, 380), entity.Input{Right: true}, Ledge{}, false},
		{"too high", playerRect(180, 250), entity.Input{Right: true}, Ledge{}, false},
		{"too far", playerRect(120, 320), entity.Input{Right: true}, Ledge{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindLedge(tt.player, tt.in, nil, []vmath.Rect{ledgePlatform})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindLedgePrefersTrajineras(t *testing.T) {
	boat := entity.NewTrajinera(level.TrajineraSpec{X: 250, Y: 319, W: 100, H: 28, Speed: 60, Dir: 1, StartX: 200, EndX: 400})

	got, ok := FindLedge(playerRect(180, 320), entity.Input{Right: true}, []*entity.Trajinera{boat}, []vmath.Rect{ledgePlatform})
	require.True(t, ok)
	assert.Same(t, boat, got.Boat)
	assert.Equal(t, SideLeft, got.Side)
	assert.Equal(t, vmath.V(200, 300), got.Edge(), "grab line sits above the hull")
}

func TestClimbStaticLedge(t *testing.T) {
	sched := engine.NewScheduler(nil)
	p := entity.NewPlayer(180, 320, sched)
	p.Body().Vel = vmath.V(0, 200)

	c := StartClimb(p, Ledge{X: 200, Y: 300, Side: SideLeft})
	assert.True(t, p.Climbing())
	assert.True(t, p.Body().GravityOff)
	assert.Equal(t, vmath.V(192, 310), p.Body().Pos)
	assert.Equal(t, parameter.GrabCooldown, p.GrabCooldown())

	assert.False(t, c.Update(40*time.Millisecond))
	mid := p.Body().Pos
	assert.Greater(t, mid.X, 192.0)
	assert.Less(t, mid.X, 210.0)

	assert.False(t, c.Update(40*time.Millisecond))
	assert.Equal(t, ClimbVault, c.Phase())
	assert.Equal(t, vmath.V(210, 290), p.Body().Pos)

	assert.True(t, c.Update(parameter.ClimbVaultDuration))
	assert.True(t, c.Done())
	assert.Equal(t, vmath.V(230, 265), p.Body().Pos)
	assert.False(t, p.Climbing())
	assert.False(t, p.Body().GravityOff)
	assert.Equal(t, parameter.ClimbLandingVelocity, p.Body().Vel.Y)

	assert.False(t, c.Update(time.Millisecond), "finished climb stays finished")
}

func TestClimbRightEdgeMirrors(t *testing.T) {
	sched := engine.NewScheduler(nil)
	p := entity.NewPlayer(320, 320, sched)

	c := StartClimb(p, Ledge{X: 300, Y: 300, Side: SideRight})
	assert.Equal(t, vmath.V(308, 310), p.Body().Pos)
	c.Update(parameter.ClimbPullUpDuration)
	c.Update(parameter.ClimbVaultDuration)
	assert.Equal(t, vmath.V(270, 265), p.Body().Pos)
}

func TestClimbTracksMovingBoat(t *testing.T) {
	sched := engine.NewScheduler(nil)
	boat := entity.NewTrajinera(level.TrajineraSpec{X: 300, Y: 400, W: 120, H: 28, Speed: 100, Dir: 1, StartX: 0, EndX: 1000})
	p := entity.NewPlayer(220, 400, sched)

	c := StartClimb(p, Ledge{Side: SideLeft, Boat: boat})
	assert.Equal(t, vmath.V(240-8, 381+10), p.Body().Pos)

	for !c.Done() {
		boat.Update(20 * time.Millisecond)
		c.Update(20 * time.Millisecond)
	}
	edge := boatEdge(boat, SideLeft)
	assert.Greater(t, edge.X, 240.0)
	assert.Equal(t, vmath.V(edge.X+30, edge.Y-35), p.Body().Pos)
}

func TestClimbAbortsOnDeath(t *testing.T) {
	sched := engine.NewScheduler(nil)
	p := entity.NewPlayer(180, 320, sched)
	c := StartClimb(p, Ledge{X: 200, Y: 300, Side: SideLeft})

	p.Die()
	assert.False(t, c.Update(parameter.ClimbPullUpDuration))
	assert.True(t, c.Done())
}
