package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/vmath"
)

const frame = 16 * time.Millisecond

func groundLevel() *level.Descriptor {
	return &level.Descriptor{
		Number:    2,
		Name:      "test",
		Width:     1000,
		Height:    600,
		Spawn:     vmath.V(100, 481),
		Baby:      vmath.V(900, 481),
		Platforms: []vmath.Rect{{X: 0, Y: 500, W: 1000, H: 100}},
	}
}

func newSession(d *level.Descriptor) (*Session, *progress.State, *event.EventQueue) {
	st := progress.New(progress.Medium)
	q := event.NewEventQueue()
	return New(Config{Level: d, State: st, Events: q}), st, q
}

func run(s *Session, in entity.Input, frames int) {
	for range frames {
		s.Update(in, frame)
	}
}

func count(q *event.EventQueue, et event.EventType) int {
	n := 0
	for _, ev := range q.Consume() {
		if ev.Type == et {
			n++
		}
	}
	return n
}

func TestNewSpawnsLevel(t *testing.T) {
	d, ok := level.Lookup(1)
	require.True(t, ok)
	s, _, q := newSession(d)

	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID()))
	assert.Equal(t, d.Spawn, s.Player().Body().Pos)
	assert.Len(t, s.Enemies(), len(d.Enemies))
	assert.Len(t, s.Trajineras(), len(d.Trajineras))
	assert.Equal(t, vmath.Rect{X: 0, Y: 0, W: parameter.ViewportWidth, H: parameter.ViewportHeight}, s.Camera().View())
	assert.Equal(t, HazardNone, s.Hazard().Kind)
	assert.Equal(t, 1, count(q, event.EventLevelStart))
}

func TestFallingIntoVoidKillsOnce(t *testing.T) {
	d := groundLevel()
	d.Platforms = nil
	s, _, q := newSession(d)
	deaths := 0
	s.OnDeath = func() { deaths++ }

	run(s, entity.Input{}, 250)
	assert.True(t, s.Dead())
	assert.True(t, s.Player().Dead())
	assert.Equal(t, 1, deaths)
	assert.Equal(t, 1, count(q, event.EventDeath))
}

func TestStandingPlayerSurvives(t *testing.T) {
	s, _, _ := newSession(groundLevel())
	run(s, entity.Input{}, 200)
	assert.False(t, s.Dead())
	assert.True(t, s.Player().Body().Grounded)
	assert.Equal(t, 500.0, s.Player().Body().Bottom())
}

func TestFloodCatchesIdlePlayer(t *testing.T) {
	d := groundLevel()
	d.Width = 3000
	d.Platforms = []vmath.Rect{{X: 0, Y: 500, W: 3000, H: 100}}
	d.IsEscape = true
	d.EscapeSpeed = 120
	s, _, _ := newSession(d)
	require.Equal(t, HazardFlood, s.Hazard().Kind)

	run(s, entity.Input{}, 80)
	assert.False(t, s.Dead())
	run(s, entity.Input{}, 20)
	assert.True(t, s.Dead())
}

func TestRunningOutpacesFlood(t *testing.T) {
	d := groundLevel()
	d.Width = 3000
	d.Baby = vmath.V(2990, 100)
	d.Platforms = []vmath.Rect{{X: 0, Y: 500, W: 3000, H: 100}}
	d.IsEscape = true
	d.EscapeSpeed = 150
	s, _, _ := newSession(d)

	run(s, entity.Input{Right: true, Run: true}, 300)
	assert.False(t, s.Dead())
	assert.Greater(t, s.Camera().X, 0.0)
}

func TestRisingWaterCatchesIdlePlayer(t *testing.T) {
	d := groundLevel()
	d.Width = 600
	d.Spawn = vmath.V(300, 481)
	d.Platforms = []vmath.Rect{{X: 0, Y: 500, W: 600, H: 100}}
	d.IsUpscroller = true
	s, _, _ := newSession(d)
	require.Equal(t, HazardRisingWater, s.Hazard().Kind)

	run(s, entity.Input{}, 300)
	assert.False(t, s.Dead())
	run(s, entity.Input{}, 60)
	assert.True(t, s.Dead())
}

func TestRescueCompletesAfterDelay(t *testing.T) {
	d := groundLevel()
	d.Baby = vmath.V(130, 481)
	s, st, q := newSession(d)
	done := 0
	s.OnComplete = func() { done++ }

	s.Update(entity.Input{}, frame)
	require.True(t, s.Resolver().Rescued())
	assert.True(t, st.RescuedBabies.Has("baby-2"))

	run(s, entity.Input{}, 120)
	assert.Zero(t, done)
	run(s, entity.Input{}, 20)
	assert.Equal(t, 1, done)
	run(s, entity.Input{}, 200)
	assert.Equal(t, 1, done)

	evs := q.Consume()
	var types []event.EventType
	for _, ev := range evs {
		types = append(types, ev.Type)
	}
	assert.Contains(t, types, event.EventRescue)
	assert.Contains(t, types, event.EventLevelComplete)
}

func TestLedgeGrabClimbsOntoPlatform(t *testing.T) {
	d := groundLevel()
	d.Spawn = vmath.V(380, 320)
	d.Platforms = append(d.Platforms, vmath.Rect{X: 400, Y: 300, W: 200, H: 20})
	s, _, q := newSession(d)

	sawClimb := false
	for i := 0; i < 120; i++ {
		s.Update(entity.Input{Right: true}, frame)
		if s.Climbing() {
			sawClimb = true
		} else if sawClimb {
			break
		}
	}
	require.True(t, sawClimb)
	run(s, entity.Input{}, 20)

	b := s.Player().Body()
	assert.True(t, b.Grounded)
	assert.Equal(t, 300.0, b.Bottom())
	assert.Greater(t, b.Pos.X, 400.0)
	assert.Equal(t, 1, count(q, event.EventLedgeGrab))
}

func TestSuperJumpConsumesStock(t *testing.T) {
	s, st, q := newSession(groundLevel())
	s.Update(entity.Input{}, frame)
	stock := st.SuperJumps

	s.Update(entity.Input{Attack: true}, frame)
	assert.Equal(t, stock-1, st.SuperJumps)
	assert.Less(t, s.Player().Body().Vel.Y, 0.0)
	assert.Equal(t, 1, count(q, event.EventSuperJump))
}

func TestFallenEnemiesArePruned(t *testing.T) {
	d := groundLevel()
	d.Enemies = []level.EnemySpawn{
		{Kind: level.KindGull, X: 500, Y: 486},
		{Kind: level.KindGull, X: 700, Y: 100},
	}
	d.Platforms = []vmath.Rect{{X: 0, Y: 500, W: 600, H: 100}}
	s, _, _ := newSession(d)

	run(s, entity.Input{}, 10)
	require.Len(t, s.Enemies(), 2)
	run(s, entity.Input{}, 250)
	assert.Len(t, s.Enemies(), 1)
}

func TestPauseFreezesFrame(t *testing.T) {
	d := groundLevel()
	d.Platforms = nil
	s, _, _ := newSession(d)
	s.Pause()

	run(s, entity.Input{}, 10)
	assert.Equal(t, d.Spawn, s.Player().Body().Pos)
	assert.Zero(t, s.Elapsed())

	s.Resume()
	run(s, entity.Input{}, 1)
	assert.Greater(t, s.Player().Body().Pos.Y, d.Spawn.Y)
}

func TestCloseDropsTimers(t *testing.T) {
	d := groundLevel()
	d.Baby = vmath.V(130, 481)
	s, _, _ := newSession(d)
	completed := false
	s.OnComplete = func() { completed = true }

	s.Update(entity.Input{}, frame)
	require.Positive(t, s.Scheduler().Pending())

	s.Close()
	assert.Zero(t, s.Scheduler().Pending())
	run(s, entity.Input{}, 200)
	assert.False(t, completed)
}

func TestCameraFollowDeadZone(t *testing.T) {
	c := NewCamera(800, 600)
	c.Follow(vmath.V(400, 300), 2000, 600)
	assert.Equal(t, 0.0, c.X)

	c.Follow(vmath.V(600, 300), 2000, 600)
	assert.Equal(t, 100.0, c.X)

	c.Follow(vmath.V(1990, 300), 2000, 600)
	assert.Equal(t, 1200.0, c.X)

	c.Follow(vmath.V(10, 300), 2000, 600)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.0, c.Y)
}

func TestCameraVerticalOnUpscroller(t *testing.T) {
	c := newLevelCamera(&level.Descriptor{IsUpscroller: true}, 800, 600)
	require.Equal(t, parameter.CameraUpscrollerLead, c.LeadY)

	// Spawn near the floor clamps to the bottom edge
	c.CenterOn(vmath.V(300, 2400), 600, 2500)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 1900.0, c.Y)

	// Mid-level the player sits LeadY below center
	mid := c
	mid.CenterOn(vmath.V(300, 1500), 600, 2500)
	assert.Equal(t, 1500.0-300-parameter.CameraUpscrollerLead, mid.Y)

	// Climbing scrolls up once the player enters the widened top margin
	c.Follow(vmath.V(300, 1800), 600, 2500)
	assert.Equal(t, 1800.0-(parameter.CameraDeadZoneMarginY+parameter.CameraUpscrollerLead), c.Y)
}

func TestCameraNoLeadOnFlatLevel(t *testing.T) {
	c := newLevelCamera(&level.Descriptor{}, 800, 600)
	assert.Zero(t, c.LeadY)
	c.CenterOn(vmath.V(300, 1500), 600, 2500)
	assert.Equal(t, 1200.0, c.Y)
}

func bossLevel() *level.Descriptor {
	d := groundLevel()
	d.Number = 5
	d.IsBossLevel = true
	return d
}

func TestBossLevelSpawnsBoss(t *testing.T) {
	s, _, _ := newSession(bossLevel())
	b := s.Boss()
	require.NotNil(t, b)
	assert.Equal(t, 100+parameter.BossSpawnOffsetX, b.Body().Pos.X)
	assert.Equal(t, 500.0, b.Body().Bottom())
	assert.Equal(t, progress.Medium.Preset().BossHealth, b.Health())
	assert.Same(t, b, s.Resolver().Boss())
	assert.Empty(t, s.Enemies(), "the boss is tracked apart from the enemy list")

	st := progress.New(progress.Medium)
	st.RescuedBabies.Add("baby-5")
	again := New(Config{Level: bossLevel(), State: st})
	assert.Nil(t, again.Boss(), "no rematch once the baby is home")
}

func TestBossReachingBabyKillsPlayer(t *testing.T) {
	s, _, q := newSession(bossLevel())
	deaths := 0
	s.OnDeath = func() { deaths++ }

	for i := 0; i < 900 && !s.Dead(); i++ {
		s.Update(entity.Input{}, frame)
	}
	require.True(t, s.Dead())
	assert.True(t, s.Boss().Won())
	assert.Equal(t, 1, deaths)

	types := map[event.EventType]int{}
	for _, ev := range q.Consume() {
		types[ev.Type]++
	}
	assert.Equal(t, 1, types[event.EventBossWins])
	assert.Equal(t, 1, types[event.EventDeath])
}

func TestMaceSwingLaunchesBolt(t *testing.T) {
	s, st, q := newSession(groundLevel())
	s.Update(entity.Input{}, frame)
	stock := st.MaceAttacks
	require.Positive(t, stock)

	s.Update(entity.Input{Strike: true}, frame)
	require.Len(t, s.Projectiles(), 1)
	assert.False(t, s.Projectiles()[0].Hostile)
	assert.Equal(t, stock-1, st.MaceAttacks)

	types := map[event.EventType]int{}
	for _, ev := range q.Consume() {
		types[ev.Type]++
	}
	assert.Equal(t, 1, types[event.EventMaceSwing])
	assert.Equal(t, 1, types[event.EventThunder])

	run(s, entity.Input{}, 100)
	assert.Empty(t, s.Projectiles(), "bolts expire")
}

func TestFlyerFiresAtPlayer(t *testing.T) {
	d := groundLevel()
	d.Enemies = []level.EnemySpawn{{Kind: level.KindFlying, X: 300, Y: 400, Dir: -1}}
	s, _, _ := newSession(d)

	fired := false
	for i := 0; i < 200 && !fired; i++ {
		s.Update(entity.Input{}, frame)
		fired = len(s.Projectiles()) > 0
	}
	require.True(t, fired)
	assert.True(t, s.Projectiles()[0].Hostile)
}
