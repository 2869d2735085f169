package game

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/input"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/render"
	"github.com/lixenwraith/xochi/status"
)

const frame = time.Second / 60

var entityIdle = entity.Input{}

type countingSaver struct{ saves int }

func (s *countingSaver) SaveQuiet(*progress.State) { s.saves++ }

type fakeMuter struct{ muted bool }

func (m *fakeMuter) ToggleMute() bool { m.muted = !m.muted; return m.muted }
func (m *fakeMuter) Muted() bool      { return m.muted }

func newGame(t *testing.T, st *progress.State, start int) (*Game, *countingSaver) {
	t.Helper()
	if st == nil {
		st = progress.New(progress.Medium)
	}
	saver := &countingSaver{}
	g, err := New(Options{
		State:      st,
		Saver:      saver,
		Metrics:    status.NewRegistry(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Audio:      &fakeMuter{},
		StartLevel: start,
	})
	require.NoError(t, err)
	return g, saver
}

func tick(g *Game, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		g.Tick(entityIdle, frame)
	}
}

func rescue(t *testing.T, g *Game) {
	t.Helper()
	s := g.Session()
	require.NotNil(t, s)
	baby := s.Level().Baby
	s.Player().Body().Teleport(baby.X, baby.Y)
	g.Tick(entityIdle, frame)
	require.True(t, s.Resolver().Rescued())
	tick(g, parameter.RescueCompletionDelay+200*time.Millisecond)
}

func TestStartsAtMenu(t *testing.T) {
	g, _ := newGame(t, nil, 0)
	assert.Equal(t, "Menu", g.FlowState())
	assert.Equal(t, render.SceneMenu, g.Scene())
	assert.Nil(t, g.Session())
	assert.Equal(t, "Menu", g.metrics.Strings.Get("game.scene").Load())
}

func TestNewGamePlaysIntroThenLevelOne(t *testing.T) {
	st := progress.New(progress.Medium)
	st.CurrentLevel = 6
	st.Score = 900
	g, _ := newGame(t, st, 0)

	g.Command(input.ActionNewGame)
	assert.Equal(t, render.SceneIntro, g.Scene())
	assert.Equal(t, 1, st.CurrentLevel)
	assert.Equal(t, 900, st.HighScore)

	g.Command(input.ActionConfirm)
	require.Equal(t, render.ScenePlaying, g.Scene())
	require.NotNil(t, g.Session())
	assert.Equal(t, 1, g.Session().Level().Number)
	assert.Equal(t, "LEVEL 1", g.Banner())
}

func TestIntroTimesOut(t *testing.T) {
	g, _ := newGame(t, nil, 0)
	g.Command(input.ActionNewGame)
	tick(g, 7*time.Second)
	assert.Equal(t, render.SceneIntro, g.Scene())
	tick(g, 1500*time.Millisecond)
	assert.Equal(t, render.ScenePlaying, g.Scene())
}

func TestContinue(t *testing.T) {
	t.Run("without progress plays the intro", func(t *testing.T) {
		g, _ := newGame(t, nil, 0)
		g.Command(input.ActionContinue)
		assert.Equal(t, render.SceneIntro, g.Scene())
	})

	t.Run("resumes the saved level", func(t *testing.T) {
		st := progress.New(progress.Medium)
		st.CurrentLevel = 4
		g, _ := newGame(t, st, 0)
		g.Command(input.ActionContinue)
		require.Equal(t, render.ScenePlaying, g.Scene())
		assert.Equal(t, 4, g.Session().Level().Number)
	})

	t.Run("start level option skips the menu", func(t *testing.T) {
		g, _ := newGame(t, nil, 7)
		g.Tick(entityIdle, frame)
		require.Equal(t, render.ScenePlaying, g.Scene())
		assert.Equal(t, 7, g.Session().Level().Number)
	})
}

func TestPauseFreezesLevel(t *testing.T) {
	g, _ := newGame(t, nil, 3)
	g.Tick(entityIdle, frame)
	s := g.Session()
	require.NotNil(t, s)

	g.Command(input.ActionPause)
	assert.Equal(t, render.ScenePaused, g.Scene())
	assert.True(t, s.Paused())
	before := s.Elapsed()
	tick(g, time.Second)
	assert.Equal(t, before, s.Elapsed())
	assert.Same(t, s, g.Session(), "pausing keeps the session")

	g.Command(input.ActionPause)
	assert.Equal(t, render.ScenePlaying, g.Scene())
	assert.False(t, s.Paused())
	g.Tick(entityIdle, frame)
	assert.Greater(t, s.Elapsed(), before)
}

func TestQuitToMenuFromPause(t *testing.T) {
	g, _ := newGame(t, nil, 3)
	g.Tick(entityIdle, frame)
	g.Command(input.ActionPause)
	g.Command(input.ActionConfirm)
	assert.Equal(t, render.SceneMenu, g.Scene())
	assert.Nil(t, g.Session())
	assert.Equal(t, 3, g.State().CurrentLevel)
}

func TestDeathRespawnsAfterDelay(t *testing.T) {
	g, _ := newGame(t, nil, 3)
	g.Tick(entityIdle, frame)
	s := g.Session()
	s.Player().Die()
	g.Tick(entityIdle, frame)
	assert.Equal(t, 2, g.State().Lives)
	assert.Same(t, s, g.Session(), "the dead session plays out the delay")

	tick(g, parameter.PlayerRespawnDelay-100*time.Millisecond)
	assert.Same(t, s, g.Session())

	tick(g, 200*time.Millisecond)
	require.NotNil(t, g.Session())
	assert.NotEqual(t, s.ID(), g.Session().ID())
	assert.Equal(t, 3, g.Session().Level().Number)
	assert.False(t, g.Session().Dead())
	assert.Equal(t, render.ScenePlaying, g.Scene())
}

func TestPauseHoldsPendingRespawn(t *testing.T) {
	g, _ := newGame(t, nil, 3)
	g.Tick(entityIdle, frame)
	s := g.Session()
	s.Player().Die()
	g.Tick(entityIdle, frame)

	g.Command(input.ActionPause)
	tick(g, 3*time.Second)
	assert.Same(t, s, g.Session())

	g.Command(input.ActionPause)
	tick(g, parameter.PlayerRespawnDelay+100*time.Millisecond)
	assert.NotSame(t, s, g.Session())
}

func TestGameOverReturnsToMenu(t *testing.T) {
	st := progress.New(progress.Medium)
	st.Lives = 1
	g, saver := newGame(t, st, 5)
	g.Tick(entityIdle, frame)

	g.Session().Player().Die()
	g.Tick(entityIdle, frame)
	assert.Equal(t, "GAME OVER", g.Banner())
	assert.Equal(t, render.ScenePlaying, g.Scene())

	tick(g, parameter.GameOverDelay+100*time.Millisecond)
	assert.Equal(t, render.SceneMenu, g.Scene())
	assert.Nil(t, g.Session())
	assert.Equal(t, 3, st.Lives, "lives restocked for the difficulty")
	assert.Equal(t, 5, st.CurrentLevel, "the level is kept")
	assert.Positive(t, saver.saves)
	assert.EqualValues(t, 1, g.metrics.Ints.Get("game.game_overs").Load())
}

func TestRescueAdvancesWithinWorld(t *testing.T) {
	g, _ := newGame(t, nil, 0)
	g.Command(input.ActionNewGame)
	g.Command(input.ActionConfirm)
	first := g.Session()

	rescue(t, g)
	require.NotNil(t, g.Session())
	assert.NotSame(t, first, g.Session())
	assert.Equal(t, 2, g.Session().Level().Number)
	assert.Equal(t, 2, g.State().CurrentLevel)
	assert.Equal(t, render.ScenePlaying, g.Scene())
}

func TestRescueAtWorldBoundaryShowsWorldIntro(t *testing.T) {
	g, _ := newGame(t, nil, 2)
	g.Tick(entityIdle, frame)
	rescue(t, g)

	assert.Equal(t, render.SceneWorldIntro, g.Scene())
	assert.Nil(t, g.Session())
	assert.Equal(t, 3, g.State().CurrentLevel)

	g.Command(input.ActionConfirm)
	require.Equal(t, render.ScenePlaying, g.Scene())
	assert.Equal(t, 3, g.Session().Level().Number)
}

func TestFinalLevelPlaysEnding(t *testing.T) {
	g, _ := newGame(t, nil, parameter.TotalLevels)
	g.Tick(entityIdle, frame)
	rescue(t, g)

	assert.Equal(t, render.SceneEnding, g.Scene())
	assert.Nil(t, g.Session())

	g.Command(input.ActionConfirm)
	assert.Equal(t, render.SceneMenu, g.Scene())
}

func TestCommandsOutsideTheirScene(t *testing.T) {
	g, _ := newGame(t, nil, 0)
	g.Command(input.ActionPause)
	g.Command(input.ActionConfirm)
	assert.Equal(t, render.SceneIntro, g.Scene(), "confirm on the menu continues")

	g2, _ := newGame(t, nil, 4)
	g2.Tick(entityIdle, frame)
	g2.Command(input.ActionNewGame)
	assert.Equal(t, render.ScenePlaying, g2.Scene())
	assert.Equal(t, 4, g2.State().CurrentLevel)
}

func TestToggleMute(t *testing.T) {
	g, _ := newGame(t, nil, 0)
	assert.False(t, g.RenderContext(80, 24, 10).Muted)
	g.Command(input.ActionToggleMute)
	assert.True(t, g.RenderContext(80, 24, 10).Muted)
	assert.Equal(t, render.SceneMenu, g.Scene())
}

func TestAudioHandlersSeeGameplayEvents(t *testing.T) {
	g, _ := newGame(t, nil, 3)
	var seen []event.EventType
	g.Router().Register(event.HandlerFunc{
		Types: []event.EventType{event.EventLevelStart, event.EventDeath},
		Fn:    func(ev event.GameEvent) { seen = append(seen, ev.Type) },
	})
	g.Tick(entityIdle, frame)
	g.Session().Player().Die()
	g.Tick(entityIdle, frame)
	assert.Equal(t, []event.EventType{event.EventLevelStart, event.EventDeath}, seen)
}

func TestViewportFollowsResize(t *testing.T) {
	g, _ := newGame(t, nil, 3)
	g.Tick(entityIdle, frame)
	g.SetViewport(400, 300)
	cam := g.Session().Camera()
	assert.Equal(t, 400.0, cam.W)
	assert.Equal(t, 300.0, cam.H)

	// Later sessions inherit the size
	g.Session().Player().Die()
	g.Tick(entityIdle, frame)
	tick(g, parameter.PlayerRespawnDelay+100*time.Millisecond)
	assert.Equal(t, 400.0, g.Session().Camera().W)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{State: progress.New(progress.Easy), FlowPath: t.TempDir() + "/missing.toml"})
	assert.Error(t, err)

	_, err = New(Options{})
	assert.Error(t, err)
}

func TestMenuDifficultyCycles(t *testing.T) {
	g, saver := newGame(t, nil, 0)

	g.Command(input.ActionDifficulty)
	assert.Equal(t, progress.Hard, g.State().Difficulty)
	assert.Equal(t, progress.Hard.Preset().Lives, g.State().Lives)
	assert.Equal(t, 1, saver.saves)

	g.Command(input.ActionDifficulty)
	assert.Equal(t, progress.Easy, g.State().Difficulty)
	assert.Equal(t, render.SceneMenu, g.Scene())
}

func TestCustomizeScreen(t *testing.T) {
	st := progress.New(progress.Medium)
	st.UnlockedColors.Add("gold")
	st.UnlockedAccessories.Add("bow")
	g, saver := newGame(t, st, 0)

	g.Command(input.ActionCustomize)
	require.Equal(t, render.SceneCustomize, g.Scene())
	assert.Equal(t, "Customize", g.FlowState())

	g.Command(input.ActionNextColor)
	assert.Equal(t, "gold", st.CurrentColor, "locked colors are skipped")
	g.Command(input.ActionNextAccessory)
	assert.Equal(t, "bow", st.CurrentAccessory)
	assert.Equal(t, 2, saver.saves)

	g.Command(input.ActionNewGame)
	assert.Equal(t, render.SceneCustomize, g.Scene(), "menu keys do nothing here")

	g.Command(input.ActionConfirm)
	assert.Equal(t, render.SceneMenu, g.Scene())
}

func TestMenuWorldSelect(t *testing.T) {
	g, _ := newGame(t, nil, 0)

	g.Command(input.ActionWorld3)
	require.NotNil(t, g.Session())
	assert.Equal(t, render.ScenePlaying, g.Scene())
	assert.Equal(t, 5, g.Session().Level().Number, "world 3 starts at its checkpoint")
	assert.Equal(t, 5, g.State().CurrentLevel)
}

func TestPauseWorldSelectOnlyReached(t *testing.T) {
	g, _ := newGame(t, nil, 8)
	g.Tick(entityIdle, frame)
	g.Command(input.ActionPause)
	require.Equal(t, render.ScenePaused, g.Scene())
	first := g.Session()

	g.Command(input.ActionWorld6)
	assert.Equal(t, render.ScenePaused, g.Scene(), "world 6 is not reached yet")
	assert.Same(t, first, g.Session())

	g.Command(input.ActionWorld2)
	require.Equal(t, render.ScenePlaying, g.Scene())
	assert.NotSame(t, first, g.Session())
	assert.Equal(t, 3, g.Session().Level().Number)
	assert.False(t, g.Session().Paused())
}
