// Package game runs the scene flow: menu, narrative screens, level sessions, pause and ending.
package game

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/xochi/asset"
	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/engine/fsm"
	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/input"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/progression"
	"github.com/lixenwraith/xochi/render"
	"github.com/lixenwraith/xochi/session"
	"github.com/lixenwraith/xochi/status"
	"github.com/lixenwraith/xochi/vmath"
)

// maxDispatchPasses bounds event cascades within one frame
const maxDispatchPasses = 4

// bannerDuration is how long transient messages stay up
const bannerDuration = 1500 * time.Millisecond

// Muter is the audio control the game toggles from the keyboard
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options wires a Game to its collaborators
type Options struct {
	State   *progress.State
	Saver   progression.Saver
	Catalog *level.Catalog
	Events  *event.EventQueue
	Metrics *status.Registry
	Logger  *slog.Logger
	Audio   Muter

	// FlowPath overrides the embedded scene flow graph
	FlowPath string
	// StartLevel jumps straight into a level after init, 0 starts at the menu
	StartLevel int
}

// Game owns the flow machine and the active level session
// Not safe for concurrent use; the host drives it from the loop goroutine
type Game struct {
	state    *progress.State
	saver    progression.Saver
	catalog  *level.Catalog
	events   *event.EventQueue
	router   *event.Router
	flow     *fsm.Machine[*Game]
	progress *progression.Controller
	metrics  *status.Registry
	logger   *slog.Logger
	audio    Muter

	// Host clock for delays that outlive a session: respawn, game over, banners
	clock   *engine.PausableClock
	sched   *engine.Scheduler
	pending *engine.Timer

	session *session.Session
	scene   render.Scene
	frame   int64

	viewW, viewH float64

	banner      string
	bannerTimer *engine.Timer

	// Frame inputs for the StepLevel action
	input entity.Input
	dt    time.Duration

	sessions  *atomic.Int64
	gameOver  *atomic.Int64
	sceneName *status.AtomicString
	levelName *status.AtomicString
}

// New builds the game and enters the initial flow state
func New(opts Options) (*Game, error) {
	if opts.State == nil {
		return nil, fmt.Errorf("game: progress state is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Events == nil {
		opts.Events = event.NewEventQueue()
	}
	if opts.Catalog == nil {
		opts.Catalog = level.NewCatalog(0, opts.State.Difficulty)
	}

	clock := engine.NewPausableClock()
	g := &Game{
		state:    opts.State,
		saver:    opts.Saver,
		catalog:  opts.Catalog,
		events:   opts.Events,
		router:   event.NewRouter(opts.Events),
		flow:     fsm.NewMachine[*Game](),
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		audio:    opts.Audio,
		clock:    clock,
		sched:    engine.NewScheduler(clock),
		viewW:    parameter.ViewportWidth,
		viewH:    parameter.ViewportHeight,
		sessions: opts.Metrics.Ints.Get("game.sessions"),
		gameOver: opts.Metrics.Ints.Get("game.game_overs"),
	}
	g.sceneName = opts.Metrics.Strings.Get("game.scene")
	g.levelName = opts.Metrics.Strings.Get("game.level")
	g.progress = progression.New(g.state, g.saver, g.events, g.logger)

	g.registerActions()
	if err := fsm.LoadConfigAuto(g.flow, opts.FlowPath, asset.DefaultFlowConfig); err != nil {
		return nil, fmt.Errorf("game: load flow: %w", err)
	}
	g.router.Register(event.HandlerFunc{Types: flowEvents, Fn: g.handleFlowEvent})
	g.router.Register(event.HandlerFunc{Types: levelEvents, Fn: g.handleLevelEvent})

	if err := g.flow.Init(g); err != nil {
		return nil, fmt.Errorf("game: init flow: %w", err)
	}

	if opts.StartLevel > 0 {
		g.state.CurrentLevel = level.ClampLevel(opts.StartLevel)
		g.logger.Info("starting at level", "level", g.state.CurrentLevel)
		g.events.Emit(event.EventContinue, nil, 0)
	}
	return g, nil
}

func (g *Game) registerActions() {
	g.flow.RegisterAction("SetScene", (*Game).actionSetScene)
	g.flow.RegisterAction("Log", (*Game).actionLog)
	g.flow.RegisterAction("StartLevel", func(g *Game, _ any) { g.startLevel(g.progress.Continue()) })
	g.flow.RegisterAction("StopLevel", func(g *Game, _ any) { g.stopLevel() })
	g.flow.RegisterAction("StepLevel", (*Game).actionStepLevel)
	g.flow.RegisterAction("EmitEvent", (*Game).actionEmitEvent)
	g.flow.RegisterGuard("HasProgress", func(g *Game) bool { return g.state.HasProgress() })
}

func (g *Game) actionSetScene(_ any) {
	name := g.flow.CurrentState()
	scene, ok := render.SceneForState(name)
	if !ok {
		g.logger.Warn("no scene for state", "state", name)
		return
	}
	g.scene = scene
	g.sceneName.Store(name)
	// Pending respawns and banners freeze with the level
	if scene == render.ScenePaused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
	if g.session != nil {
		if scene == render.ScenePaused {
			g.session.Pause()
		} else {
			g.session.Resume()
		}
	}
}

func (g *Game) actionLog(args any) {
	if la, ok := args.(*fsm.LogArgs); ok {
		g.logger.Info(la.Message, "state", g.flow.CurrentState())
	}
}

func (g *Game) actionStepLevel(_ any) {
	if g.session != nil {
		g.session.Update(g.input, g.dt)
	}
}

func (g *Game) actionEmitEvent(args any) {
	if ea, ok := args.(*fsm.EmitEventArgs); ok {
		g.events.Emit(ea.Type, ea.Payload, g.frame)
	}
}

// Router exposes event subscription for host services such as audio
func (g *Game) Router() *event.Router { return g.router }

func (g *Game) Scene() render.Scene                  { return g.scene }
func (g *Game) State() *progress.State               { return g.state }
func (g *Game) Session() *session.Session            { return g.session }
func (g *Game) Banner() string                       { return g.banner }
func (g *Game) FlowState() string                    { return g.flow.CurrentState() }
func (g *Game) Progression() *progression.Controller { return g.progress }

// Tick advances one frame with the sampled controls
func (g *Game) Tick(in entity.Input, dt time.Duration) {
	if dt <= 0 {
		return
	}
	g.frame++
	g.input, g.dt = in, dt
	g.sched.Advance(dt)
	g.flow.Update(g, dt)
	g.dispatch()
}

func (g *Game) dispatch() {
	for i := 0; i < maxDispatchPasses && g.events.Len() > 0; i++ {
		g.router.DispatchAll()
	}
}

// Command applies a discrete player command in the current scene
func (g *Game) Command(a input.Action) {
	switch a {
	case input.ActionToggleMute:
		if g.audio != nil {
			muted := g.audio.ToggleMute()
			g.logger.Info("audio toggled", "muted", muted)
		}
		return
	}

	switch g.scene {
	case render.SceneMenu:
		switch a {
		case input.ActionNewGame:
			g.progress.NewGame()
			g.emit(event.EventNewGame, nil)
		case input.ActionContinue, input.ActionConfirm:
			g.emit(event.EventContinue, nil)
		case input.ActionDifficulty:
			d := g.state.Difficulty.Next()
			if g.progress.SetDifficulty(d) {
				g.catalog.SetDifficulty(d)
			}
		case input.ActionCustomize:
			g.emit(event.EventCustomize, nil)
		default:
			if w, ok := a.World(); ok {
				if _, ok := g.progress.SelectWorld(w, false); ok {
					g.emit(event.EventContinue, nil)
				}
			}
		}
	case render.SceneCustomize:
		switch a {
		case input.ActionNextColor:
			g.logger.Info("color selected", "color", g.state.CycleColor())
			g.save()
		case input.ActionNextAccessory:
			g.logger.Info("accessory selected", "accessory", g.state.CycleAccessory())
			g.save()
		case input.ActionConfirm, input.ActionPause:
			g.emit(event.EventStoryDone, nil)
		}
	case render.SceneIntro, render.SceneWorldIntro, render.SceneEnding:
		if a == input.ActionConfirm {
			g.emit(event.EventStoryDone, nil)
		}
	case render.ScenePlaying:
		if a == input.ActionPause {
			g.emit(event.EventPause, nil)
		}
	case render.ScenePaused:
		switch a {
		case input.ActionPause:
			g.emit(event.EventResume, nil)
		case input.ActionConfirm:
			g.emit(event.EventQuitToMenu, nil)
		default:
			// Jumping to a reached world restarts from its checkpoint and resumes play
			if w, ok := a.World(); ok {
				if n, ok := g.progress.SelectWorld(w, true); ok {
					g.startLevel(n)
					g.emit(event.EventResume, nil)
				}
			}
		}
	}
	g.dispatch()
}

func (g *Game) save() {
	if g.saver != nil {
		g.saver.SaveQuiet(g.state)
	}
}

var flowEvents = []event.EventType{
	event.EventNewGame,
	event.EventContinue,
	event.EventStoryDone,
	event.EventPause,
	event.EventResume,
	event.EventQuitToMenu,
	event.EventCustomize,
	event.EventWorldTransition,
	event.EventEnding,
	event.EventGameOver,
}

var levelEvents = []event.EventType{
	event.EventLevelAdvance,
	event.EventRespawn,
	event.EventExtraLife,
	event.EventUnlock,
}

func (g *Game) handleFlowEvent(ev event.GameEvent) {
	before := g.flow.CurrentState()
	if g.flow.HandleEvent(g, ev.Type) {
		g.logger.Debug("flow transition", "event", event.GetEventName(ev.Type), "from", before, "to", g.flow.CurrentState())
	}
}

func (g *Game) handleLevelEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventLevelAdvance, event.EventRespawn:
		if !g.flow.IsIn("Game") {
			return
		}
		n := g.state.CurrentLevel
		if p, ok := ev.Payload.(*event.LevelPayload); ok && p.Level > 0 {
			n = p.Level
		}
		g.startLevel(n)
	case event.EventExtraLife:
		g.showBanner("1UP")
	case event.EventUnlock:
		if p, ok := ev.Payload.(*event.UnlockPayload); ok {
			g.showBanner(fmt.Sprintf("unlocked %s %s", p.Kind, p.ID))
		}
	}
}

// SetViewport sizes the camera view in world pixels
func (g *Game) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	g.viewW, g.viewH = w, h
	if g.session != nil {
		g.session.SetViewport(w, h)
	}
}

// startLevel replaces the active session with a fresh attempt at level n
func (g *Game) startLevel(n int) {
	g.closeSession()
	n = level.ClampLevel(n)
	g.state.CurrentLevel = n
	g.progress.BeginLevel(n)

	desc := g.catalog.Level(n)
	s := session.New(session.Config{
		Level:   desc,
		State:   g.state,
		Saver:   g.saver,
		Events:  g.events,
		Metrics: g.metrics,
		Logger:  g.logger,
		ViewW:   g.viewW,
		ViewH:   g.viewH,
	})
	s.OnDeath = func() { g.onDeath(s) }
	s.OnComplete = func() { g.onComplete(s) }
	if g.scene == render.ScenePaused {
		s.Pause()
	}
	g.session = s
	g.sessions.Add(1)
	g.levelName.Store(desc.Name)
	g.showBanner(fmt.Sprintf("LEVEL %d", n))
}

func (g *Game) stopLevel() {
	g.closeSession()
	g.clearBanner()
	g.levelName.Store("")
}

func (g *Game) closeSession() {
	g.pending.Cancel()
	g.pending = nil
	if g.session != nil {
		g.session.Close()
		g.session = nil
	}
}

func (g *Game) onDeath(s *session.Session) {
	if s != g.session {
		return
	}
	r := g.progress.LoseLife()
	if r.Outcome == progression.OutcomeNone {
		return
	}
	if r.Outcome == progression.OutcomeGameOver {
		g.gameOver.Add(1)
		g.showBannerFor("GAME OVER", r.Delay)
	}
	g.pending = g.sched.After(r.Delay, func() {
		g.pending = nil
		g.progress.Announce(r)
	})
}

func (g *Game) onComplete(s *session.Session) {
	if s != g.session {
		return
	}
	r := g.progress.CompleteLevel(s.Level().Number)
	g.progress.Announce(r)
}

func (g *Game) showBanner(text string) {
	g.showBannerFor(text, bannerDuration)
}

func (g *Game) showBannerFor(text string, d time.Duration) {
	g.bannerTimer.Cancel()
	g.banner = text
	g.bannerTimer = g.sched.After(d, func() {
		g.banner = ""
		g.bannerTimer = nil
	})
}

func (g *Game) clearBanner() {
	g.bannerTimer.Cancel()
	g.bannerTimer = nil
	g.banner = ""
}

// RenderContext snapshots what the renderers need for a cols x rows screen
func (g *Game) RenderContext(cols, rows int, scale float64) render.Context {
	ctx := render.Context{
		Scene:   g.scene,
		Session: g.session,
		State:   g.state,
		Metrics: g.metrics,
		Frame:   g.frame,
		Banner:  g.banner,
	}
	if g.audio != nil {
		ctx.Muted = g.audio.Muted()
	}
	if g.session != nil {
		ctx.View = render.NewViewport(g.session.Camera().View(), scale, cols, rows)
	} else {
		ctx.View = render.NewViewport(vmath.Rect{}, scale, cols, rows)
	}
	return ctx
}

func (g *Game) emit(et event.EventType, payload any) {
	g.events.Emit(et, payload, g.frame)
}
