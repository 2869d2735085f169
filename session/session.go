// Package session runs one attempt at one level: entities, physics, hazards and overlap rules.
package session

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/interaction"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/physics"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/status"
	"github.com/lixenwraith/xochi/vmath"
)

// Config wires a session to the process-wide collaborators
type Config struct {
	Level   *level.Descriptor
	State   *progress.State
	Saver   interaction.Saver
	Events  *event.EventQueue
	Metrics *status.Registry
	Logger  *slog.Logger

	// Viewport in world pixels; zero uses the defaults
	ViewW, ViewH float64
}

// Session owns every entity of a level attempt and its frame clock
// Entities and timers are dropped with the session on death, restart or unload
type Session struct {
	id     uuid.UUID
	desc   *level.Descriptor
	state  *progress.State
	events *event.EventQueue
	logger *slog.Logger

	clock *engine.PausableClock
	sched *engine.Scheduler
	world *physics.World

	player   *entity.Player
	enemies  []entity.Enemy
	boss     *entity.Boss
	shots    []*entity.Projectile
	boats    []*entity.Trajinera
	resolver *interaction.Resolver
	climb    *interaction.Climb

	camera   Camera
	hazard   Hazard
	fallLine float64

	dead   bool
	closed bool

	// OnDeath runs once when the player's life ends
	OnDeath func()
	// OnComplete runs once when the post-rescue delay expires
	OnComplete func()

	ticks  *atomic.Int64
	deaths *atomic.Int64
}

// New builds the level's world and spawns its entities
func New(cfg Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}
	if cfg.ViewW <= 0 || cfg.ViewH <= 0 {
		cfg.ViewW, cfg.ViewH = parameter.ViewportWidth, parameter.ViewportHeight
	}
	d := cfg.Level
	id := uuid.New()
	clock := engine.NewPausableClock()
	sched := engine.NewScheduler(clock)

	s := &Session{
		id:       id,
		desc:     d,
		state:    cfg.State,
		events:   cfg.Events,
		logger:   cfg.Logger.With("session", id.String(), "level", d.Number),
		clock:    clock,
		sched:    sched,
		world:    physics.NewWorld(d.Width, d.Height, d.Platforms),
		player:   entity.NewPlayer(d.Spawn.X, d.Spawn.Y, sched),
		camera:   newLevelCamera(d, cfg.ViewW, cfg.ViewH),
		hazard:   newHazard(d),
		fallLine: deathLine(d),
		ticks:    cfg.Metrics.Ints.Get("session.ticks"),
		deaths:   cfg.Metrics.Ints.Get("session.deaths"),
	}

	for _, spec := range d.Trajineras {
		b := entity.NewTrajinera(spec)
		s.boats = append(s.boats, b)
		s.world.AddMover(b)
	}
	for _, spawn := range d.Enemies {
		s.enemies = append(s.enemies, entity.SpawnEnemy(spawn, d.Width, sched))
	}

	s.resolver = interaction.NewResolver(d, interaction.Deps{
		State:   cfg.State,
		Saver:   cfg.Saver,
		Sched:   sched,
		Events:  cfg.Events,
		Metrics: cfg.Metrics,
		Logger:  s.logger,
	})
	s.resolver.OnComplete = func() {
		s.logger.Info("level complete", "score", s.state.Score)
		if s.OnComplete != nil {
			s.OnComplete()
		}
	}

	if d.IsBossLevel && !cfg.State.RescuedBabies.Has(d.BabyID()) {
		s.spawnBoss()
	}

	s.camera.CenterOn(d.Spawn, d.Width, d.Height)
	s.emit(event.EventLevelStart, &event.LevelPayload{Level: d.Number})
	s.logger.Info("level start", "name", d.Name, "enemies", len(s.enemies), "trajineras", len(s.boats), "boss", s.boss != nil)
	return s
}

// spawnBoss places Dark Xochi ahead of the player, feet level with the spawn
func (s *Session) spawnBoss() {
	d := s.desc
	x := vmath.Clamp(d.Spawn.X+parameter.BossSpawnOffsetX, parameter.BossWidth, d.Width-parameter.BossWidth)
	y := d.Spawn.Y + parameter.PlayerSmallHeight/2 - parameter.BossHeight/2
	health := s.state.Difficulty.Preset().BossHealthFor(d.Number)
	s.boss = entity.NewBoss(x, y, entity.BossConfigFor(d.Number, health, d.Baby), s.sched)
	s.resolver.AttachBoss(s.boss)
}

func (s *Session) ID() uuid.UUID                     { return s.id }
func (s *Session) Level() *level.Descriptor          { return s.desc }
func (s *Session) Player() *entity.Player            { return s.player }
func (s *Session) Enemies() []entity.Enemy           { return s.enemies }
func (s *Session) Projectiles() []*entity.Projectile { return s.shots }
func (s *Session) Trajineras() []*entity.Trajinera   { return s.boats }
func (s *Session) Resolver() *interaction.Resolver   { return s.resolver }
func (s *Session) Camera() Camera                    { return s.camera }
func (s *Session) Hazard() Hazard                    { return s.hazard }
func (s *Session) Scheduler() *engine.Scheduler      { return s.sched }
func (s *Session) Elapsed() time.Duration            { return s.clock.Now() }
func (s *Session) Dead() bool                        { return s.dead }
func (s *Session) Climbing() bool                    { return s.climb != nil }
func (s *Session) Paused() bool                      { return s.clock.IsPaused() }

// Boss returns Dark Xochi while it is on the field, nil otherwise
func (s *Session) Boss() *entity.Boss {
	if s.boss == nil || s.boss.Removed() {
		return nil
	}
	return s.boss
}
func (s *Session) Pause()                            { s.clock.Pause() }
func (s *Session) Resume()                           { s.clock.Resume() }

// SetViewport resizes the camera, used when the terminal changes size
func (s *Session) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.camera = newLevelCamera(s.desc, w, h)
	s.camera.CenterOn(s.player.Body().Pos, s.desc.Width, s.desc.Height)
}

// Update runs one frame
// Order: trajineras, grab cooldown, ledge grab or climb, player and mace, physics, enemies and boss, shots, overlaps, timers, camera, death check
func (s *Session) Update(in entity.Input, dt time.Duration) {
	if s.closed || dt <= 0 || s.clock.IsPaused() {
		return
	}
	s.ticks.Add(1)
	secs := dt.Seconds()

	if s.dead {
		s.world.Step(s.player.Body(), secs)
		s.sched.Advance(dt)
		return
	}

	for _, b := range s.boats {
		b.Update(dt)
	}

	// After the rescue the level only plays out the celebration
	if s.resolver.Rescued() {
		s.player.Update(entity.Input{}, dt, 0)
		s.world.Step(s.player.Body(), secs)
		s.sched.Advance(dt)
		s.camera.Follow(s.player.Body().Pos, s.desc.Width, s.desc.Height)
		return
	}

	s.player.TickGrabCooldown(dt)
	if s.climb != nil {
		if s.climb.Update(dt) || s.climb.Done() {
			s.climb = nil
		}
	} else if s.player.CanGrab() {
		if l, ok := interaction.FindLedge(s.player.Body().Bounds(), in, s.boats, s.desc.Platforms); ok {
			s.climb = interaction.StartClimb(s.player, l)
			s.emit(event.EventLedgeGrab, nil)
		}
	}

	if s.climb == nil {
		act := s.player.Update(in, dt, s.state.SuperJumps)
		switch {
		case act.SuperJumped:
			s.state.UseSuperJump()
			s.emit(event.EventSuperJump, nil)
		case act.Jumped:
			s.emit(event.EventJump, nil)
		}
		if act.Struck {
			if bolt := s.resolver.Mace(s.player, s.enemies); bolt != nil {
				s.shots = append(s.shots, bolt)
			}
		}
		s.world.Step(s.player.Body(), secs)
	}

	s.updateEnemies(dt)
	s.updateBoss(dt)
	s.updateShots(dt)
	s.resolver.Resolve(s.player, s.enemies)
	s.resolver.Projectiles(s.player, s.enemies, s.shots)
	if b := s.boss; b != nil && b.Won() && !s.player.Dead() {
		s.logger.Info("boss won the race", "time_left", b.TimeLeft())
		s.emit(event.EventBossWins, nil)
		s.player.Die()
	}
	s.hazard.Update(dt)
	s.sched.Advance(dt)
	s.camera.Follow(s.player.Body().Pos, s.desc.Width, s.desc.Height)
	s.checkDeath()
}

func (s *Session) updateEnemies(dt time.Duration) {
	secs := dt.Seconds()
	prune := s.fallLine + parameter.EnemyPruneMargin
	live := s.enemies[:0]
	for _, e := range s.enemies {
		e.Update(dt)
		s.world.Step(e.Body(), secs)
		if e.Removed() || physics.Below(e.Body(), prune) {
			continue
		}
		live = append(live, e)
	}
	for i := len(live); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = live
}

func (s *Session) updateBoss(dt time.Duration) {
	b := s.boss
	if b == nil || b.Removed() {
		return
	}
	b.Track(s.player.Body().Pos)
	b.Update(dt)
	s.world.Step(b.Body(), dt.Seconds())
}

// updateShots fires every reloaded shooter, then moves and prunes the shots in flight
func (s *Session) updateShots(dt time.Duration) {
	if !s.player.Dead() {
		target := s.player.Body().Pos
		for _, e := range s.enemies {
			if sh, ok := e.(entity.Shooter); ok {
				if p := sh.Shoot(target); p != nil {
					s.shots = append(s.shots, p)
				}
			}
		}
	}
	area := vmath.Rect{W: s.desc.Width, H: s.desc.Height}
	live := s.shots[:0]
	for _, p := range s.shots {
		p.Update(dt)
		if p.Spent() || !vmath.Overlaps(p.Bounds(), area) {
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(s.shots); i++ {
		s.shots[i] = nil
	}
	s.shots = live
}

func (s *Session) checkDeath() {
	p := s.player
	if !p.Dead() {
		b := p.Body()
		switch {
		case physics.Below(b, s.fallLine):
			s.logger.Debug("fell", "y", b.Pos.Y)
			p.Die()
		case s.hazard.Catches(b.Pos):
			s.logger.Debug("caught by hazard", "kind", s.hazard.Kind, "line", s.hazard.Line)
			p.Die()
		}
	}
	if !p.Dead() || s.dead {
		return
	}
	s.dead = true
	s.climb = nil
	s.resolver.Cancel()
	s.deaths.Add(1)
	s.emit(event.EventDeath, &event.LevelPayload{Level: s.desc.Number})
	s.logger.Info("player died", "elapsed", s.clock.Now())
	if s.OnDeath != nil {
		s.OnDeath()
	}
}

// Close drops every pending timer; the session is inert afterwards
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.climb = nil
	s.resolver.Cancel()
	s.sched.CancelAll()
}

func (s *Session) emit(et event.EventType, payload any) {
	if s.events != nil {
		s.events.Emit(et, payload, s.clock.Frame())
	}
}
