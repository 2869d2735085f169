package interaction

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/status"
	"github.com/lixenwraith/xochi/vmath"
)

// Contact is the player-side outcome of touching an enemy
type Contact uint8

const (
	ContactNone Contact = iota
	ContactStomp
	ContactKick
	ContactDamage
)

// Saver persists progress after unlock, rescue and level mutations
type Saver interface {
	SaveQuiet(st *progress.State)
}

// Deps are the collaborators shared by the resolver and its level session
type Deps struct {
	State   *progress.State
	Saver   Saver
	Sched   *engine.Scheduler
	Events  *event.EventQueue
	Metrics *status.Registry
	Logger  *slog.Logger
}

// Resolver applies the gameplay rules for one level
// Pickup flags are per level instance; stars already held in the save start out taken
type Resolver struct {
	desc *level.Descriptor
	deps Deps

	flowers  []bool
	stars    []bool
	powerUps []bool

	kicked map[entity.Enemy]time.Duration

	boss *entity.Boss

	rescued    bool
	completed  bool
	completion *engine.Timer

	// OnComplete runs when the post-rescue delay expires
	OnComplete func()

	stomps     *atomic.Int64
	shellHits  *atomic.Int64
	flowerHits *atomic.Int64
	maceHits   *atomic.Int64
	boltHits   *atomic.Int64
}

// NewResolver creates the rule set for desc
func NewResolver(desc *level.Descriptor, deps Deps) *Resolver {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = status.NewRegistry()
	}
	r := &Resolver{
		desc:       desc,
		deps:       deps,
		flowers:    make([]bool, len(desc.Flowers)),
		stars:      make([]bool, len(desc.Stars)),
		powerUps:   make([]bool, len(desc.PowerUps)),
		kicked:     make(map[entity.Enemy]time.Duration),
		stomps:     deps.Metrics.Ints.Get("interaction.stomps"),
		shellHits:  deps.Metrics.Ints.Get("interaction.shell_hits"),
		flowerHits: deps.Metrics.Ints.Get("interaction.flowers"),
		maceHits:   deps.Metrics.Ints.Get("interaction.mace_hits"),
		boltHits:   deps.Metrics.Ints.Get("interaction.bolt_hits"),
	}
	for i := range desc.Stars {
		r.stars[i] = deps.State.Stars.Has(desc.StarID(i))
	}
	return r
}

func (r *Resolver) FlowerTaken(i int) bool  { return r.flowers[i] }
func (r *Resolver) StarTaken(i int) bool    { return r.stars[i] }
func (r *Resolver) PowerUpTaken(i int) bool { return r.powerUps[i] }
func (r *Resolver) Rescued() bool           { return r.rescued }
func (r *Resolver) Completed() bool         { return r.completed }

// Resolve runs every overlap rule for the frame, after physics and enemy updates
func (r *Resolver) Resolve(p *entity.Player, enemies []entity.Enemy) {
	for _, e := range enemies {
		r.PlayerEnemy(p, e)
	}
	r.PlayerBoss(p)
	r.ShellHits(enemies)
	r.Pickups(p)
	r.BossRace()
	r.Baby(p)
}

// PlayerEnemy resolves one player/enemy contact
// A falling player whose feet are above the enemy's center stomps; anything else hurts
func (r *Resolver) PlayerEnemy(p *entity.Player, e entity.Enemy) Contact {
	if p.Dead() || p.Climbing() || !e.Alive() {
		return ContactNone
	}
	pb := p.Body()
	eb := e.Bounds()
	if !vmath.Overlaps(pb.Bounds(), eb) {
		return ContactNone
	}
	if p.Invincible() {
		return ContactNone
	}

	if pb.Vel.Y > 0 && pb.Bottom() < eb.CenterY() {
		p.Bounce()
		res := e.Stomp(pb.Pos.X)
		if res == entity.StompIgnored {
			return ContactNone
		}
		if res == entity.StompKicked {
			r.markKicked(e)
		}
		r.deps.State.AddScore(parameter.ScoreStomp)
		r.stomps.Add(1)
		r.emit(event.EventStomp, &event.ScorePayload{Points: parameter.ScoreStomp, X: eb.CenterX(), Y: eb.Top()})
		return ContactStomp
	}

	if sk, ok := e.(entity.ShellKicker); ok && sk.IsShell() {
		if !sk.IsMovingShell() {
			if sk.Kick(pb.Pos.X) {
				r.markKicked(e)
				r.emit(event.EventShellKick, nil)
			}
			return ContactKick
		}
		if r.inKickGrace(e) {
			return ContactNone
		}
	}

	r.hurt(p)
	return ContactDamage
}

func (r *Resolver) hurt(p *entity.Player) {
	if p.TakeDamage() == entity.DamageShrunk {
		r.emit(event.EventDamage, nil)
	}
}

func (r *Resolver) markKicked(e entity.Enemy) {
	r.kicked[e] = r.now()
}

func (r *Resolver) inKickGrace(e entity.Enemy) bool {
	at, ok := r.kicked[e]
	if !ok {
		return false
	}
	if r.now()-at < parameter.ShellKickGrace {
		return true
	}
	delete(r.kicked, e)
	return false
}

// ShellHits lets every moving shell knock out the live enemies it overlaps
func (r *Resolver) ShellHits(enemies []entity.Enemy) int {
	hits := 0
	for _, e := range enemies {
		shell, ok := e.(entity.ShellKicker)
		if !ok || !shell.Alive() || !shell.IsMovingShell() {
			continue
		}
		sb := shell.Bounds()
		for _, other := range enemies {
			if other == e || !other.Alive() || !vmath.Overlaps(sb, other.Bounds()) {
				continue
			}
			if !other.HitByShell() {
				continue
			}
			hits++
			ob := other.Bounds()
			r.deps.State.AddScore(parameter.ScoreShellHit)
			r.shellHits.Add(1)
			r.emit(event.EventShellHit, &event.ScorePayload{Points: parameter.ScoreShellHit, X: ob.CenterX(), Y: ob.Top()})
		}
	}
	return hits
}

// Pickups collects every flower, star and power-up the player touches
func (r *Resolver) Pickups(p *entity.Player) {
	if p.Dead() {
		return
	}
	pb := p.Body().Bounds()
	for i, f := range r.desc.Flowers {
		if !r.flowers[i] && vmath.Overlaps(pb, square(f, parameter.FlowerSize)) {
			r.Flower(i)
		}
	}
	for i, s := range r.desc.Stars {
		if !r.stars[i] && vmath.Overlaps(pb, square(s, parameter.StarSize)) {
			r.Star(i)
		}
	}
	for i, u := range r.desc.PowerUps {
		if !r.powerUps[i] && vmath.Overlaps(pb, square(vmath.V(u.X, u.Y), parameter.PowerUpSize)) {
			r.PowerUp(p, i)
		}
	}
}

// Flower collects flower i once
func (r *Resolver) Flower(i int) bool {
	if r.flowers[i] {
		return false
	}
	r.flowers[i] = true
	res := r.deps.State.AddFlower()
	r.flowerHits.Add(1)
	f := r.desc.Flowers[i]
	r.emit(event.EventFlower, &event.ScorePayload{Points: parameter.ScoreFlower, X: f.X, Y: f.Y})
	if res.ExtraLife {
		r.emit(event.EventExtraLife, nil)
	}
	return true
}

// Star collects star i and persists it with any unlocks it grants
func (r *Resolver) Star(i int) bool {
	if r.stars[i] {
		return false
	}
	r.stars[i] = true
	id := r.desc.StarID(i)
	added, unlocks := r.deps.State.CollectStar(id)
	if !added {
		return false
	}
	r.emit(event.EventStar, &event.StarPayload{ID: id})
	for _, u := range unlocks {
		r.deps.Logger.Info("unlocked", "kind", u.Kind, "id", u.ID, "stars", len(r.deps.State.Stars))
		r.emit(event.EventUnlock, &event.UnlockPayload{Kind: u.Kind, ID: u.ID})
	}
	r.save()
	return true
}

// PowerUp consumes power-up i; a mushroom is spent even when the player is already big
func (r *Resolver) PowerUp(p *entity.Player, i int) bool {
	if r.powerUps[i] {
		return false
	}
	r.powerUps[i] = true
	st := r.deps.State
	switch kind := r.desc.PowerUps[i].Kind; kind {
	case level.PowerUpFeather:
		st.SuperJumps += parameter.FeatherSuperJumps
	case level.PowerUpElote:
		p.SetInvincible(parameter.EloteInvincibility)
	case level.PowerUpThunder:
		st.MaceAttacks += parameter.ThunderMaceAttacks
		st.SuperJumps += parameter.ThunderSuperJumps
	default:
		p.PowerUp()
	}
	st.AddScore(parameter.ScorePowerUp)
	r.emit(event.EventPowerUp, nil)
	return true
}

// Baby triggers the rescue on first contact and schedules level completion
func (r *Resolver) Baby(p *entity.Player) bool {
	if r.rescued || p.Dead() || (r.boss != nil && r.boss.Won()) {
		return false
	}
	if !vmath.Overlaps(p.Body().Bounds(), r.babyBox()) {
		return false
	}
	r.rescued = true
	points := 0
	if r.deps.State.RescueBaby(r.desc.BabyID()) {
		points = parameter.ScoreRescue
	}
	if b := r.boss; b != nil {
		bonus := parameter.ScoreBossTimeBonus * b.TimeLeft()
		r.deps.State.AddScore(bonus)
		points += bonus
		b.Withdraw()
	}
	r.save()
	r.emit(event.EventRescue, &event.ScorePayload{Points: points, X: r.desc.Baby.X, Y: r.desc.Baby.Y})

	var t *engine.Timer
	t = r.deps.Sched.After(parameter.RescueCompletionDelay, func() {
		if r.completion != t || r.completed {
			return
		}
		r.completed = true
		r.emit(event.EventLevelComplete, &event.LevelPayload{Level: r.desc.Number})
		if r.OnComplete != nil {
			r.OnComplete()
		}
	})
	r.completion = t
	return true
}

// Cancel drops the pending completion, used when the session unloads
func (r *Resolver) Cancel() {
	r.completion.Cancel()
	r.completion = nil
}

func (r *Resolver) babyBox() vmath.Rect {
	return vmath.RectFromCenter(r.desc.Baby.X, r.desc.Baby.Y, parameter.BabyWidth, parameter.BabyHeight)
}

func (r *Resolver) save() {
	if r.deps.Saver != nil {
		r.deps.Saver.SaveQuiet(r.deps.State)
	}
}

func (r *Resolver) now() time.Duration {
	return r.deps.Sched.Clock().Now()
}

func (r *Resolver) emit(et event.EventType, payload any) {
	if r.deps.Events == nil {
		return
	}
	r.deps.Events.Emit(et, payload, r.deps.Sched.Clock().Frame())
}

func square(c vmath.Vec2, size float64) vmath.Rect {
	return vmath.RectFromCenter(c.X, c.Y, size, size)
}
