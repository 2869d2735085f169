package interaction

import (
	"math"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// AttachBoss puts Dark Xochi under the resolver's rules for the rest of the level
func (r *Resolver) AttachBoss(b *entity.Boss) { r.boss = b }

func (r *Resolver) Boss() *entity.Boss { return r.boss }

// fieldBoss is the attached boss unless it has left the level
func (r *Resolver) fieldBoss() *entity.Boss {
	if r.boss == nil || r.boss.Removed() {
		return nil
	}
	return r.boss
}

// PlayerBoss resolves the boss's swing or shockwave for the frame, then body contact
// A stomp always lands; touching the tired boss pushes the player off; any other contact hurts
func (r *Resolver) PlayerBoss(p *entity.Player) Contact {
	b := r.fieldBoss()
	if b == nil || p.Dead() || p.Climbing() {
		return ContactNone
	}
	pb := p.Body()
	if zone, ok := b.TakeStrike(); ok && !p.Invincible() && zone.Contains(pb.Pos) {
		r.hurt(p)
		return ContactDamage
	}
	if !b.Alive() || b.Won() || b.Invulnerable() || p.Invincible() {
		return ContactNone
	}
	bb := b.Bounds()
	if !vmath.Overlaps(pb.Bounds(), bb) {
		return ContactNone
	}

	if pb.Vel.Y > 0 && pb.Bottom() < bb.CenterY() {
		p.BounceWith(parameter.BossStompBounce)
		r.bossHit(b.Stomp(pb.Pos.X))
		return ContactStomp
	}
	if b.Vulnerable() {
		pb.Vel.X = parameter.BossRecoverPush * awayFrom(pb.Pos.X, b.Body().Pos.X)
		return ContactNone
	}
	r.hurt(p)
	return ContactDamage
}

func (r *Resolver) bossHit(res entity.StompResult) {
	b := r.boss
	bb := b.Bounds()
	switch res {
	case entity.StompKilled:
		r.deps.State.AddScore(parameter.ScoreBossDefeat)
		r.deps.Logger.Info("boss defeated", "level", r.desc.Number, "time_left", b.TimeLeft())
		r.emit(event.EventBossDefeated, &event.ScorePayload{Points: parameter.ScoreBossDefeat, X: bb.CenterX(), Y: bb.Top()})
	case entity.StompDamaged:
		r.emit(event.EventBossHit, &event.BossPayload{Health: b.Health(), MaxHealth: b.MaxHealth()})
	}
}

// BossRace hands the level to the boss when it reaches the baby first
func (r *Resolver) BossRace() bool {
	b := r.fieldBoss()
	if b == nil || r.rescued || !vmath.Overlaps(b.Bounds(), r.babyBox()) {
		return false
	}
	return b.Win()
}

// Mace resolves a swing started this frame
// Every enemy within reach ahead of the player is struck; a stocked thunderbolt is returned for launch
func (r *Resolver) Mace(p *entity.Player, enemies []entity.Enemy) *entity.Projectile {
	if p.Dead() || p.Climbing() {
		return nil
	}
	pos := p.Body().Pos
	dir := int(p.Facing())
	r.emit(event.EventMaceSwing, nil)

	for _, e := range enemies {
		if !e.Alive() || !inMaceReach(pos, e.Body().Pos, dir, parameter.MaceReachY) {
			continue
		}
		if !e.Strike(dir) {
			continue
		}
		eb := e.Bounds()
		r.deps.State.AddScore(parameter.ScoreMaceHit)
		r.maceHits.Add(1)
		r.emit(event.EventMaceHit, &event.ScorePayload{Points: parameter.ScoreMaceHit, X: eb.CenterX(), Y: eb.Top()})
	}
	if b := r.fieldBoss(); b != nil && b.Alive() && inMaceReach(pos, b.Body().Pos, dir, parameter.MaceReachBossY) {
		r.strikeBoss(dir)
	}

	if !r.deps.State.UseMaceAttack() {
		return nil
	}
	r.emit(event.EventThunder, nil)
	origin := pos.Add(vmath.V(parameter.BoltOffsetX*float64(dir), 0))
	return entity.NewProjectile(origin, vmath.V(parameter.BoltSpeed*float64(dir), 0),
		parameter.BoltWidth, parameter.BoltHeight, parameter.BoltLifetime, false)
}

func (r *Resolver) strikeBoss(dir int) bool {
	b := r.boss
	if !b.Strike(dir) {
		return false
	}
	if b.Alive() {
		r.bossHit(entity.StompDamaged)
	} else {
		r.bossHit(entity.StompKilled)
	}
	return true
}

// Projectiles lands every live shot on its first target
// Hostile shots hit the player and are absorbed by invincibility; bolts hit enemies and the boss
func (r *Resolver) Projectiles(p *entity.Player, enemies []entity.Enemy, shots []*entity.Projectile) {
	for _, s := range shots {
		if s.Spent() {
			continue
		}
		if s.Hostile {
			r.hostileShot(p, s)
			continue
		}
		r.bolt(s, enemies)
	}
}

func (r *Resolver) hostileShot(p *entity.Player, s *entity.Projectile) {
	if p.Dead() || p.Climbing() || !vmath.Overlaps(s.Bounds(), p.Body().Bounds()) {
		return
	}
	s.Spend()
	if p.Invincible() {
		return
	}
	r.emit(event.EventProjectileHit, &event.ScorePayload{X: s.Pos.X, Y: s.Pos.Y})
	r.hurt(p)
}

func (r *Resolver) bolt(s *entity.Projectile, enemies []entity.Enemy) {
	sb := s.Bounds()
	for _, e := range enemies {
		if !e.Alive() || !vmath.Overlaps(sb, e.Bounds()) || !e.Strike(s.Direction()) {
			continue
		}
		s.Spend()
		r.deps.State.AddScore(parameter.ScoreBoltHit)
		r.boltHits.Add(1)
		r.emit(event.EventProjectileHit, &event.ScorePayload{Points: parameter.ScoreBoltHit, X: s.Pos.X, Y: s.Pos.Y})
		return
	}
	if b := r.fieldBoss(); b != nil && b.Alive() && !b.Won() && vmath.Overlaps(sb, b.Bounds()) {
		s.Spend()
		r.strikeBoss(s.Direction())
	}
}

func inMaceReach(from, to vmath.Vec2, dir int, reachY float64) bool {
	dx := (to.X - from.X) * float64(dir)
	return dx >= 0 && dx <= parameter.MaceRange && math.Abs(to.Y-from.Y) < reachY
}

func awayFrom(x, from float64) float64 {
	if x < from {
		return -1
	}
	return 1
}
