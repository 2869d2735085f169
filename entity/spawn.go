package entity

import (
	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/level"
)

// SpawnEnemy instantiates the variant described by s; a spawn without direction faces left
func SpawnEnemy(s level.EnemySpawn, levelWidth float64, sched *engine.Scheduler) Enemy {
	dir := s.Dir
	if dir == 0 {
		dir = -1
	}
	switch s.Kind {
	case level.KindHeron:
		return NewHeron(s.X, s.Y, dir, sched)
	case level.KindFlying:
		return NewFlyer(s.X, s.Y, s.Amplitude, s.Speed, dir, levelWidth, sched)
	default:
		return NewGull(s.X, s.Y, dir, sched)
	}
}
