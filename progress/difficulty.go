package progress

import (
	"slices"
	"strings"

	"github.com/lixenwraith/xochi/parameter"
)

// Difficulty selects starting stock and level generation multipliers
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Preset holds the per-difficulty tuning
type Preset struct {
	Lives       int
	SuperJumps  int
	MaceAttacks int
	EnemyMult   float64
	PowerupMult float64
	CoinMult    float64

	// BossHealth is Dark Xochi's health on the first boss level, BossHealthFinal on the last
	BossHealth      int
	BossHealthFinal int
}

var presets = map[Difficulty]Preset{
	Easy: {Lives: 5, SuperJumps: 3, MaceAttacks: 2, EnemyMult: 0.7, PowerupMult: 1.3, CoinMult: 1.2,
		BossHealth: 3, BossHealthFinal: 4},
	Medium: {Lives: 3, SuperJumps: 2, MaceAttacks: 1, EnemyMult: 1.0, PowerupMult: 1.0, CoinMult: 1.0,
		BossHealth: 4, BossHealthFinal: 5},
	Hard: {Lives: 2, SuperJumps: 1, MaceAttacks: 1, EnemyMult: 1.2, PowerupMult: 0.8, CoinMult: 0.9,
		BossHealth: 5, BossHealthFinal: 7},
}

var difficultyOrder = []Difficulty{Easy, Medium, Hard}

// BossHealthFor returns the boss health on level n
func (p Preset) BossHealthFor(n int) int {
	if n >= parameter.TotalLevels {
		return p.BossHealthFinal
	}
	return p.BossHealth
}

// Next returns the following difficulty in menu order, wrapping after hard
func (d Difficulty) Next() Difficulty {
	i := slices.Index(difficultyOrder, d)
	if i < 0 {
		i = slices.Index(difficultyOrder, Medium)
	}
	return difficultyOrder[(i+1)%len(difficultyOrder)]
}

// Valid reports whether d is a known difficulty
func (d Difficulty) Valid() bool {
	_, ok := presets[d]
	return ok
}

// Preset returns the tuning for d, medium when unknown
func (d Difficulty) Preset() Preset {
	if p, ok := presets[d]; ok {
		return p
	}
	return presets[Medium]
}

// ParseDifficulty accepts any case; unknown names return Medium and false
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return Medium, false
	}
	return d, true
}
