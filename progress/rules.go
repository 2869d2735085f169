package progress

import (
	"slices"

	"github.com/lixenwraith/xochi/parameter"
)

// Unlock kinds reported by CollectStar
const (
	UnlockColor     = "color"
	UnlockAccessory = "accessory"
)

// Unlock is a newly granted cosmetic
type Unlock struct {
	Kind string
	ID   string
}

type unlockRule struct {
	kind  string
	id    string
	stars int
}

// Ordered by threshold so grants come out in a stable order
var unlockRules = []unlockRule{
	{UnlockColor, "blue", parameter.UnlockColorBlue},
	{UnlockAccessory, "flower", parameter.UnlockAccessoryFlower},
	{UnlockColor, "gold", parameter.UnlockColorGold},
	{UnlockAccessory, "bow", parameter.UnlockAccessoryBow},
	{UnlockAccessory, "sunglasses", parameter.UnlockAccessorySunglasses},
	{UnlockColor, "rainbow", parameter.UnlockColorRainbow},
	{UnlockAccessory, "crown", parameter.UnlockAccessoryCrown},
}

// FlowerResult reports side effects of a single flower pickup
type FlowerResult struct {
	SuperJump bool
	ExtraLife bool
}

// AddFlower applies one flower: score, super jump every tenth, life and wrap at the hundredth
func (s *State) AddFlower() FlowerResult {
	var r FlowerResult
	s.AddScore(parameter.ScoreFlower)
	s.Flowers++
	if s.Flowers%parameter.FlowersPerSuperJump == 0 {
		s.SuperJumps++
		r.SuperJump = true
	}
	if s.Flowers >= parameter.FlowersPerLife {
		s.Flowers -= parameter.FlowersPerLife
		s.Lives++
		r.ExtraLife = true
	}
	return r
}

// AddScore adds points and tracks the high score
func (s *State) AddScore(points int) {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// CollectStar records a permanent star with its score and super jumps; returns false if already held
// Newly granted unlocks are returned in threshold order
func (s *State) CollectStar(id string) (bool, []Unlock) {
	if !s.Stars.Add(id) {
		return false, nil
	}
	s.AddScore(parameter.ScoreStar)
	s.SuperJumps += parameter.StarSuperJumps
	return true, s.EvaluateUnlocks()
}

// EvaluateUnlocks grants every cosmetic whose threshold is met; unlocks are never revoked
func (s *State) EvaluateUnlocks() []Unlock {
	n := len(s.Stars)
	var granted []Unlock
	for _, r := range unlockRules {
		if n < r.stars {
			continue
		}
		set := s.UnlockedColors
		if r.kind == UnlockAccessory {
			set = s.UnlockedAccessories
		}
		if set.Add(r.id) {
			granted = append(granted, Unlock{Kind: r.kind, ID: r.id})
		}
	}
	return granted
}

// RescueBaby records a rescue; returns false if already rescued
func (s *State) RescueBaby(id string) bool {
	if !s.RescuedBabies.Add(id) {
		return false
	}
	s.AddScore(parameter.ScoreRescue)
	return true
}

// LoseLife decrements lives, clamped at zero; returns the remaining count
func (s *State) LoseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives
}

// RestockAfterGameOver refills lives and clears flowers; level is kept
func (s *State) RestockAfterGameOver() {
	s.Lives = s.Difficulty.Preset().Lives
	s.Flowers = 0
}

// ResetRun starts a new run at level 1 with the difficulty starting stock
// Stars and rescues are cleared; unlocks and settings persist across runs
func (s *State) ResetRun() {
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	p := s.Difficulty.Preset()
	s.CurrentLevel = 1
	s.Flowers = 0
	s.Score = 0
	s.Lives = p.Lives
	s.SuperJumps = p.SuperJumps
	s.MaceAttacks = p.MaceAttacks
	s.Stars = NewStringSet()
	s.RescuedBabies = NewStringSet()
}

// UseSuperJump consumes one super jump if any remain
func (s *State) UseSuperJump() bool {
	if s.SuperJumps <= 0 {
		return false
	}
	s.SuperJumps--
	return true
}

// UseMaceAttack spends one thunderbolt from the mace stock if any remain
func (s *State) UseMaceAttack() bool {
	if s.MaceAttacks <= 0 {
		return false
	}
	s.MaceAttacks--
	return true
}

// SetDifficulty switches presets and refills lives to the new stock; invalid values are ignored
func (s *State) SetDifficulty(d Difficulty) bool {
	if !d.Valid() {
		return false
	}
	s.Difficulty = d
	s.Lives = d.Preset().Lives
	return true
}

// Ordered cosmetic choices for the customize screen; "" is no accessory
var (
	colorOrder     = []string{DefaultColor, "blue", "gold", "rainbow"}
	accessoryOrder = []string{"", "flower", "bow", "sunglasses", "crown"}
)

// CycleColor selects the next unlocked color and returns it
func (s *State) CycleColor() string {
	s.CurrentColor = nextUnlocked(colorOrder, s.CurrentColor, s.UnlockedColors.Has)
	return s.CurrentColor
}

// CycleAccessory selects the next unlocked accessory, passing through none
func (s *State) CycleAccessory() string {
	s.CurrentAccessory = nextUnlocked(accessoryOrder, s.CurrentAccessory, func(id string) bool {
		return id == "" || s.UnlockedAccessories.Has(id)
	})
	return s.CurrentAccessory
}

func nextUnlocked(order []string, current string, unlocked func(string) bool) string {
	at := slices.Index(order, current)
	for i := 1; i <= len(order); i++ {
		id := order[(at+i+len(order))%len(order)]
		if unlocked(id) {
			return id
		}
	}
	return current
}
