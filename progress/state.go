// Package progress holds the persistent player progress and the rules that mutate it.
package progress

import (
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// DefaultColor is always unlocked
const DefaultColor = "default"

// State is the process-wide persisted progress
// Mutated only by the interaction resolver and the progression controller
type State struct {
	CurrentLevel        int        `json:"currentLevel"`
	TotalLevels         int        `json:"totalLevels"`
	Lives               int        `json:"lives"`
	Score               int        `json:"score"`
	HighScore           int        `json:"highScore"`
	Flowers             int        `json:"flowers"`
	SuperJumps          int        `json:"superJumps"`
	MaceAttacks         int        `json:"maceAttacks"`
	Stars               StringSet  `json:"stars"`
	RescuedBabies       StringSet  `json:"rescuedBabies"`
	UnlockedColors      StringSet  `json:"unlockedColors"`
	UnlockedAccessories StringSet  `json:"unlockedAccessories"`
	CurrentColor        string     `json:"currentColor"`
	CurrentAccessory    string     `json:"currentAccessory"`
	Difficulty          Difficulty `json:"difficulty"`
	MusicEnabled        bool       `json:"musicEnabled"`
	SfxEnabled          bool       `json:"sfxEnabled"`
}

// New returns the default state for difficulty d
func New(d Difficulty) *State {
	if !d.Valid() {
		d = Medium
	}
	p := d.Preset()
	return &State{
		CurrentLevel:        1,
		TotalLevels:         parameter.TotalLevels,
		Lives:               p.Lives,
		SuperJumps:          p.SuperJumps,
		MaceAttacks:         p.MaceAttacks,
		Stars:               NewStringSet(),
		RescuedBabies:       NewStringSet(),
		UnlockedColors:      NewStringSet(DefaultColor),
		UnlockedAccessories: NewStringSet(),
		CurrentColor:        DefaultColor,
		Difficulty:          d,
		MusicEnabled:        true,
		SfxEnabled:          true,
	}
}

// Normalize repairs values a hand-edited or older save may carry
func (s *State) Normalize() {
	if !s.Difficulty.Valid() {
		s.Difficulty = Medium
	}
	s.TotalLevels = parameter.TotalLevels
	s.CurrentLevel = vmath.ClampInt(s.CurrentLevel, 1, parameter.TotalLevels)
	// A save taken at zero lives would start a run already over
	if s.Lives <= 0 {
		s.Lives = s.Difficulty.Preset().Lives
	}
	s.Score = max(s.Score, 0)
	s.HighScore = max(s.HighScore, s.Score)
	s.Flowers = vmath.ClampInt(s.Flowers, 0, parameter.FlowersPerLife-1)
	s.SuperJumps = max(s.SuperJumps, 0)
	s.MaceAttacks = max(s.MaceAttacks, 0)
	if s.Stars == nil {
		s.Stars = NewStringSet()
	}
	if s.RescuedBabies == nil {
		s.RescuedBabies = NewStringSet()
	}
	if s.UnlockedColors == nil {
		s.UnlockedColors = NewStringSet()
	}
	s.UnlockedColors.Add(DefaultColor)
	if s.UnlockedAccessories == nil {
		s.UnlockedAccessories = NewStringSet()
	}
	if !s.UnlockedColors.Has(s.CurrentColor) {
		s.CurrentColor = DefaultColor
	}
	if s.CurrentAccessory != "" && !s.UnlockedAccessories.Has(s.CurrentAccessory) {
		s.CurrentAccessory = ""
	}
}

// Clone returns a deep copy
func (s *State) Clone() *State {
	c := *s
	c.Stars = s.Stars.Clone()
	c.RescuedBabies = s.RescuedBabies.Clone()
	c.UnlockedColors = s.UnlockedColors.Clone()
	c.UnlockedAccessories = s.UnlockedAccessories.Clone()
	return &c
}

// HasProgress reports whether there is a run worth continuing
func (s *State) HasProgress() bool {
	return s.CurrentLevel > 1 || len(s.Stars) > 0 || s.Score > 0
}
