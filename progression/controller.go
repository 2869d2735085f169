// Package progression decides what follows a completed level or a lost life.
package progression

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
)

// Outcome is the next step of the run
type Outcome uint8

const (
	// OutcomeNone is returned for a repeated or ignored request
	OutcomeNone Outcome = iota
	OutcomeAdvance
	OutcomeWorldTransition
	OutcomeEnding
	OutcomeRespawn
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvance:
		return "advance"
	case OutcomeWorldTransition:
		return "world_transition"
	case OutcomeEnding:
		return "ending"
	case OutcomeRespawn:
		return "respawn"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Result describes the decided transition
// Level is the level to play next; World is set for world transitions; Delay is how long the host waits
type Result struct {
	Outcome Outcome
	Level   int
	World   level.World
	Delay   time.Duration
}

// Saver persists progress after level changes
type Saver interface {
	SaveQuiet(st *progress.State)
}

// Controller owns the run-level transitions over the shared progress state
// Each entry point is latched per level attempt; BeginLevel re-arms them
type Controller struct {
	state  *progress.State
	saver  Saver
	events *event.EventQueue
	logger *slog.Logger

	active    int
	completed bool
	died      bool
}

// New creates a controller; saver and events may be nil
func New(state *progress.State, saver Saver, events *event.EventQueue, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{state: state, saver: saver, events: events, logger: logger}
}

func (c *Controller) State() *progress.State { return c.state }

// BeginLevel records the level now being played and re-arms the transition latches
func (c *Controller) BeginLevel(n int) {
	c.active = n
	c.completed = false
	c.died = false
}

// CompleteLevel advances past level n
// The last level ends the game; entering a new world plays its narrative first
func (c *Controller) CompleteLevel(n int) Result {
	if c.completed && c.active == n {
		return Result{}
	}
	c.active = n
	c.completed = true

	next := n + 1
	if next > parameter.TotalLevels {
		c.logger.Info("run complete", "score", c.state.Score, "stars", len(c.state.Stars))
		c.save()
		return Result{Outcome: OutcomeEnding, Level: n}
	}

	c.state.CurrentLevel = next
	c.save()

	if level.IsWorldBoundary(next) {
		w := level.WorldForLevel(next)
		c.logger.Info("world transition", "level", next, "world", w)
		return Result{Outcome: OutcomeWorldTransition, Level: next, World: level.WorldInfo(w)}
	}
	return Result{Outcome: OutcomeAdvance, Level: next}
}

// LoseLife spends a life for the active level
// At zero lives the stock is refilled for the difficulty and the run returns to the menu
func (c *Controller) LoseLife() Result {
	if c.died {
		return Result{}
	}
	c.died = true

	if c.state.LoseLife() > 0 {
		return Result{Outcome: OutcomeRespawn, Level: c.state.CurrentLevel, Delay: parameter.PlayerRespawnDelay}
	}
	c.state.RestockAfterGameOver()
	c.save()
	c.logger.Info("game over", "level", c.state.CurrentLevel, "score", c.state.Score)
	return Result{Outcome: OutcomeGameOver, Level: c.state.CurrentLevel, Delay: parameter.GameOverDelay}
}

// NewGame resets the run to level 1 and returns it
func (c *Controller) NewGame() int {
	c.state.ResetRun()
	c.save()
	c.BeginLevel(1)
	return 1
}

// Continue returns the saved level to resume
func (c *Controller) Continue() int {
	n := level.ClampLevel(c.state.CurrentLevel)
	c.state.CurrentLevel = n
	return n
}

// CheckpointLevel returns the first level of the world containing n
func CheckpointLevel(n int) int {
	return level.FirstLevelOfWorld(level.WorldForLevel(n))
}

// SelectWorld moves the run to the first level of world w and returns that level
// With reachedOnly set, worlds past the one holding the saved level are refused
func (c *Controller) SelectWorld(w int, reachedOnly bool) (int, bool) {
	if w < 1 || w > parameter.TotalWorlds {
		return 0, false
	}
	first := level.FirstLevelOfWorld(w)
	if reachedOnly && first > CheckpointLevel(c.state.CurrentLevel) {
		c.logger.Debug("world not reached", "world", w, "level", c.state.CurrentLevel)
		return 0, false
	}
	c.state.CurrentLevel = first
	c.save()
	c.BeginLevel(first)
	c.logger.Info("world selected", "world", w, "level", first)
	return first, true
}

// SetDifficulty switches the preset, refilling lives, and saves
func (c *Controller) SetDifficulty(d progress.Difficulty) bool {
	if !c.state.SetDifficulty(d) {
		return false
	}
	c.save()
	c.logger.Info("difficulty changed", "difficulty", d, "lives", c.state.Lives)
	return true
}

// Announce pushes the event matching r
func (c *Controller) Announce(r Result) {
	if c.events == nil {
		return
	}
	switch r.Outcome {
	case OutcomeAdvance:
		c.events.Emit(event.EventLevelAdvance, &event.LevelPayload{Level: r.Level}, 0)
	case OutcomeWorldTransition:
		c.events.Emit(event.EventWorldTransition, &event.WorldPayload{World: r.World.Number, Level: r.Level}, 0)
	case OutcomeEnding:
		c.events.Emit(event.EventEnding, nil, 0)
	case OutcomeRespawn:
		c.events.Emit(event.EventRespawn, &event.LevelPayload{Level: r.Level}, 0)
	case OutcomeGameOver:
		c.events.Emit(event.EventGameOver, nil, 0)
	}
}

func (c *Controller) save() {
	if c.saver != nil {
		c.saver.SaveQuiet(c.state)
	}
}
