package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved for FSM auto-transitions and never pushed
	EventTick EventType = iota

	// === Scene Flow Events ===

	// EventNewGame starts a fresh run from level 1
	// Trigger: Menu | Consumer: FSM, Progression | Payload: nil
	EventNewGame

	// EventContinue resumes at the saved level
	// Trigger: Menu | Consumer: FSM | Payload: nil
	EventContinue

	// EventStoryDone ends a narrative screen
	// Trigger: Story screen input | Consumer: FSM | Payload: nil
	EventStoryDone

	// EventPause suspends the level session
	// Trigger: Input | Consumer: FSM | Payload: nil
	EventPause

	// EventResume resumes the level session
	// Trigger: Input | Consumer: FSM | Payload: nil
	EventResume

	// EventQuitToMenu abandons the current level
	// Trigger: Pause screen | Consumer: FSM | Payload: nil
	EventQuitToMenu

	// EventCustomize opens the color and accessory screen from the menu
	// Trigger: Menu | Consumer: FSM | Payload: nil
	EventCustomize

	// EventLevelStart marks a level session becoming active
	// Trigger: Host | Consumer: Audio, HUD | Payload: *LevelPayload
	EventLevelStart

	// === Player Events ===

	// EventJump signals a regular jump
	// Trigger: Player | Consumer: Audio | Payload: nil
	EventJump

	// EventSuperJump signals a super jump consuming one charge
	// Trigger: Player | Consumer: Audio | Payload: nil
	EventSuperJump

	// EventLedgeGrab signals the start of a climb
	// Trigger: Session | Consumer: Audio | Payload: nil
	EventLedgeGrab

	// EventDamage signals the big-to-small downgrade
	// Trigger: Resolver | Consumer: Audio | Payload: nil
	EventDamage

	// EventDeath signals the loss of a life
	// Trigger: Session | Consumer: Audio, Progression | Payload: *LevelPayload
	EventDeath

	// EventRespawn signals a restart of the same level after death
	// Trigger: Progression | Consumer: Host | Payload: *LevelPayload
	EventRespawn

	// === Interaction Events ===

	// EventStomp signals a stomp on an enemy
	// Trigger: Resolver | Consumer: Audio, Metrics | Payload: *ScorePayload
	EventStomp

	// EventShellKick signals a resting shell being kicked
	// Trigger: Resolver | Consumer: Audio | Payload: nil
	EventShellKick

	// EventShellHit signals a moving shell knocking out another enemy
	// Trigger: Resolver | Consumer: Audio | Payload: *ScorePayload
	EventShellHit

	// EventFlower signals a flower pickup
	// Trigger: Resolver | Consumer: Audio | Payload: *ScorePayload
	EventFlower

	// EventStar signals a first-time star pickup
	// Trigger: Resolver | Consumer: Audio | Payload: *StarPayload
	EventStar

	// EventPowerUp signals a mushroom pickup
	// Trigger: Resolver | Consumer: Audio | Payload: nil
	EventPowerUp

	// EventExtraLife signals the flower counter wrapping into a life
	// Trigger: Progress | Consumer: Audio | Payload: nil
	EventExtraLife

	// EventUnlock signals a newly unlocked color or accessory
	// Trigger: Progress | Consumer: HUD | Payload: *UnlockPayload
	EventUnlock

	// EventRescue signals the baby rescue
	// Trigger: Resolver | Consumer: Audio | Payload: *ScorePayload
	EventRescue

	// EventMaceSwing signals a mace swing
	// Trigger: Resolver | Consumer: Audio | Payload: nil
	EventMaceSwing

	// EventThunder signals a thunderbolt launched from the mace stock
	// Trigger: Resolver | Consumer: Audio | Payload: nil
	EventThunder

	// EventMaceHit signals a mace blow knocking out an enemy
	// Trigger: Resolver | Consumer: Audio | Payload: *ScorePayload
	EventMaceHit

	// EventProjectileHit signals a shot landing on the player or an enemy
	// Trigger: Resolver | Consumer: Audio | Payload: *ScorePayload
	EventProjectileHit

	// === Boss Events ===

	// EventBossHit signals a point of damage dealt to Dark Xochi
	// Trigger: Resolver | Consumer: Audio, HUD | Payload: *BossPayload
	EventBossHit

	// EventBossDefeated signals Dark Xochi's last point of health gone
	// Trigger: Resolver | Consumer: Audio | Payload: *ScorePayload
	EventBossDefeated

	// EventBossWins signals the boss reaching the baby or the race clock running out
	// Trigger: Session | Consumer: Audio | Payload: nil
	EventBossWins

	// === Progression Events ===

	// EventLevelComplete signals completion of a level
	// Trigger: Session (delayed after rescue) | Consumer: Progression | Payload: *LevelPayload
	EventLevelComplete

	// EventWorldTransition requests the inter-world narrative
	// Trigger: Progression | Consumer: FSM | Payload: *WorldPayload
	EventWorldTransition

	// EventLevelAdvance requests a direct restart with the next level
	// Trigger: Progression | Consumer: Host | Payload: *LevelPayload
	EventLevelAdvance

	// EventEnding requests the ending sequence after the final level
	// Trigger: Progression | Consumer: FSM | Payload: nil
	EventEnding

	// EventGameOver signals lives exhausted and return to menu
	// Trigger: Progression | Consumer: FSM | Payload: nil
	EventGameOver

	eventTypeCount
)

// String returns the registered name of the event type
func (et EventType) String() string {
	if name := GetEventName(et); name != "" {
		return name
	}
	return "EventUnknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
