package event

import (
	"reflect"
	"strings"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct, nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if et == EventTick {
		return "Tick"
	}
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all game events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		// Scene flow
		RegisterType("EventNewGame", EventNewGame, nil)
		RegisterType("EventContinue", EventContinue, nil)
		RegisterType("EventStoryDone", EventStoryDone, nil)
		RegisterType("EventPause", EventPause, nil)
		RegisterType("EventResume", EventResume, nil)
		RegisterType("EventQuitToMenu", EventQuitToMenu, nil)
		RegisterType("EventCustomize", EventCustomize, nil)
		RegisterType("EventLevelStart", EventLevelStart, &LevelPayload{})

		// Player
		RegisterType("EventJump", EventJump, nil)
		RegisterType("EventSuperJump", EventSuperJump, nil)
		RegisterType("EventLedgeGrab", EventLedgeGrab, nil)
		RegisterType("EventDamage", EventDamage, nil)
		RegisterType("EventDeath", EventDeath, &LevelPayload{})
		RegisterType("EventRespawn", EventRespawn, &LevelPayload{})

		// Interaction
		RegisterType("EventStomp", EventStomp, &ScorePayload{})
		RegisterType("EventShellKick", EventShellKick, nil)
		RegisterType("EventShellHit", EventShellHit, &ScorePayload{})
		RegisterType("EventFlower", EventFlower, &ScorePayload{})
		RegisterType("EventStar", EventStar, &StarPayload{})
		RegisterType("EventPowerUp", EventPowerUp, nil)
		RegisterType("EventExtraLife", EventExtraLife, nil)
		RegisterType("EventUnlock", EventUnlock, &UnlockPayload{})
		RegisterType("EventRescue", EventRescue, &ScorePayload{})
		RegisterType("EventMaceSwing", EventMaceSwing, nil)
		RegisterType("EventThunder", EventThunder, nil)
		RegisterType("EventMaceHit", EventMaceHit, &ScorePayload{})
		RegisterType("EventProjectileHit", EventProjectileHit, &ScorePayload{})

		// Boss
		RegisterType("EventBossHit", EventBossHit, &BossPayload{})
		RegisterType("EventBossDefeated", EventBossDefeated, &ScorePayload{})
		RegisterType("EventBossWins", EventBossWins, nil)

		// Progression
		RegisterType("EventLevelComplete", EventLevelComplete, &LevelPayload{})
		RegisterType("EventWorldTransition", EventWorldTransition, &WorldPayload{})
		RegisterType("EventLevelAdvance", EventLevelAdvance, &LevelPayload{})
		RegisterType("EventEnding", EventEnding, nil)
		RegisterType("EventGameOver", EventGameOver, nil)
	})
}
