// Package audio plays short synthesized effects for gameplay events
package audio

import "github.com/lixenwraith/xochi/event"

// Sound identifies a synthesized effect
type Sound int

const (
	SoundNone Sound = iota
	SoundJump
	SoundSuperJump
	SoundGrab
	SoundStomp
	SoundKick
	SoundFlower
	SoundStar
	SoundPowerUp
	SoundExtraLife
	SoundDamage
	SoundDeath
	SoundRescue
	soundCount
)

var soundNames = [soundCount]string{
	SoundNone:      "none",
	SoundJump:      "jump",
	SoundSuperJump: "super_jump",
	SoundGrab:      "grab",
	SoundStomp:     "stomp",
	SoundKick:      "kick",
	SoundFlower:    "flower",
	SoundStar:      "star",
	SoundPowerUp:   "powerup",
	SoundExtraLife: "extra_life",
	SoundDamage:    "damage",
	SoundDeath:     "death",
	SoundRescue:    "rescue",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSound maps a config key back to its sound
func ParseSound(name string) (Sound, bool) {
	for i, n := range soundNames {
		if n == name && Sound(i) != SoundNone {
			return Sound(i), true
		}
	}
	return SoundNone, false
}

var eventSounds = map[event.EventType]Sound{
	event.EventJump:       SoundJump,
	event.EventSuperJump:  SoundSuperJump,
	event.EventLedgeGrab:  SoundGrab,
	event.EventStomp:      SoundStomp,
	event.EventShellKick:  SoundKick,
	event.EventShellHit:   SoundStomp,
	event.EventFlower:     SoundFlower,
	event.EventStar:       SoundStar,
	event.EventPowerUp:    SoundPowerUp,
	event.EventExtraLife:  SoundExtraLife,
	event.EventDamage:     SoundDamage,
	event.EventDeath:      SoundDeath,
	event.EventRescue:     SoundRescue,

	event.EventMaceSwing:     SoundKick,
	event.EventThunder:       SoundSuperJump,
	event.EventMaceHit:       SoundStomp,
	event.EventProjectileHit: SoundStomp,
	event.EventBossHit:       SoundStomp,
	event.EventBossDefeated:  SoundStar,
}

// SoundFor returns the effect bound to an event type
func SoundFor(et event.EventType) Sound {
	return eventSounds[et]
}
