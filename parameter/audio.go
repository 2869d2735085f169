package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive plays of the same sound
	MinSoundGap = 50 * time.Millisecond

	// AudioMaxVoices caps simultaneous effects in the mixer
	AudioMaxVoices = 8

	AudioDefaultMasterVolume = 0.5
)

// Jump Sound: rising square sweep
const (
	JumpSoundDuration  = 120 * time.Millisecond
	JumpSoundAttack    = 5 * time.Millisecond
	JumpSoundRelease   = 60 * time.Millisecond
	JumpStartFreq      = 330.0
	JumpEndFreq        = 660.0
	SuperJumpEndFreq   = 1320.0
	SuperJumpSoundTime = 240 * time.Millisecond
)

// Stomp Sound: falling thud
const (
	StompSoundDuration = 90 * time.Millisecond
	StompSoundAttack   = 2 * time.Millisecond
	StompSoundRelease  = 70 * time.Millisecond
	StompStartFreq     = 220.0
	StompEndFreq       = 80.0
)

// Flower Sound: two-note chime
const (
	FlowerNote1Duration = 80 * time.Millisecond
	FlowerNote2Duration = 220 * time.Millisecond
	FlowerSoundAttack   = 5 * time.Millisecond
	FlowerNote1Release  = 40 * time.Millisecond
	FlowerNote2Release  = 160 * time.Millisecond
)

// Star Sound: bell with overtone
const (
	StarSoundDuration           = 600 * time.Millisecond
	StarSoundAttack             = 5 * time.Millisecond
	StarSoundFundamentalRelease = 550 * time.Millisecond
	StarSoundOvertoneRelease    = 200 * time.Millisecond
)

// Arpeggio Sounds: power-up, extra life, rescue
const (
	ArpeggioNoteDuration = 70 * time.Millisecond
	ArpeggioNoteAttack   = 3 * time.Millisecond
	ArpeggioNoteRelease  = 40 * time.Millisecond
)

// Hurt Sounds: damage buzz and death drop
const (
	DamageSoundDuration = 150 * time.Millisecond
	DamageSoundAttack   = 5 * time.Millisecond
	DamageSoundRelease  = 60 * time.Millisecond
	DeathSoundDuration  = 700 * time.Millisecond
	DeathSoundAttack    = 10 * time.Millisecond
	DeathSoundRelease   = 300 * time.Millisecond
	DeathStartFreq      = 520.0
	DeathEndFreq        = 90.0
)

// Kick Sound: short noise burst
const (
	KickSoundDuration = 60 * time.Millisecond
	KickSoundAttack   = 2 * time.Millisecond
	KickSoundRelease  = 40 * time.Millisecond
)
