package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/xochi/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency slides linearly from start to end
type oscillator struct {
	start    float64
	end      float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

func sweep(from, to float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, attack, release, rate)
}

// arpeggio plays notes back to back
func arpeggio(rate beep.SampleRate, wave WaveType, notes ...float64) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = tone(f, parameter.ArpeggioNoteDuration, parameter.ArpeggioNoteAttack, parameter.ArpeggioNoteRelease, wave, rate)
	}
	return beep.Seq(parts...)
}

// Duration returns the nominal length of s
func Duration(s Sound) time.Duration {
	switch s {
	case SoundJump, SoundGrab:
		return parameter.JumpSoundDuration
	case SoundSuperJump:
		return parameter.SuperJumpSoundTime
	case SoundStomp:
		return parameter.StompSoundDuration
	case SoundKick:
		return parameter.KickSoundDuration
	case SoundFlower:
		return parameter.FlowerNote1Duration + parameter.FlowerNote2Duration
	case SoundStar:
		return parameter.StarSoundDuration
	case SoundPowerUp:
		return 4 * parameter.ArpeggioNoteDuration
	case SoundExtraLife:
		return 5 * parameter.ArpeggioNoteDuration
	case SoundRescue:
		return 7 * parameter.ArpeggioNoteDuration
	case SoundDamage:
		return parameter.DamageSoundDuration
	case SoundDeath:
		return parameter.DeathSoundDuration
	default:
		return 0
	}
}

// GetSoundEffect builds a fresh streamer for s at the configured volume, nil for unknown sounds
func GetSoundEffect(s Sound, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var st beep.Streamer
	switch s {
	case SoundJump:
		st = sweep(parameter.JumpStartFreq, parameter.JumpEndFreq, parameter.JumpSoundDuration,
			parameter.JumpSoundAttack, parameter.JumpSoundRelease, WaveSquare, rate)
	case SoundSuperJump:
		st = sweep(parameter.JumpStartFreq, parameter.SuperJumpEndFreq, parameter.SuperJumpSoundTime,
			parameter.JumpSoundAttack, parameter.JumpSoundRelease, WaveSquare, rate)
	case SoundGrab:
		st = tone(440, parameter.JumpSoundDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, WaveSine, rate)
	case SoundStomp:
		st = sweep(parameter.StompStartFreq, parameter.StompEndFreq, parameter.StompSoundDuration,
			parameter.StompSoundAttack, parameter.StompSoundRelease, WaveSquare, rate)
	case SoundKick:
		st = tone(0, parameter.KickSoundDuration, parameter.KickSoundAttack, parameter.KickSoundRelease, WaveNoise, rate)
	case SoundFlower:
		// B5 then E6
		st = beep.Seq(
			tone(987.77, parameter.FlowerNote1Duration, parameter.FlowerSoundAttack, parameter.FlowerNote1Release, WaveSquare, rate),
			tone(1318.51, parameter.FlowerNote2Duration, parameter.FlowerSoundAttack, parameter.FlowerNote2Release, WaveSquare, rate),
		)
	case SoundStar:
		st = beep.Mix(
			newVolume(tone(880, parameter.StarSoundDuration, parameter.StarSoundAttack, parameter.StarSoundFundamentalRelease, WaveSine, rate), 0.7),
			newVolume(tone(1760, parameter.StarSoundDuration, parameter.StarSoundAttack, parameter.StarSoundOvertoneRelease, WaveSine, rate), 0.3),
		)
	case SoundPowerUp:
		st = arpeggio(rate, WaveSquare, 523.25, 659.25, 783.99, 1046.5)
	case SoundExtraLife:
		st = arpeggio(rate, WaveSquare, 659.25, 783.99, 1318.51, 1046.5, 1174.66)
	case SoundRescue:
		st = arpeggio(rate, WaveSine, 523.25, 659.25, 783.99, 1046.5, 783.99, 1046.5, 1318.51)
	case SoundDamage:
		st = tone(110, parameter.DamageSoundDuration, parameter.DamageSoundAttack, parameter.DamageSoundRelease, WaveSaw, rate)
	case SoundDeath:
		st = sweep(parameter.DeathStartFreq, parameter.DeathEndFreq, parameter.DeathSoundDuration,
			parameter.DeathSoundAttack, parameter.DeathSoundRelease, WaveSquare, rate)
	default:
		return nil
	}
	return newVolume(st, cfg.Volume(s))
}
