package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// AudioConfig holds the effect mix settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[Sound]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[Sound]float64{
			SoundJump:      0.5,
			SoundSuperJump: 0.6,
			SoundGrab:      0.4,
			SoundStomp:     0.8,
			SoundKick:      0.6,
			SoundFlower:    0.5,
			SoundStar:      1.0,
			SoundPowerUp:   0.7,
			SoundExtraLife: 0.8,
			SoundDamage:    0.8,
			SoundDeath:     0.9,
			SoundRescue:    1.0,
		},
	}
}

// Volume returns the effective gain of s
func (c *AudioConfig) Volume(s Sound) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}

// LoadAudioConfig overlays environment overrides on base
// XOCHI_AUDIO_ENABLED, XOCHI_MASTER_VOLUME (0-100), XOCHI_SFX_VOLUMES (JSON by sound name), XOCHI_SAMPLE_RATE
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	if base == nil {
		base = DefaultAudioConfig()
	}
	cfg := *base
	cfg.EffectVolumes = make(map[Sound]float64, len(base.EffectVolumes))
	for k, v := range base.EffectVolumes {
		cfg.EffectVolumes[k] = v
	}

	if enabled := os.Getenv("XOCHI_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("XOCHI_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if effectVols := os.Getenv("XOCHI_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if s, ok := ParseSound(name); ok {
					cfg.EffectVolumes[s] = vmath.Clamp(v, 0, 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv("XOCHI_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return &cfg
}
