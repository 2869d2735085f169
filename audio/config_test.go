package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	require.NotNil(t, cfg)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.5, cfg.MasterVolume)
	assert.Equal(t, 44100, cfg.SampleRate)
	for s := SoundJump; s < soundCount; s++ {
		assert.Contains(t, cfg.EffectVolumes, s, "volume for %s", s)
	}
	assert.InDelta(t, 0.5, cfg.Volume(SoundStar), 1e-9)
}

func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("XOCHI_AUDIO_ENABLED", "")
	t.Setenv("XOCHI_MASTER_VOLUME", "")
	t.Setenv("XOCHI_SFX_VOLUMES", "")
	t.Setenv("XOCHI_SAMPLE_RATE", "")

	cfg := LoadAudioConfig(nil)
	assert.Equal(t, DefaultAudioConfig(), cfg)
}

func TestLoadAudioConfigOverrides(t *testing.T) {
	t.Setenv("XOCHI_AUDIO_ENABLED", "false")
	t.Setenv("XOCHI_MASTER_VOLUME", "150")
	t.Setenv("XOCHI_SFX_VOLUMES", `{"stomp": 0.25, "rescue": 2, "bogus": 1}`)
	t.Setenv("XOCHI_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig(nil)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 1.0, cfg.MasterVolume, "clamped to 1")
	assert.Equal(t, 0.25, cfg.EffectVolumes[SoundStomp])
	assert.Equal(t, 1.0, cfg.EffectVolumes[SoundRescue])
	assert.Equal(t, 22050, cfg.SampleRate)
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("XOCHI_AUDIO_ENABLED", "maybe")
	t.Setenv("XOCHI_MASTER_VOLUME", "loud")
	t.Setenv("XOCHI_SFX_VOLUMES", "{not json")
	t.Setenv("XOCHI_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig(nil)
	assert.Equal(t, DefaultAudioConfig(), cfg)
}

func TestLoadAudioConfigDoesNotAliasBase(t *testing.T) {
	t.Setenv("XOCHI_SFX_VOLUMES", `{"jump": 0.1}`)
	base := DefaultAudioConfig()
	cfg := LoadAudioConfig(base)
	assert.Equal(t, 0.1, cfg.EffectVolumes[SoundJump])
	assert.Equal(t, 0.5, base.EffectVolumes[SoundJump])
}

func TestParseSound(t *testing.T) {
	for s := SoundJump; s < soundCount; s++ {
		got, ok := ParseSound(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := ParseSound("none")
	assert.False(t, ok)
	_, ok = ParseSound("trumpet")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Sound(99).String())
}
