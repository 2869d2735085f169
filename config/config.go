// Package config loads the host's TOML settings file
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/xochi/audio"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/storage"
	"github.com/lixenwraith/xochi/vmath"
)

// Config is the host configuration
type Config struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`

	// Warnings collects non-fatal problems found while loading
	Warnings []string `toml:"-"`
}

type GameConfig struct {
	Difficulty string `toml:"difficulty"`
	// Seed for generated levels; 0 picks a time-based seed
	Seed uint64 `toml:"seed"`
	// FlowPath overrides the built-in scene flow graph
	FlowPath string `toml:"flow_path"`
}

type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	Effects      map[string]float64 `toml:"effects"`
}

type DisplayConfig struct {
	// FPS is the frame loop rate
	FPS int `toml:"fps"`
	// Scale is world pixels per terminal cell, horizontally; rows use twice this
	Scale float64 `toml:"scale"`
}

type StorageConfig struct {
	// Dir holds the save file; empty uses the per-user config directory
	Dir string `toml:"dir"`
}

type LogConfig struct {
	Dir   string `toml:"dir"`
	Level string `toml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Difficulty: string(progress.Medium),
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioDefaultMasterVolume,
			Effects:      map[string]float64{},
		},
		Display: DisplayConfig{
			FPS:   parameter.DefaultFPS,
			Scale: parameter.DefaultCellScale,
		},
		Log: LogConfig{
			Dir:   "logs",
			Level: "info",
		},
	}
}

// LoadFromPath reads path; a missing file yields defaults
func LoadFromPath(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlink not allowed in config path: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return LoadFromReader(f)
}

// LoadFromReader decodes TOML over the defaults
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	for _, key := range md.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key %q", key.String()))
	}
	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back into range, recording a warning for each
func (c *Config) normalize() {
	if d, ok := progress.ParseDifficulty(c.Game.Difficulty); ok {
		c.Game.Difficulty = string(d)
	} else {
		c.warn("unknown difficulty %q, using %s", c.Game.Difficulty, d)
		c.Game.Difficulty = string(d)
	}
	if v := vmath.Clamp(c.Audio.MasterVolume, 0, 1); v != c.Audio.MasterVolume {
		c.warn("master_volume %.2f clamped to %.2f", c.Audio.MasterVolume, v)
		c.Audio.MasterVolume = v
	}
	for name := range c.Audio.Effects {
		if _, ok := audio.ParseSound(name); !ok {
			c.warn("unknown sound %q", name)
		}
	}
	if c.Display.FPS <= 0 || c.Display.FPS > parameter.MaxFPS {
		c.warn("fps %d out of range, using %d", c.Display.FPS, parameter.DefaultFPS)
		c.Display.FPS = parameter.DefaultFPS
	}
	if c.Display.Scale <= 0 {
		c.warn("scale %.2f out of range, using %.0f", c.Display.Scale, parameter.DefaultCellScale)
		c.Display.Scale = parameter.DefaultCellScale
	}
	if _, ok := ParseLevel(c.Log.Level); !ok {
		c.warn("unknown log level %q, using info", c.Log.Level)
		c.Log.Level = "info"
	}
}

func (c *Config) warn(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// Difficulty returns the parsed difficulty
func (c *Config) Difficulty() progress.Difficulty {
	d, _ := progress.ParseDifficulty(c.Game.Difficulty)
	return d
}

// FrameDuration is the frame loop period
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// AudioSettings converts the audio section, leaving env overrides to the audio package
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	for name, v := range c.Audio.Effects {
		if s, ok := audio.ParseSound(name); ok {
			ac.EffectVolumes[s] = vmath.Clamp(v, 0, 1)
		}
	}
	return ac
}

// SaveDir resolves the storage directory
func (c *Config) SaveDir() (string, error) {
	if c.Storage.Dir != "" {
		return filepath.Clean(c.Storage.Dir), nil
	}
	return storage.DefaultDirectory()
}

// ParseLevel maps a level name onto slog
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
