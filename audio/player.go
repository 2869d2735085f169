package audio

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/xochi/event"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/status"
)

// Player mixes one-shot effects into the speaker
// Thread-Safety: Play and HandleEvent may be called from any goroutine; the mixer is guarded by speaker.Lock
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       *atomic.Bool
	lastPlayed  [soundCount]time.Time
	now         func() time.Time
	logger      *slog.Logger

	played  *atomic.Int64
	dropped *atomic.Int64
}

// NewPlayer creates a player; nothing is audible until Start succeeds
func NewPlayer(cfg *AudioConfig, metrics *status.Registry, logger *slog.Logger) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		cfg:     cfg,
		mixer:   &beep.Mixer{},
		now:     time.Now,
		logger:  logger,
		muted:   metrics.Bools.Get("audio.muted"),
		played:  metrics.Ints.Get("audio.played"),
		dropped: metrics.Ints.Get("audio.dropped"),
	}
}

func (p *Player) Name() string           { return "audio" }
func (p *Player) Dependencies() []string { return nil }

// Init applies an optional initial mute flag
func (p *Player) Init(args ...any) error {
	for _, a := range args {
		if m, ok := a.(bool); ok {
			p.SetMuted(m)
		}
	}
	return nil
}

// Start opens the speaker; a missing audio device leaves the player silent instead of failing
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		p.logger.Warn("audio unavailable, continuing silent", "error", err)
		return nil
	}
	speaker.Play(keepAlive{p.mixer})
	p.initialized = true
	p.logger.Info("audio started", "rate", p.cfg.SampleRate, "volume", p.cfg.MasterVolume)
	return nil
}

// Stop silences and releases the speaker
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
	return nil
}

// Started reports whether the speaker is open
func (p *Player) Started() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) SetMuted(m bool) { p.muted.Store(m) }
func (p *Player) Muted() bool     { return p.muted.Load() }

// ToggleMute flips the mute flag and returns the new state
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Play queues s; returns false when dropped by mute, rate limit, voice cap or a closed speaker
func (p *Player) Play(s Sound) bool {
	if !p.accept(s) {
		p.dropped.Add(1)
		return false
	}
	st := GetSoundEffect(s, p.cfg)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || st == nil {
		p.dropped.Add(1)
		return false
	}

	speaker.Lock()
	full := p.mixer.Len() >= parameter.AudioMaxVoices
	if !full {
		p.mixer.Add(st)
	}
	speaker.Unlock()

	if full {
		p.dropped.Add(1)
		return false
	}
	p.played.Add(1)
	return true
}

// accept applies mute, enable and per-sound spacing
func (p *Player) accept(s Sound) bool {
	if s <= SoundNone || s >= soundCount || !p.cfg.Enabled || p.muted.Load() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	if last := p.lastPlayed[s]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	p.lastPlayed[s] = now
	return true
}

// HandleEvent plays the sound bound to the event
func (p *Player) HandleEvent(ev event.GameEvent) {
	p.Play(SoundFor(ev.Type))
}

// EventTypes lists every event with a bound sound
func (p *Player) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(eventSounds))
	for et := range eventSounds {
		types = append(types, et)
	}
	slices.Sort(types)
	return types
}

// keepAlive pads the mixer with silence so the speaker never drops it while idle
type keepAlive struct {
	m *beep.Mixer
}

func (k keepAlive) Stream(samples [][2]float64) (int, bool) {
	n, _ := k.m.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (k keepAlive) Err() error { return nil }
