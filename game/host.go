package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xochi/engine"
	"github.com/lixenwraith/xochi/input"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/render"
	"github.com/lixenwraith/xochi/status"
)

// hostEventBuffer is the terminal event backlog between polls
const hostEventBuffer = 256

// Host binds a Game to a terminal screen: input parsing, viewport sizing and frame rendering
type Host struct {
	screen tcell.Screen
	game   *Game
	input  *input.Machine
	orch   *render.Orchestrator
	scale  float64
	logger *slog.Logger

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once

	lastScene render.Scene
}

// NewHost creates a host drawing g on screen; a nil machine uses the default key table
func NewHost(screen tcell.Screen, g *Game, machine *input.Machine, scale float64, logger *slog.Logger) *Host {
	if machine == nil {
		machine = input.NewMachine(nil)
	}
	if scale <= 0 {
		scale = parameter.DefaultCellScale
	}
	if logger == nil {
		logger = slog.Default()
	}
	h := &Host{
		screen:    screen,
		game:      g,
		input:     machine,
		orch:      render.NewDefaultOrchestrator(screen),
		scale:     scale,
		logger:    logger,
		events:    make(chan tcell.Event, hostEventBuffer),
		done:      make(chan struct{}),
		lastScene: g.Scene(),
	}
	h.resize()
	return h
}

// Post queues a terminal event for the next tick, dropping it when the backlog is full
func (h *Host) Post(ev tcell.Event) bool {
	select {
	case h.events <- ev:
		return true
	default:
		return false
	}
}

// Done is closed when the player quits
func (h *Host) Done() <-chan struct{} { return h.done }

func (h *Host) quit() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Tick drains pending input, advances the game one frame and draws it
func (h *Host) Tick(dt time.Duration) {
	h.drain()
	if scene := h.game.Scene(); scene != h.lastScene {
		h.input.Release()
		h.lastScene = scene
	}
	h.game.Tick(h.input.Controls(), dt)
	h.render()
}

func (h *Host) drain() {
	for {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			return
		}
	}
}

func (h *Host) handle(ev tcell.Event) {
	intent := h.input.Process(ev)
	switch intent.Type {
	case input.IntentCommand:
		h.game.Command(intent.Action)
	case input.IntentResize:
		h.resize()
	case input.IntentQuit:
		h.logger.Info("quit requested")
		h.quit()
	}
}

func (h *Host) resize() {
	h.orch.Resize()
	cols, rows := h.orch.Size()
	h.game.SetViewport(render.WorldSize(h.scale, cols, rows))
}

func (h *Host) render() {
	cols, rows := h.orch.Size()
	h.orch.RenderFrame(h.game.RenderContext(cols, rows, h.scale))
}

// Run polls the terminal and drives frames at fps until ctx ends or the player quits
// onPanic restores the terminal when the loop goroutine crashes
func (h *Host) Run(ctx context.Context, fps int, reg *status.Registry, onPanic func(r any)) {
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	go h.poll()

	cs := engine.NewClockScheduler(h.Tick, time.Second/time.Duration(fps), nil, reg, h.logger)
	if onPanic != nil {
		cs.SetPanicHandler(onPanic)
	}
	cs.Start()
	defer cs.Stop()

	select {
	case <-ctx.Done():
	case <-h.done:
	}
	h.logger.Info("host stopped", "frames", cs.TickCount())
}

// poll forwards terminal events until the screen is finalized
func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		if !h.Post(ev) {
			h.logger.Debug("input backlog full, event dropped")
		}
	}
}
