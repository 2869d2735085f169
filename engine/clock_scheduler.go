package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/status"
)

// TickFunc advances the game by one frame delta
type TickFunc func(dt time.Duration)

// ClockScheduler drives a TickFunc on a fixed interval from its own goroutine
// Measures real elapsed time per tick and clamps it to parameter.MaxFrameDelta
type ClockScheduler struct {
	tick         TickFunc
	tickInterval time.Duration
	timeProvider TimeProvider
	logger       *slog.Logger

	tickCount atomic.Uint64
	lastTick  time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	onPanic func(r any)

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler calling tick every tickInterval
func NewClockScheduler(tick TickFunc, tickInterval time.Duration, tp TimeProvider, reg *status.Registry, logger *slog.Logger) *ClockScheduler {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		tick:         tick,
		tickInterval: tickInterval,
		timeProvider: tp,
		logger:       logger,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
	}
}

// SetPanicHandler installs the crash handler for the loop goroutine, must be called before Start()
// The host uses it to restore the terminal before printing the stack
func (cs *ClockScheduler) SetPanicHandler(fn func(r any)) {
	cs.onPanic = fn
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.lastTick = cs.timeProvider.Now()
		cs.wg.Add(1)
		go cs.schedulerLoop()
	}
}

// Stop halts the loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns ticks processed since Start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			cs.logger.Error("tick panic", "panic", r)
			if cs.onPanic == nil {
				panic(r)
			}
			cs.onPanic(r)
		}
	}()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.processTick()
		}
	}
}

// processTick executes one clock cycle with a measured, clamped delta
func (cs *ClockScheduler) processTick() {
	now := cs.timeProvider.Now()
	dt := now.Sub(cs.lastTick)
	cs.lastTick = now

	if dt <= 0 {
		dt = cs.tickInterval
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	cs.tick(dt)
	n := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(n))
}
