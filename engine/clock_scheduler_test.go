package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/status"
)

func TestClockSchedulerTicksAndStops(t *testing.T) {
	var ticks atomic.Int64
	reg := status.NewRegistry()
	cs := NewClockScheduler(func(dt time.Duration) {
		ticks.Add(1)
	}, time.Millisecond, nil, reg, nil)

	cs.Start()
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, time.Millisecond)
	cs.Stop()

	stopped := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after Stop")
	assert.Equal(t, int64(cs.TickCount()), reg.Ints.Get("engine.ticks").Load())

	cs.Stop() // idempotent
}

// stepClock is a wall clock moved only by the test
type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time          { return c.now }
func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestClockSchedulerClampsDelta(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	var got time.Duration
	cs := NewClockScheduler(func(dt time.Duration) { got = dt }, time.Millisecond, clock, nil, nil)
	cs.lastTick = clock.Now()

	clock.Advance(5 * time.Second)
	cs.processTick()
	assert.Equal(t, parameter.MaxFrameDelta, got)

	clock.Advance(10 * time.Millisecond)
	cs.processTick()
	assert.Equal(t, 10*time.Millisecond, got)

	cs.processTick()
	assert.Equal(t, time.Millisecond, got, "zero delta falls back to the interval")
}
