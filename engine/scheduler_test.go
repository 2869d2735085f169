package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerOneShot(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	tm := s.After(100*time.Millisecond, func() { fired++ })

	s.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, fired)
	assert.True(t, tm.Active())
	assert.Equal(t, time.Millisecond, tm.Remaining())

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, tm.Active())

	s.Advance(time.Second)
	assert.Equal(t, 1, fired, "one-shot must not refire")
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCancelPreventsFiring(t *testing.T) {
	s := NewScheduler(nil)
	fired := false
	tm := s.After(50*time.Millisecond, func() { fired = true })

	s.Advance(20 * time.Millisecond)
	require.True(t, tm.Cancel())
	assert.False(t, tm.Cancel(), "second cancel reports already done")

	s.Advance(time.Second)
	assert.False(t, fired)
}

func TestSchedulerRepeating(t *testing.T) {
	s := NewScheduler(nil)
	count := 0
	tm := s.Every(10*time.Millisecond, func() { count++ })

	s.Advance(35 * time.Millisecond)
	assert.Equal(t, 3, count)

	tm.Cancel()
	s.Advance(100 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestSchedulerOrderAndNested(t *testing.T) {
	s := NewScheduler(nil)
	var order []string
	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() {
		order = append(order, "a")
		s.After(0, func() { order = append(order, "a2") })
	})

	s.Advance(30 * time.Millisecond)
	// a2 is scheduled at the advanced clock time, so b fires first
	assert.Equal(t, []string{"a", "b", "a2"}, order)
}

func TestSchedulerPausedClockHoldsTimers(t *testing.T) {
	clock := NewPausableClock()
	s := NewScheduler(clock)
	fired := false
	s.After(10*time.Millisecond, func() { fired = true })

	clock.Pause()
	s.Advance(time.Second)
	assert.False(t, fired)
	assert.Equal(t, time.Duration(0), clock.Now())

	clock.Resume()
	s.Advance(10 * time.Millisecond)
	assert.True(t, fired)
	assert.Equal(t, int64(1), clock.Frame())
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	a := s.After(time.Millisecond, func() { fired++ })
	s.Every(time.Millisecond, func() { fired++ })

	s.CancelAll()
	s.Advance(time.Second)
	assert.Equal(t, 0, fired)
	assert.False(t, a.Active())
}
