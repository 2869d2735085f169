package engine

import (
	"time"
)

// Timer is a cancellable handle to a deferred callback on the game clock
// Owners store the handle and cancel it on state transitions that invalidate it
type Timer struct {
	id       uint64
	due      time.Duration
	interval time.Duration // 0 = one-shot
	fn       func()
	done     bool
	sched    *Scheduler
}

// Cancel stops the timer; returns false if it already fired or was cancelled
func (t *Timer) Cancel() bool {
	if t == nil || t.done {
		return false
	}
	t.done = true
	return true
}

// Active reports whether the timer is still pending
func (t *Timer) Active() bool {
	return t != nil && !t.done
}

// Remaining returns time until the next firing, 0 if inactive
func (t *Timer) Remaining() time.Duration {
	if !t.Active() {
		return 0
	}
	r := t.due - t.sched.clock.Now()
	if r < 0 {
		return 0
	}
	return r
}

// Scheduler runs deferred one-shot and repeating callbacks against a PausableClock
// Callbacks run synchronously inside Advance on the loop goroutine
type Scheduler struct {
	clock  *PausableClock
	timers []*Timer
	nextID uint64
}

// NewScheduler creates a scheduler bound to clock, creating one when nil
func NewScheduler(clock *PausableClock) *Scheduler {
	if clock == nil {
		clock = NewPausableClock()
	}
	return &Scheduler{clock: clock}
}

// Clock returns the underlying game clock
func (s *Scheduler) Clock() *PausableClock {
	return s.clock
}

// After schedules fn once after d of game time
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	return s.add(d, 0, fn)
}

// Every schedules fn repeatedly every interval; interval must be positive
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &Timer{
		id:       s.nextID,
		due:      s.clock.Now() + d,
		interval: interval,
		fn:       fn,
		sched:    s,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires every due timer in due order
// Timers scheduled by callbacks fire in the same pass if already due
func (s *Scheduler) Advance(dt time.Duration) {
	if s.clock.Advance(dt) == 0 && dt > 0 {
		return
	}
	now := s.clock.Now()
	for {
		next := s.nextDue(now)
		if next == nil {
			break
		}
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.done = true
		}
		next.fn()
	}
	s.compact()
}

// nextDue returns the earliest pending timer due at or before now
func (s *Scheduler) nextDue(now time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.done || t.due > now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Pending returns the count of active timers
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// CancelAll cancels every pending timer, used on level unload
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.done = true
	}
	s.timers = s.timers[:0]
}
