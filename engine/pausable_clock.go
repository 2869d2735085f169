package engine

import "time"

// PausableClock is game time advanced explicitly by the frame loop
// Not safe for concurrent use; owned by the loop goroutine
type PausableClock struct {
	elapsed time.Duration
	frame   int64
	paused  bool
}

// NewPausableClock creates a clock at time zero
func NewPausableClock() *PausableClock {
	return &PausableClock{}
}

// Now returns elapsed game time
func (c *PausableClock) Now() time.Duration {
	return c.elapsed
}

// Frame returns the number of advances applied
func (c *PausableClock) Frame() int64 {
	return c.frame
}

// Advance moves game time forward by dt unless paused
// Returns the delta actually applied
func (c *PausableClock) Advance(dt time.Duration) time.Duration {
	if c.paused || dt <= 0 {
		return 0
	}
	c.elapsed += dt
	c.frame++
	return dt
}

// Pause freezes game time
func (c *PausableClock) Pause() { c.paused = true }

// Resume unfreezes game time
func (c *PausableClock) Resume() { c.paused = false }

// IsPaused reports the pause state
func (c *PausableClock) IsPaused() bool { return c.paused }

// Reset rewinds to zero and clears pause
func (c *PausableClock) Reset() {
	c.elapsed = 0
	c.frame = 0
	c.paused = false
}
