package parameter

import "time"

// Game Loop Timing
const (
	// MaxFrameDelta caps a single tick to avoid tunneling after stalls
	MaxFrameDelta = 50 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Input
const (
	// KeyHoldInitial covers the terminal's delay before autorepeat starts
	KeyHoldInitial = 500 * time.Millisecond

	// KeyHoldTimeout releases a key when the terminal stops repeating it
	KeyHoldTimeout = 120 * time.Millisecond
)

// Host Loop
const (
	DefaultFPS = 60
	MaxFPS     = 240

	// DefaultCellScale is world pixels per terminal column; rows cover twice as many
	DefaultCellScale = 10.0
)
