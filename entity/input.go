// Package entity implements the player, enemy and moving-platform state machines.
package entity

// Input is the per-frame control state sampled by the host
type Input struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Jump   bool
	Run    bool
	Attack bool
	Strike bool
}

// JumpKey reports whether any jump binding is held
func (in Input) JumpKey() bool {
	return in.Jump || in.Up
}

// Facing is the horizontal orientation
type Facing int8

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Sign returns -1 or 1
func (f Facing) Sign() float64 {
	return float64(f)
}
