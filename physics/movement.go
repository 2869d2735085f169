package physics

import "github.com/lixenwraith/xochi/parameter"

// ApplyGravity accelerates downward and caps fall speed
func ApplyGravity(b *Body, gravity, dt float64) {
	if b.GravityOff {
		return
	}
	b.Vel.Y += gravity * dt
	CapFallSpeed(b, parameter.MaxFallSpeed)
}

// CapFallSpeed limits downward velocity; returns true if clamped
func CapFallSpeed(b *Body, maxSpeed float64) bool {
	if b.Vel.Y > maxSpeed {
		b.Vel.Y = maxSpeed
		return true
	}
	return false
}

// Decay multiplies horizontal velocity by factor, snapping to zero under threshold
func Decay(b *Body, factor, threshold float64) {
	b.Vel.X *= factor
	if b.Vel.X < threshold && b.Vel.X > -threshold {
		b.Vel.X = 0
	}
}
