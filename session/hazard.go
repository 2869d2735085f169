package session

import (
	"time"

	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// HazardKind is the level-wide threat that chases the player
type HazardKind uint8

const (
	HazardNone HazardKind = iota
	// HazardRisingWater climbs from below on upscroller levels
	HazardRisingWater
	// HazardFlood sweeps in from the left on escape levels
	HazardFlood
)

// Hazard is a moving death line; Line is a Y for rising water and an X for the flood
type Hazard struct {
	Kind  HazardKind
	Line  float64
	Speed float64
}

func newHazard(d *level.Descriptor) Hazard {
	switch {
	case d.IsUpscroller:
		return Hazard{Kind: HazardRisingWater, Line: d.Height + parameter.RisingWaterStart, Speed: parameter.RisingWaterSpeed}
	case d.IsEscape:
		speed := d.EscapeSpeed
		if speed <= 0 {
			speed = parameter.FloodSpeedDefault
		}
		return Hazard{Kind: HazardFlood, Line: parameter.FloodStartX, Speed: speed}
	}
	return Hazard{}
}

// Update advances the line
func (h *Hazard) Update(dt time.Duration) {
	switch h.Kind {
	case HazardRisingWater:
		h.Line -= h.Speed * dt.Seconds()
	case HazardFlood:
		h.Line += h.Speed * dt.Seconds()
	}
}

// Catches reports whether a body centered at p is taken by the hazard
func (h *Hazard) Catches(p vmath.Vec2) bool {
	switch h.Kind {
	case HazardRisingWater:
		return p.Y > h.Line+parameter.RisingWaterDepth
	case HazardFlood:
		return p.X < h.Line+parameter.FloodReach
	}
	return false
}

// deathLine is the static fall limit: just above water on water levels, below the bottom otherwise
func deathLine(d *level.Descriptor) float64 {
	if d.WaterY > 0 {
		return d.WaterY - parameter.WaterDeathMargin
	}
	return d.Height + parameter.FallDeathMargin
}
