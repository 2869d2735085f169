package physics

import (
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// resolveX pushes the body out of solids after a horizontal move
func resolveX(b *Body, solids []vmath.Rect) {
	for _, s := range solids {
		if !vmath.Overlaps(b.Bounds(), s) {
			continue
		}
		if b.Pos.X < s.CenterX() {
			b.Pos.X = s.Left() - b.W/2
			b.Blocked.Right = true
			if b.Vel.X > 0 {
				b.Vel.X = 0
			}
		} else {
			b.Pos.X = s.Right() + b.W/2
			b.Blocked.Left = true
			if b.Vel.X < 0 {
				b.Vel.X = 0
			}
		}
	}
}

// resolveY pushes the body out of solids after a vertical move
// prevBottom decides landing over a head bump when the body entered from above
func resolveY(b *Body, solids []vmath.Rect, prevBottom float64) {
	for _, s := range solids {
		if !vmath.Overlaps(b.Bounds(), s) {
			continue
		}
		if prevBottom <= s.Top()+parameter.GroundProbe || b.Pos.Y < s.CenterY() {
			b.Pos.Y = s.Top() - b.H/2
			b.Grounded = true
			b.Blocked.Down = true
			if b.Vel.Y > 0 {
				b.Vel.Y = 0
			}
		} else {
			b.Pos.Y = s.Bottom() + b.H/2
			b.Blocked.Up = true
			if b.Vel.Y < 0 {
				b.Vel.Y = 0
			}
		}
	}
}

// landOn handles one-way surfaces: only a descending body crossing the top lands
func landOn(b *Body, m Mover, prevBottom float64) bool {
	top := m.Bounds().Top()
	if b.Vel.Y < 0 || prevBottom > top+parameter.GroundProbe || b.Bottom() < top {
		return false
	}
	if vmath.HorizontalOverlap(b.Bounds(), m.Bounds()) == 0 {
		return false
	}
	b.Pos.Y = top - b.H/2
	b.Vel.Y = 0
	b.Grounded = true
	b.Blocked.Down = true
	b.Riding = m
	return true
}
