package session

import (
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/vmath"
)

// Camera is the viewport's top-left corner in world coordinates
// LeadY holds the target that far below the vertical center, showing more of the climb ahead
type Camera struct {
	X, Y  float64
	W, H  float64
	LeadY float64
}

// NewCamera creates a viewport of w x h at the origin
func NewCamera(w, h float64) Camera {
	return Camera{W: w, H: h}
}

// newLevelCamera frames upscrollers with the player low in the view
func newLevelCamera(d *level.Descriptor, w, h float64) Camera {
	c := NewCamera(w, h)
	if d.IsUpscroller {
		c.LeadY = min(parameter.CameraUpscrollerLead, h/4)
	}
	return c
}

// View returns the visible world rectangle
func (c Camera) View() vmath.Rect {
	return vmath.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Follow shifts the camera minimally to keep target inside the dead zone, clamped to the level
func (c *Camera) Follow(target vmath.Vec2, levelW, levelH float64) {
	marginX := min(parameter.CameraDeadZoneMarginX, c.W/2)
	marginY := min(parameter.CameraDeadZoneMarginY, c.H/2)
	// The lead widens the upper margin; the lower one shrinks so the zone keeps its height
	marginTop := min(marginY+c.LeadY, c.H)
	marginBottom := max(marginY-c.LeadY, 0)

	vx := target.X - c.X
	vy := target.Y - c.Y

	if levelW > c.W {
		if vx < marginX {
			c.X += vx - marginX
		} else if vx > c.W-marginX {
			c.X += vx - (c.W - marginX)
		}
		c.X = vmath.Clamp(c.X, 0, levelW-c.W)
	} else {
		c.X = 0
	}

	if levelH > c.H {
		if vy < marginTop {
			c.Y += vy - marginTop
		} else if vy > c.H-marginBottom {
			c.Y += vy - (c.H - marginBottom)
		}
		c.Y = vmath.Clamp(c.Y, 0, levelH-c.H)
	} else {
		c.Y = 0
	}
}

// CenterOn positions the camera with target in the middle, shifted by LeadY, clamped to the level
func (c *Camera) CenterOn(target vmath.Vec2, levelW, levelH float64) {
	c.X = vmath.Clamp(target.X-c.W/2, 0, max(levelW-c.W, 0))
	c.Y = vmath.Clamp(target.Y-c.H/2-c.LeadY, 0, max(levelH-c.H, 0))
}
