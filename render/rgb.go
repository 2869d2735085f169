package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend mixes src over dst by alpha in [0, 1]
func Blend(dst, src RGB, alpha float64) RGB {
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(dst.R)*inv + float64(src.R)*alpha),
		G: clamp(float64(dst.G)*inv + float64(src.G)*alpha),
		B: clamp(float64(dst.B)*inv + float64(src.B)*alpha),
	}
}

// Scale multiplies every channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
