package render

import "github.com/lixenwraith/xochi/progress"

// Palette colors one world's theme
type Palette struct {
	SkyTop    RGB
	SkyLow    RGB
	Water     RGB
	Ground    RGB
	GroundTop RGB
	Boat      RGB
	BoatTrim  RGB
}

// palettes[w-1] themes world w
var palettes = [...]Palette{
	// Canal Dawn
	{RGB{255, 183, 130}, RGB{255, 224, 178}, RGB{64, 140, 170}, RGB{120, 84, 52}, RGB{96, 168, 72}, RGB{214, 62, 62}, RGB{255, 214, 64}},
	// Bright Trajineras
	{RGB{100, 180, 255}, RGB{190, 230, 255}, RGB{40, 150, 160}, RGB{128, 90, 56}, RGB{88, 180, 80}, RGB{240, 96, 160}, RGB{80, 220, 120}},
	// Crystal Cave
	{RGB{30, 24, 60}, RGB{70, 56, 120}, RGB{40, 90, 150}, RGB{80, 80, 110}, RGB{150, 210, 255}, RGB{120, 100, 200}, RGB{200, 240, 255}},
	// Floating Gardens
	{RGB{130, 200, 255}, RGB{220, 245, 210}, RGB{50, 160, 130}, RGB{110, 80, 50}, RGB{120, 200, 70}, RGB{250, 150, 40}, RGB{255, 110, 180}},
	// Night Canals
	{RGB{10, 14, 40}, RGB{40, 40, 90}, RGB{20, 50, 90}, RGB{60, 50, 60}, RGB{70, 110, 90}, RGB{180, 40, 80}, RGB{255, 200, 90}},
	// The Grand Festival
	{RGB{120, 40, 140}, RGB{255, 130, 90}, RGB{40, 120, 170}, RGB{130, 70, 60}, RGB{230, 180, 60}, RGB{250, 60, 60}, RGB{60, 220, 250}},
}

// PaletteFor returns the theme of world w, world 1 when out of range
func PaletteFor(w int) Palette {
	if w < 1 || w > len(palettes) {
		return palettes[0]
	}
	return palettes[w-1]
}

var (
	colorMenuBg  = RGB{26, 18, 40}
	colorTitle   = RGB{255, 120, 180}
	colorText    = RGB{230, 230, 240}
	colorDim     = RGB{140, 140, 160}
	colorHUDBg   = RGB{20, 20, 28}
	colorScore   = RGB{255, 214, 64}
	colorLives   = RGB{255, 90, 110}
	colorFlower  = RGB{255, 150, 40}
	colorStar    = RGB{255, 240, 120}
	colorMush    = RGB{220, 50, 50}
	colorFeather = RGB{200, 230, 255}
	colorElote   = RGB{250, 210, 60}
	colorThunder = RGB{255, 255, 120}
	colorBoss    = RGB{110, 40, 130}
	colorTell    = RGB{255, 60, 60}
	colorBaby    = RGB{255, 200, 220}
	colorGull    = RGB{245, 245, 245}
	colorHeron   = RGB{120, 170, 220}
	colorShell   = RGB{70, 110, 200}
	colorFlyer   = RGB{170, 120, 230}
	colorFlood   = RGB{30, 90, 200}
	colorDeath   = RGB{160, 160, 160}
	colorBanner  = RGB{255, 255, 255}
	colorOverlay = RGB{0, 0, 0}
)

var rainbow = [...]RGB{
	{255, 60, 60}, {255, 160, 40}, {255, 230, 60}, {80, 220, 90}, {60, 160, 255}, {170, 90, 255},
}

// PlayerColor resolves the selected cosmetic color; rainbow cycles with the frame
func PlayerColor(id string, frame int64) RGB {
	switch id {
	case "blue":
		return RGB{70, 140, 255}
	case "gold":
		return RGB{255, 200, 40}
	case "rainbow":
		return rainbow[(frame/6)%int64(len(rainbow))]
	case progress.DefaultColor, "":
		return RGB{255, 105, 180}
	default:
		return RGB{255, 105, 180}
	}
}

// backgroundFor is the color untouched cells flush with
func backgroundFor(ctx Context) RGB {
	if ctx.Session == nil || (ctx.Scene != ScenePlaying && ctx.Scene != ScenePaused) {
		return colorMenuBg
	}
	return PaletteFor(ctx.Session.Level().World.Number).SkyLow
}
