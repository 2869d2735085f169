package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/parameter"
	"github.com/lixenwraith/xochi/session"
	"github.com/lixenwraith/xochi/vmath"
)

func inLevel(ctx Context) bool {
	return ctx.Session != nil && (ctx.Scene == ScenePlaying || ctx.Scene == ScenePaused)
}

func palette(ctx Context) Palette {
	return PaletteFor(ctx.Session.Level().World.Number)
}

// skyRenderer paints the sky gradient and the canal below WaterY
type skyRenderer struct{}

func (skyRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	pal := palette(ctx)
	v := ctx.View
	for row := v.Top; row < v.Top+v.Rows; row++ {
		t := float64(row-v.Top) / float64(max(v.Rows-1, 1))
		sky := Blend(pal.SkyTop, pal.SkyLow, t)
		for col := 0; col < v.Cols; col++ {
			buf.SetBgOnly(col, row, sky)
		}
	}

	d := ctx.Session.Level()
	if d.WaterY <= 0 {
		return
	}
	_, top := v.Cell(0, d.WaterY)
	for row := max(top, v.Top); row < v.Top+v.Rows; row++ {
		depth := float64(row-top) / float64(max(v.Rows, 1))
		water := Scale(pal.Water, 1-0.5*depth)
		for col := 0; col < v.Cols; col++ {
			buf.SetBgOnly(col, row, water)
			if row == top && (int64(col)+ctx.Frame/8)%4 == 0 {
				buf.SetFgOnly(col, row, '~', Blend(water, RGBWhite, 0.6), tcell.AttrNone)
			}
		}
	}
}

// terrainRenderer draws static platforms: a grass row over solid ground
type terrainRenderer struct{}

func (terrainRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	pal := palette(ctx)
	for _, p := range ctx.Session.Level().Platforms {
		c0, r0, c1, r1 := ctx.View.Span(p)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				if !ctx.View.Visible(col, row) {
					continue
				}
				if row == r0 {
					buf.SetWithBg(col, row, '▀', pal.GroundTop, pal.Ground)
				} else {
					buf.SetBgOnly(col, row, pal.Ground)
				}
			}
		}
	}
}

// trajineraRenderer draws the boats with their painted name
type trajineraRenderer struct{}

func (trajineraRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	pal := palette(ctx)
	for _, b := range ctx.Session.Trajineras() {
		c0, r0, c1, r1 := ctx.View.Span(b.Bounds())
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				if !ctx.View.Visible(col, row) {
					continue
				}
				switch {
				case col == c0 && row == r0:
					buf.SetWithBg(col, row, '\\', pal.BoatTrim, pal.Boat)
				case col == c1-1 && row == r0:
					buf.SetWithBg(col, row, '/', pal.BoatTrim, pal.Boat)
				case row == r0:
					buf.SetWithBg(col, row, '▔', pal.BoatTrim, pal.Boat)
				default:
					buf.SetBgOnly(col, row, Scale(pal.Boat, 0.8))
				}
			}
		}
		if name := []rune(b.Name()); len(name) > 0 && r1-r0 > 1 {
			start := c0 + (c1-c0-len(name))/2
			for i, r := range name {
				if start+i > c0 && start+i < c1-1 && ctx.View.Visible(start+i, r0+1) {
					buf.SetFgOnly(start+i, r0+1, r, pal.BoatTrim, tcell.AttrBold)
				}
			}
		}
	}
}

// pickupRenderer draws flowers, stars, power-ups and the baby
type pickupRenderer struct{}

func (pickupRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	d := ctx.Session.Level()
	res := ctx.Session.Resolver()
	glyph := func(p vmath.Vec2, r rune, fg RGB, attrs tcell.AttrMask) {
		col, row := ctx.View.Cell(p.X, p.Y)
		if ctx.View.Visible(col, row) {
			buf.SetFgOnly(col, row, r, fg, attrs)
		}
	}

	for i, f := range d.Flowers {
		if !res.FlowerTaken(i) {
			glyph(f, '✿', colorFlower, tcell.AttrNone)
		}
	}
	for i, s := range d.Stars {
		if res.StarTaken(i) {
			glyph(s, '☆', colorDim, tcell.AttrNone)
		} else {
			glyph(s, '★', colorStar, tcell.AttrBold)
		}
	}
	for i, u := range d.PowerUps {
		if !res.PowerUpTaken(i) {
			r, fg := powerUpGlyph(u.Kind)
			glyph(vmath.V(u.X, u.Y), r, fg, tcell.AttrBold)
		}
	}
	if res.Rescued() {
		glyph(d.Baby, '♥', colorLives, tcell.AttrBold)
	} else {
		glyph(d.Baby, '☺', colorBaby, tcell.AttrBold)
	}
}

func powerUpGlyph(k level.PowerUpKind) (rune, RGB) {
	switch k {
	case level.PowerUpFeather:
		return 'ƒ', colorFeather
	case level.PowerUpElote:
		return '¤', colorElote
	case level.PowerUpThunder:
		return 'ϟ', colorThunder
	default:
		return '♣', colorMush
	}
}

// enemyRenderer draws every live or fading enemy by kind and phase
type enemyRenderer struct{}

func (enemyRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	for _, e := range ctx.Session.Enemies() {
		r, fg := enemyGlyph(e, ctx.Frame)
		if r == 0 {
			continue
		}
		fill(ctx, buf, e.Bounds(), r, fg, tcell.AttrBold)
	}
}

func enemyGlyph(e entity.Enemy, frame int64) (rune, RGB) {
	switch en := e.(type) {
	case *entity.Gull:
		if en.Fading() {
			return 'x', colorDeath
		}
		if !en.Alive() {
			return 'x', colorGull
		}
		if en.Direction() < 0 {
			return '<', colorGull
		}
		return '>', colorGull
	case *entity.Heron:
		switch en.Phase() {
		case entity.HeronShelled:
			if en.Wobbling() && frame%8 < 4 {
				return 'o', colorShell
			}
			return 'O', colorShell
		case entity.HeronMovingShell:
			return '@', colorShell
		case entity.HeronDead:
			return 'x', colorDeath
		}
		return 'H', colorHeron
	case *entity.Flyer:
		if !en.Alive() {
			return 'x', colorDeath
		}
		return 'W', colorFlyer
	}
	return 0, RGB{}
}

// playerRenderer draws Xochi; invincibility blinks, death greys out
type playerRenderer struct{}

func (playerRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	p := ctx.Session.Player()
	if p.Invincible() && !p.Dead() && ctx.Frame%6 < 3 {
		return
	}
	fg := PlayerColor(ctx.State.CurrentColor, ctx.Frame)
	if p.Dead() {
		fg = colorDeath
	}
	top := '▄'
	if p.Hanging() || p.Climbing() {
		top = '▀'
	}
	c0, r0, c1, r1 := ctx.View.Span(p.Body().Bounds())
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if !ctx.View.Visible(col, row) {
				continue
			}
			r := '█'
			if row == r0 {
				r = top
			}
			buf.SetFgOnly(col, row, r, fg, tcell.AttrNone)
		}
	}
	// Eye on the facing side
	eye := c0
	if p.Facing() == entity.FacingRight {
		eye = c1 - 1
	}
	if ctx.View.Visible(eye, r0+1) && r1-r0 > 1 {
		buf.SetWithBg(eye, r0+1, '•', RGBBlack, fg)
	}
	if r, afg, ok := accessoryGlyph(ctx.State.CurrentAccessory); ok && !p.Dead() {
		col := (c0 + c1 - 1) / 2
		if ctx.View.Visible(col, r0-1) {
			buf.SetFgOnly(col, r0-1, r, afg, tcell.AttrBold)
		}
	}
}

func accessoryGlyph(id string) (rune, RGB, bool) {
	switch id {
	case "flower":
		return '✿', colorFlower, true
	case "bow":
		return '∞', colorLives, true
	case "sunglasses":
		return '■', RGBBlack, true
	case "crown":
		return '♛', colorScore, true
	}
	return 0, RGB{}, false
}

// hazardRenderer draws rising water and the flood wall
type hazardRenderer struct{}

func (hazardRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	h := ctx.Session.Hazard()
	v := ctx.View
	switch h.Kind {
	case session.HazardRisingWater:
		_, surface := v.Cell(0, h.Line)
		_, deadly := v.Cell(0, h.Line+parameter.RisingWaterDepth)
		for row := max(surface, v.Top); row < v.Top+v.Rows; row++ {
			alpha := 0.45
			if row >= deadly {
				alpha = 0.8
			}
			for col := 0; col < v.Cols; col++ {
				buf.BlendBg(col, row, colorFlood, alpha)
				if row == surface && (int64(col)+ctx.Frame/6)%3 == 0 {
					buf.SetFgOnly(col, row, '≈', RGBWhite, tcell.AttrNone)
				}
			}
		}
	case session.HazardFlood:
		edge, _ := v.Cell(h.Line+parameter.FloodReach, 0)
		for row := v.Top; row < v.Top+v.Rows; row++ {
			for col := 0; col < min(edge, v.Cols); col++ {
				buf.BlendBg(col, row, colorFlood, 0.75)
			}
			if edge-1 >= 0 && edge-1 < v.Cols && (int64(row)+ctx.Frame/4)%2 == 0 {
				buf.SetFgOnly(edge-1, row, '≋', RGBWhite, tcell.AttrBold)
			}
		}
	}
}
