package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xochi/entity"
	"github.com/lixenwraith/xochi/vmath"
)

// combatRenderer draws Dark Xochi and every shot in flight
type combatRenderer struct{}

func (combatRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) {
		return
	}
	if b := ctx.Session.Boss(); b != nil {
		r, fg, attrs := bossGlyph(b, ctx.Frame)
		fill(ctx, buf, b.Bounds(), r, fg, attrs)
	}
	for _, p := range ctx.Session.Projectiles() {
		if p.Spent() {
			continue
		}
		col, row := ctx.View.Cell(p.Pos.X, p.Pos.Y)
		if !ctx.View.Visible(col, row) {
			continue
		}
		if p.Hostile {
			buf.SetFgOnly(col, row, '•', colorFlyer, tcell.AttrBold)
		} else {
			buf.SetFgOnly(col, row, 'ϟ', colorThunder, tcell.AttrBold)
		}
	}
}

// bossGlyph shows the attack cycle: a red tell before each attack, a dim body while tired
func bossGlyph(b *entity.Boss, frame int64) (rune, RGB, tcell.AttrMask) {
	switch {
	case !b.Alive():
		return 'x', colorDeath, tcell.AttrNone
	case b.Invulnerable() && frame%6 < 3:
		return 'D', colorBanner, tcell.AttrBold
	}
	switch b.Phase() {
	case entity.BossTelegraph:
		if frame%8 < 4 {
			return '!', colorTell, tcell.AttrBold
		}
		return 'D', colorTell, tcell.AttrBold
	case entity.BossAttack:
		return 'D', colorTell, tcell.AttrBold | tcell.AttrReverse
	case entity.BossRecover:
		return 'd', Scale(colorBoss, 0.6), tcell.AttrNone
	}
	return 'D', colorBoss, tcell.AttrBold
}

func fill(ctx Context, buf *RenderBuffer, r vmath.Rect, glyph rune, fg RGB, attrs tcell.AttrMask) {
	c0, r0, c1, r1 := ctx.View.Span(r)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if ctx.View.Visible(col, row) {
				buf.SetFgOnly(col, row, glyph, fg, attrs)
			}
		}
	}
}
