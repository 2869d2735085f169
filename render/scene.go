package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xochi/level"
)

var introLines = []string{
	"The canals of Xochimilco wake in the dawn mist.",
	"The festival is coming, but the little ones have drifted away",
	"on the trajineras, carried off by gulls and herons.",
	"",
	"Xochi sets out along the canals to bring every baby home.",
}

var endingLines = []string{
	"¡Felicidades!",
	"",
	"Every baby is home and the Grand Festival begins.",
	"Lanterns glow over the water, and the trajineras sing.",
}

// sceneRenderer draws the non-level screens and the pause and banner overlays
type sceneRenderer struct{}

func (sceneRenderer) Render(ctx Context, buf *RenderBuffer) {
	_, h := buf.Size()
	switch ctx.Scene {
	case SceneMenu:
		renderMenu(ctx, buf, h)
	case SceneIntro:
		renderLines(buf, h, "XOCHI", introLines)
	case SceneWorldIntro:
		renderWorldIntro(ctx, buf, h)
	case SceneEnding:
		renderEnding(ctx, buf, h)
	case SceneCustomize:
		renderCustomize(ctx, buf, h)
	case ScenePaused:
		dim(buf)
		buf.TextCentered(h/2-1, "PAUSED", colorBanner, tcell.AttrBold)
		buf.TextCentered(h/2+1, "[Esc/P] resume   [Enter] quit to menu", colorText, tcell.AttrNone)
		buf.TextCentered(h/2+2, "[1-6] jump to a reached world", colorDim, tcell.AttrNone)
	}
	if ctx.Banner != "" {
		buf.TextCentered(h/2-3, ctx.Banner, colorBanner, tcell.AttrBold|tcell.AttrReverse)
	}
}

func renderMenu(ctx Context, buf *RenderBuffer, h int) {
	y := max(h/2-5, 0)
	buf.TextCentered(y, "X O C H I", colorTitle, tcell.AttrBold)
	buf.TextCentered(y+1, "a canal platformer", colorDim, tcell.AttrNone)
	if ctx.State == nil {
		return
	}
	st := ctx.State
	buf.TextCentered(y+3, fmt.Sprintf("high score %06d   stars %d", st.HighScore, len(st.Stars)), colorScore, tcell.AttrNone)
	buf.TextCentered(y+5, "[N] new game", colorText, tcell.AttrNone)
	if st.HasProgress() {
		buf.TextCentered(y+6, fmt.Sprintf("[C] continue at level %d", st.CurrentLevel), colorText, tcell.AttrNone)
	}
	buf.TextCentered(y+7, fmt.Sprintf("[G] difficulty: %s   [U] customize   [1-6] world select", st.Difficulty), colorText, tcell.AttrNone)
	buf.TextCentered(y+9, "arrows/WASD move  space jump  x run  f super jump  v mace", colorDim, tcell.AttrNone)
	buf.TextCentered(y+10, "[M] mute  [Q] quit", colorDim, tcell.AttrNone)
}

func renderLines(buf *RenderBuffer, h int, title string, lines []string) {
	y := max(h/2-len(lines)/2-2, 0)
	buf.TextCentered(y, title, colorTitle, tcell.AttrBold)
	for i, l := range lines {
		buf.TextCentered(y+2+i, l, colorText, tcell.AttrNone)
	}
	buf.TextCentered(y+3+len(lines), "[Enter] continue", colorDim, tcell.AttrNone)
}

func renderWorldIntro(ctx Context, buf *RenderBuffer, h int) {
	n := 1
	if ctx.State != nil {
		n = ctx.State.CurrentLevel
	}
	w := level.WorldInfo(level.WorldForLevel(n))
	pal := PaletteFor(w.Number)
	buf.TextCentered(h/2-2, fmt.Sprintf("WORLD %d", w.Number), pal.BoatTrim, tcell.AttrBold)
	buf.TextCentered(h/2, w.Name, colorText, tcell.AttrBold)
	buf.TextCentered(h/2+1, w.Subtitle, colorDim, tcell.AttrItalic)
	buf.TextCentered(h/2+3, "[Enter] continue", colorDim, tcell.AttrNone)
}

func renderEnding(ctx Context, buf *RenderBuffer, h int) {
	renderLines(buf, h, "THE GRAND FESTIVAL", endingLines)
	if ctx.State != nil {
		buf.TextCentered(h/2+len(endingLines)+2, fmt.Sprintf("score %06d   stars %d   babies %d",
			ctx.State.Score, len(ctx.State.Stars), len(ctx.State.RescuedBabies)), colorScore, tcell.AttrNone)
	}
}

func renderCustomize(ctx Context, buf *RenderBuffer, h int) {
	y := max(h/2-5, 0)
	buf.TextCentered(y, "CUSTOMIZE", colorTitle, tcell.AttrBold)
	if ctx.State == nil {
		return
	}
	st := ctx.State
	accessory := st.CurrentAccessory
	if accessory == "" {
		accessory = "none"
	}
	preview := "▄█▄"
	if r, _, ok := accessoryGlyph(st.CurrentAccessory); ok {
		buf.TextCentered(y+2, string(r), colorText, tcell.AttrBold)
	}
	buf.TextCentered(y+3, preview, PlayerColor(st.CurrentColor, ctx.Frame), tcell.AttrBold)
	buf.TextCentered(y+5, fmt.Sprintf("[R] color: %s  (%d unlocked)", st.CurrentColor, len(st.UnlockedColors)), colorText, tcell.AttrNone)
	buf.TextCentered(y+6, fmt.Sprintf("[O] accessory: %s  (%d unlocked)", accessory, len(st.UnlockedAccessories)), colorText, tcell.AttrNone)
	buf.TextCentered(y+8, fmt.Sprintf("stars %d: collect more to unlock", len(st.Stars)), colorStar, tcell.AttrNone)
	buf.TextCentered(y+10, "[Enter] back", colorDim, tcell.AttrNone)
}

// dim darkens the playfield behind an overlay
func dim(buf *RenderBuffer) {
	w, h := buf.Size()
	for y := HUDRows; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.BlendBg(x, y, colorOverlay, 0.5)
		}
	}
}
