package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xochi/parameter"
)

// hudRenderer draws the status row; boss levels add the boss health and race clock on the right
type hudRenderer struct{}

func (hudRenderer) Render(ctx Context, buf *RenderBuffer) {
	if !inLevel(ctx) || ctx.State == nil {
		return
	}
	w, _ := buf.Size()
	buf.FillBg(0, 0, w, HUDRows, colorHUDBg)

	st := ctx.State
	d := ctx.Session.Level()
	x := buf.Text(1, 0, fmt.Sprintf("%d-%d %s", d.World.Number, d.Number, d.Name), colorText, tcell.AttrBold)
	x = buf.Text(x+2, 0, fmt.Sprintf("%06d", st.Score), colorScore, tcell.AttrBold)
	x = buf.Text(x+2, 0, fmt.Sprintf("♥%d", st.Lives), colorLives, tcell.AttrNone)
	x = buf.Text(x+2, 0, fmt.Sprintf("✿%d/%d", st.Flowers, parameter.FlowersPerLife), colorFlower, tcell.AttrNone)
	x = buf.Text(x+2, 0, fmt.Sprintf("★%d", len(st.Stars)), colorStar, tcell.AttrNone)
	x = buf.Text(x+2, 0, fmt.Sprintf("⇑%d", st.SuperJumps), colorText, tcell.AttrNone)
	x = buf.Text(x+2, 0, fmt.Sprintf("ϟ%d", st.MaceAttacks), colorThunder, tcell.AttrNone)

	if ctx.Muted {
		buf.Text(x+2, 0, "muted", colorDim, tcell.AttrNone)
	}
	if b := ctx.Session.Boss(); b != nil {
		label := fmt.Sprintf("DARK XOCHI %s%s %ds", strings.Repeat("■", b.Health()),
			strings.Repeat("□", b.MaxHealth()-b.Health()), b.TimeLeft())
		buf.Text(w-utf8.RuneCountInString(label)-1, 0, label, colorTell, tcell.AttrBold)
		return
	}
	if ctx.Metrics != nil {
		deaths := ctx.Metrics.Ints.Get("session.deaths").Load()
		label := fmt.Sprintf("deaths %d", deaths)
		buf.Text(w-len(label)-1, 0, label, colorDim, tcell.AttrNone)
	}
}
