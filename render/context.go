package render

import (
	"math"

	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/session"
	"github.com/lixenwraith/xochi/status"
	"github.com/lixenwraith/xochi/vmath"
)

// Scene selects which screen is drawn
type Scene uint8

const (
	SceneMenu Scene = iota
	SceneIntro
	SceneWorldIntro
	ScenePlaying
	ScenePaused
	SceneEnding
	SceneCustomize
)

var sceneNames = map[string]Scene{
	"Menu":       SceneMenu,
	"Intro":      SceneIntro,
	"WorldIntro": SceneWorldIntro,
	"Playing":    ScenePlaying,
	"Paused":     ScenePaused,
	"Ending":     SceneEnding,
	"Customize":  SceneCustomize,
}

// SceneForState maps a flow state name to its scene
func SceneForState(name string) (Scene, bool) {
	s, ok := sceneNames[name]
	return s, ok
}

// HUDRows is the status area above the playfield
const HUDRows = 1

// Viewport projects world pixels onto terminal cells
// A column spans Scale pixels, a row twice that, matching the cell aspect
type Viewport struct {
	Origin vmath.Vec2
	Scale  float64
	Top    int
	Cols   int
	Rows   int
}

// NewViewport places the camera view below the HUD
func NewViewport(view vmath.Rect, scale float64, cols, rows int) Viewport {
	return Viewport{
		Origin: vmath.V(view.X, view.Y),
		Scale:  scale,
		Top:    HUDRows,
		Cols:   cols,
		Rows:   max(rows-HUDRows, 0),
	}
}

// WorldSize returns the pixel extent a cols x rows terminal shows
func WorldSize(scale float64, cols, rows int) (w, h float64) {
	return float64(cols) * scale, float64(max(rows-HUDRows, 1)) * 2 * scale
}

// Cell converts a world point to a screen cell
func (v Viewport) Cell(x, y float64) (col, row int) {
	col = int(math.Floor((x - v.Origin.X) / v.Scale))
	row = int(math.Floor((y-v.Origin.Y)/(2*v.Scale))) + v.Top
	return col, row
}

// Span converts a world rectangle to the half-open range of cells it touches, at least one
func (v Viewport) Span(r vmath.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.Cell(r.Left(), r.Top())
	// Far edges round up so a partially covered cell is included
	c1 = int(math.Ceil((r.Right() - v.Origin.X) / v.Scale))
	r1 = int(math.Ceil((r.Bottom()-v.Origin.Y)/(2*v.Scale))) + v.Top
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

// Visible reports whether the cell lies in the playfield
func (v Viewport) Visible(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= v.Top && row < v.Top+v.Rows
}

// Context is the per-frame snapshot renderers draw from
type Context struct {
	Scene   Scene
	Session *session.Session
	State   *progress.State
	Metrics *status.Registry
	View    Viewport
	Frame   int64
	Muted   bool

	// Banner is a transient message over the playfield (game over, world clear)
	Banner string
}
