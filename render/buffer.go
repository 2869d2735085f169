package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// RenderBuffer is a compositor over a cell array with touched tracking
// Untouched cells get the frame's default background on flush
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
	defBg   RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBWhite}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// SetDefaultBackground sets the color untouched cells flush with
func (b *RenderBuffer) SetDefaultBackground(bg RGB) {
	b.defBg = bg
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	c := b.cells[y*b.width+x]
	if !b.touched[y*b.width+x] {
		c.Bg = b.defBg
	}
	return c
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFgOnly writes rune, foreground and attrs while preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background while preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// BlendBg tints the background toward bg by alpha
func (b *RenderBuffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	cur := b.cells[idx].Bg
	if !b.touched[idx] {
		cur = b.defBg
	}
	b.cells[idx].Bg = Blend(cur, bg, alpha)
	b.touched[idx] = true
}

// Text writes s left to right from x, clipped at the right edge; returns the next column
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg, attrs)
		x++
	}
	return x
}

// TextCentered writes s centered on row y
func (b *RenderBuffer) TextCentered(y int, s string, fg RGB, attrs tcell.AttrMask) {
	n := 0
	for range s {
		n++
	}
	b.Text((b.width-n)/2, y, s, fg, attrs)
}

// FillBg paints the background of a cell rectangle
func (b *RenderBuffer) FillBg(x0, y0, x1, y1 int, bg RGB) {
	for y := max(y0, 0); y < min(y1, b.height); y++ {
		for x := max(x0, 0); x < min(x1, b.width); x++ {
			b.SetBgOnly(x, y, bg)
		}
	}
}

// Flush writes the buffer to the screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	def := tcell.StyleDefault
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			bg := c.Bg
			if !b.touched[idx] {
				bg = b.defBg
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := def.Foreground(c.Fg.Color()).Background(bg.Color()).Attributes(c.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
