package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snakeio/core"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    core.RGB
	Bg    core.RGB
	Attrs tcell.AttrMask
}

// RenderBuffer is a compositor backed by a Cell array with dirty tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
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

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) { return b.width, b.height }

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: RgbText, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg core.RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if mainRune != 0 {
		dst.Rune = mainRune
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
		b.touched[idx] = true
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg core.RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// Darken scales fg and bg of a rectangle, clipped to the buffer
func (b *RenderBuffer) Darken(x0, y0, w, h int, factor float64) {
	for y := max(0, y0); y < min(b.height, y0+h); y++ {
		for x := max(0, x0); x < min(b.width, x0+w); x++ {
			idx := y*b.width + x
			b.cells[idx].Fg = b.cells[idx].Fg.Scale(factor)
			b.cells[idx].Bg = b.cells[idx].Bg.Scale(factor)
			b.touched[idx] = true
		}
	}
}

// FillRect paints a solid background rectangle and clears its glyphs
func (b *RenderBuffer) FillRect(x0, y0, w, h int, bg core.RGB) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			b.SetWithBg(x, y, ' ', RgbText, bg)
		}
	}
}

// DrawText writes s from x, advancing by display width, and returns the columns used
// Background is preserved
func (b *RenderBuffer) DrawText(x, y int, s string, fg core.RGB, attrs tcell.AttrMask) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFgOnly(col, y, r, fg, attrs)
		for pad := 1; pad < w; pad++ {
			b.SetFgOnly(col+pad, y, 0, fg, attrs)
		}
		col += w
	}
	return col - x
}

// DrawCentered writes s centered on column cx
func (b *RenderBuffer) DrawCentered(cx, y int, s string, fg core.RGB, attrs tcell.AttrMask) {
	b.DrawText(cx-runewidth.StringWidth(s)/2, y, s, fg, attrs)
}

// Row returns the runes of row y as a string, empty cells as spaces
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Rune)
	}
	return string(out)
}

// ===== OUTPUT =====

// finalize sets default background to untouched cells before Flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		skip := false
		for x, c := range row {
			// Second half of a wide glyph
			if skip {
				skip = false
				continue
			}
			r := c.Rune
			skip = runewidth.RuneWidth(r) == 2
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(ToTcell(c.Fg)).
				Background(ToTcell(c.Bg)).
				Attributes(c.Attrs)
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
