package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/engine"
)

// Renderer draws engine snapshots onto a tcell screen
// It owns its buffer and never reaches back into the game
type Renderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	frames int
}

var _ engine.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
	}
}

// Render composes snap and flushes it to the screen
func (r *Renderer) Render(snap engine.Snapshot) {
	w, h := r.screen.Size()
	r.compose(snap, w, h)
	r.buf.FlushToScreen(r.screen)
	r.frames++
}

// Frames returns the number of flushed frames
func (r *Renderer) Frames() int { return r.frames }

func (r *Renderer) compose(snap engine.Snapshot, w, h int) {
	if bw, bh := r.buf.Size(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	l, ok := newLayout(snap.Cols, snap.Rows, w, h)
	if !ok {
		r.drawTooSmall(snap, w, h)
		return
	}

	r.drawBoard(l)
	r.drawFoods(snap, l)

	if snap.Mode == engine.ModeTitle {
		r.buf.Darken(l.ox, l.oy, l.width, l.rows, 0.4)
		r.drawTitle(snap, l)
		r.drawAttribution(l)
		return
	}

	r.drawSnake(snap, l)
	r.drawHUD(snap, l)

	switch snap.Mode {
	case engine.ModePaused:
		r.drawPause(snap, l)
	case engine.ModeExploding:
		if snap.HasExplosion {
			r.drawExplosion(snap.Explosion, l)
		}
	case engine.ModeGameOver:
		r.drawGameOver(snap, l)
	}
	r.drawAttribution(l)
}

func (r *Renderer) drawTooSmall(snap engine.Snapshot, w, h int) {
	l := layout{cols: snap.Cols, rows: snap.Rows}
	nw, nh := l.needed()
	r.buf.DrawCentered(w/2, h/2-1, "Terminal too small", RgbText, tcell.AttrBold)
	r.buf.DrawCentered(w/2, h/2, fmt.Sprintf("need %dx%d", nw, nh), RgbTextDim, tcell.AttrNone)
}

func (r *Renderer) drawAttribution(l layout) {
	text := constants.Attribution
	x := l.ox + l.width - len(text)
	r.buf.DrawText(max(l.ox, x), l.oy+l.rows, text, RgbTextDim, tcell.AttrDim)
}
