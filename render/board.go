package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/engine"
)

const (
	segmentBaseRadius = 9.0
	segmentMinRadius  = 4.0
	eatPulseAlpha     = 0.16
)

func (r *Renderer) drawBoard(l layout) {
	r.buf.FillRect(l.ox, l.oy, l.width, l.rows, RgbBackground)
	for y := 0; y < l.rows; y++ {
		for x := 0; x < l.cols; x++ {
			r.buf.SetFgOnly(l.cellX(x), l.cellY(y), '·', RgbGrid, tcell.AttrNone)
		}
	}
}

func (r *Renderer) drawFoods(snap engine.Snapshot, l layout) {
	for _, f := range snap.Foods {
		if !l.inBoard(f.Pos.X, f.Pos.Y) {
			continue
		}
		x, y := l.cellX(f.Pos.X), l.cellY(f.Pos.Y)
		switch f.Kind {
		case engine.FoodGreen:
			r.glow(x, y, RgbGrass, 0.12)
			r.buf.SetFgOnly(x, y, 'ʷ', RgbGrass, tcell.AttrBold)
			r.buf.SetFgOnly(x+1, y, '"', RgbGrass, tcell.AttrBold)
		case engine.FoodPurple:
			r.glow(x, y, RgbGrape, 0.12)
			r.buf.SetFgOnly(x, y, 'ꝏ', RgbGrape, tcell.AttrBold)
			r.buf.SetFgOnly(x+1, y, '\'', RgbStem, tcell.AttrNone)
		case engine.FoodBomb:
			r.glow(x, y, RgbBomb, 0.08)
			r.buf.SetFgOnly(x, y, '●', RgbBomb, tcell.AttrNone)
			spark, glyph := RgbSpark2, '+'
			if (math.Sin(float64(snap.AnimTick)*0.4)+1)/2 > 0.5 {
				spark, glyph = RgbSpark1, '*'
			}
			r.buf.SetFgOnly(x+1, y, glyph, spark, tcell.AttrBold)
		default:
			r.buf.SetFgOnly(x, y, '?', RgbUnknown, tcell.AttrNone)
		}
	}
}

// glow tints both columns of a grid cell
func (r *Renderer) glow(x, y int, c core.RGB, alpha float64) {
	for dx := 0; dx < constants.CellWidth; dx++ {
		r.buf.Set(x+dx, y, 0, c, c, BlendAlphaBg, alpha)
	}
}

// segmentRadius shrinks segments towards the tail
func segmentRadius(i, n int) float64 {
	if n <= 1 {
		return segmentBaseRadius
	}
	t := float64(i) / float64(n-1)
	return max(segmentMinRadius, segmentBaseRadius*(0.65+0.35*(1-t)))
}

func (r *Renderer) drawSnake(snap engine.Snapshot, l layout) {
	n := len(snap.Snake)
	if n == 0 {
		return
	}

	// Tail first so the head overdraws
	for i := n - 1; i >= 1; i-- {
		p := snap.Snake[i]
		if !l.inBoard(p.X, p.Y) {
			continue
		}
		radius := segmentRadius(i, n)
		shade := 0.55 + 0.45*radius/segmentBaseRadius
		fg := snap.SnakeColor.Scale(shade)
		bg := RgbBackground.Blend(fg, 0.3)
		glyph := '•'
		if radius >= 7.5 {
			glyph = '●'
		}
		x, y := l.cellX(p.X), l.cellY(p.Y)
		r.buf.SetWithBg(x, y, glyph, fg, bg)
		r.buf.SetWithBg(x+1, y, glyph, fg, bg)
	}

	r.drawHead(snap, l)
	if snap.Mode == engine.ModePlaying && snap.AnimTick%constants.TongueCycleTicks < constants.TongueShowTicks {
		r.drawTongue(snap, l)
	}
}

func (r *Renderer) drawHead(snap engine.Snapshot, l layout) {
	head := snap.Snake[0]
	if !l.inBoard(head.X, head.Y) {
		return
	}
	bg := snap.HeadColor
	if snap.JustAte {
		bg = bg.Blend(core.RGBWhite, eatPulseAlpha)
	}

	left, right := ' ', ' '
	switch snap.Dir {
	case engine.DirRight:
		right = ':'
	case engine.DirLeft:
		left = ':'
	case engine.DirUp:
		left, right = '˙', '˙'
	case engine.DirDown:
		left, right = '.', '.'
	}
	x, y := l.cellX(head.X), l.cellY(head.Y)
	r.buf.SetWithBg(x, y, left, RgbEye, bg)
	r.buf.SetWithBg(x+1, y, right, RgbEye, bg)
}

func (r *Renderer) drawTongue(snap engine.Snapshot, l layout) {
	ahead := snap.Snake[0].Add(snap.Dir)
	if !l.inBoard(ahead.X, ahead.Y) {
		return
	}
	for _, f := range snap.Foods {
		if f.Pos == ahead {
			return
		}
	}

	var glyphs [2]rune
	switch snap.Dir {
	case engine.DirRight:
		glyphs = [2]rune{'-', '<'}
	case engine.DirLeft:
		glyphs = [2]rune{'>', '-'}
	case engine.DirUp:
		glyphs = [2]rune{'\\', '/'}
	case engine.DirDown:
		glyphs = [2]rune{'/', '\\'}
	default:
		return
	}
	x, y := l.cellX(ahead.X), l.cellY(ahead.Y)
	r.buf.SetFgOnly(x, y, glyphs[0], RgbTongue, tcell.AttrNone)
	r.buf.SetFgOnly(x+1, y, glyphs[1], RgbTongue, tcell.AttrNone)
}
