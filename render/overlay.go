package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/engine"
	"github.com/lixenwraith/snakeio/vmath"
)

// legendRow pairs a food swatch with its description
type legendRow struct {
	kind engine.FoodKind
	text string
}

var legend = []legendRow{
	{engine.FoodGreen, "+1  (Green Food)"},
	{engine.FoodPurple, "+5  (Purple Food)"},
	{engine.FoodBomb, "KO  (Red Bomb)"},
}

func scoreLine(snap engine.Snapshot) string {
	return fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.HighScore)
}

func wanderLine(factor float64) string {
	return fmt.Sprintf("Food wander: %.1fx   ([ slower, ] faster)", factor)
}

func (r *Renderer) drawHUD(snap engine.Snapshot, l layout) {
	y := l.oy - 1
	x := l.ox + r.buf.DrawText(l.ox, y, scoreLine(snap), RgbText, tcell.AttrBold)
	if snap.Muted {
		r.buf.DrawText(x+3, y, "[muted]", RgbTextDim, tcell.AttrNone)
	}

	if snap.NewBestFlash > 0 {
		a := vmath.Clamp(float64(snap.NewBestFlash)/constants.NewBestFlashTicks, 0, 1)
		text := "NEW BEST!"
		fg := RgbBackground.Blend(RgbHighlight, a)
		r.buf.DrawText(l.ox+l.width-len(text), y, text, fg, tcell.AttrBold)
	}
}

func (r *Renderer) drawTitle(snap engine.Snapshot, l layout) {
	cx, cy := l.centerX(), l.centerY()
	b := r.buf
	b.DrawCentered(cx, cy-6, constants.Title, RgbHighlight, tcell.AttrBold)
	b.DrawCentered(cx, cy-3, fmt.Sprintf("Best: %d", snap.HighScore), RgbText, tcell.AttrNone)
	b.DrawCentered(cx, cy-1, fmt.Sprintf("Current Speed: %s  (1/2/3 to change)", strings.ToUpper(snap.Speed.String())), RgbText, tcell.AttrNone)
	b.DrawCentered(cx, cy, wanderLine(snap.FoodSpeedFactor), RgbTextDim, tcell.AttrNone)
	b.DrawCentered(cx, cy+2, constants.TitleControls, RgbTextDim, tcell.AttrNone)
	b.DrawCentered(cx, cy+5, constants.TitlePrompt, RgbText, tcell.AttrBold)
	if snap.Muted {
		b.DrawCentered(cx, cy+7, "Sound: off", RgbTextDim, tcell.AttrNone)
	}
}

// drawPanel fills a bordered box centered on the board and returns its top-left corner
func (r *Renderer) drawPanel(l layout, w, h int) (int, int) {
	px := l.centerX() - w/2
	py := l.centerY() - h/2
	r.buf.FillRect(px, py, w, h, RgbPanel)

	for x := px + 1; x < px+w-1; x++ {
		r.buf.SetFgOnly(x, py, '─', RgbPanelEdge, tcell.AttrNone)
		r.buf.SetFgOnly(x, py+h-1, '─', RgbPanelEdge, tcell.AttrNone)
	}
	for y := py + 1; y < py+h-1; y++ {
		r.buf.SetFgOnly(px, y, '│', RgbPanelEdge, tcell.AttrNone)
		r.buf.SetFgOnly(px+w-1, y, '│', RgbPanelEdge, tcell.AttrNone)
	}
	r.buf.SetFgOnly(px, py, '┌', RgbPanelEdge, tcell.AttrNone)
	r.buf.SetFgOnly(px+w-1, py, '┐', RgbPanelEdge, tcell.AttrNone)
	r.buf.SetFgOnly(px, py+h-1, '└', RgbPanelEdge, tcell.AttrNone)
	r.buf.SetFgOnly(px+w-1, py+h-1, '┘', RgbPanelEdge, tcell.AttrNone)
	return px, py
}

// drawLegend writes the food legend rows starting at y, centered on cx
func (r *Renderer) drawLegend(cx, y int) {
	width := 0
	for _, row := range legend {
		width = max(width, 2+runewidth.StringWidth(row.text))
	}
	x := cx - width/2
	for i, row := range legend {
		r.buf.SetFgOnly(x, y+i, '■', FoodColor(row.kind), tcell.AttrNone)
		r.buf.DrawText(x+2, y+i, row.text, RgbText, tcell.AttrNone)
	}
}

func (r *Renderer) drawPause(snap engine.Snapshot, l layout) {
	r.buf.Darken(l.ox, l.oy, l.width, l.rows, 0.4)
	_, py := r.drawPanel(l, constants.PausePanelWidth, constants.PausePanelHeight)
	cx := l.centerX()
	b := r.buf
	b.DrawCentered(cx, py+1, "PAUSED", RgbHighlight, tcell.AttrBold)
	b.DrawCentered(cx, py+3, scoreLine(snap), RgbText, tcell.AttrNone)
	r.drawLegend(cx, py+5)
	b.DrawCentered(cx, py+9, constants.PauseShuffle, RgbTextDim, tcell.AttrNone)
	b.DrawCentered(cx, py+10, wanderLine(snap.FoodSpeedFactor), RgbText, tcell.AttrNone)
	b.DrawCentered(cx, py+12, constants.PauseSpeeds, RgbTextDim, tcell.AttrNone)
	b.DrawCentered(cx, py+13, constants.PauseControls, RgbTextDim, tcell.AttrNone)
}

func (r *Renderer) drawGameOver(snap engine.Snapshot, l layout) {
	r.buf.Darken(l.ox, l.oy, l.width, l.rows, 0.55)
	_, py := r.drawPanel(l, constants.GameOverPanelWidth, constants.GameOverPanelHeight)
	cx := l.centerX()
	b := r.buf

	reasonColor := RgbHighlight
	if snap.Reason == constants.ReasonBomb {
		reasonColor = RgbBomb
	}
	b.DrawCentered(cx, py+1, snap.Reason, reasonColor, tcell.AttrBold)
	b.DrawCentered(cx, py+3, fmt.Sprintf("Final Score: %d    Best: %d", snap.Score, snap.HighScore), RgbText, tcell.AttrNone)
	b.DrawCentered(cx, py+5, constants.GameOverTip, RgbTextDim, tcell.AttrNone)
	r.drawLegend(cx, py+7)
}

// drawExplosion tints the board, grows a core and a ring, then draws fading particles
func (r *Renderer) drawExplosion(e engine.Explosion, l layout) {
	t := e.Progress()
	alpha := 0.8 * (1 - t)
	radius := 6 + t*28
	ringWidth := float64(pxPerColumn)

	for ty := l.oy; ty < l.oy+l.rows; ty++ {
		for tx := l.ox; tx < l.ox+l.width; tx++ {
			r.buf.Set(tx, ty, 0, RgbExplosionTint, RgbExplosionTint, BlendAlphaBg, alpha*0.6)

			px, py := l.pixelAt(tx, ty)
			d := math.Hypot(px-e.CenterX, py-e.CenterY)
			switch {
			case d <= radius*0.5:
				r.buf.Set(tx, ty, 0, RgbExplosionCore, RgbExplosionCore, BlendScreenBg, alpha)
			case math.Abs(d-radius) <= ringWidth:
				r.buf.Set(tx, ty, 0, RgbExplosionRing, RgbExplosionRing, BlendMaxBg, alpha)
			}
		}
	}

	for _, p := range e.Particles {
		if !p.Alive() {
			continue
		}
		tx, ty, ok := l.cellAt(p.X, p.Y)
		if !ok {
			continue
		}
		a := vmath.Clamp(float64(p.Life)/20, 0, 1)
		c := core.RGB{R: 255, G: uint8(180 + 60*(1-a)), B: 80}
		glyph := '·'
		if a > 0.5 {
			glyph = '*'
		}
		r.buf.Set(tx, ty, glyph, c, c, BlendAlphaFg, 0.9*a)
	}
}
