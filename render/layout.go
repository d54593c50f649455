package render

import "github.com/lixenwraith/snakeio/constants"

// pxPerColumn is the logical pixel width of one terminal column
const pxPerColumn = constants.TileSize / constants.CellWidth

// layout places the board inside the screen, one HUD row above and one attribution row below
type layout struct {
	ox, oy     int // Top-left terminal cell of the board
	cols, rows int
	width      int // Board width in terminal columns
}

// newLayout centers a cols x rows board, ok is false when the screen cannot hold it
func newLayout(cols, rows, screenW, screenH int) (layout, bool) {
	width := cols * constants.CellWidth
	if screenW < width || screenH < rows+2 {
		return layout{}, false
	}
	return layout{
		ox:    (screenW - width) / 2,
		oy:    1 + (screenH-rows-2)/2,
		cols:  cols,
		rows:  rows,
		width: width,
	}, true
}

// needed returns the minimum screen size for the board
func (l layout) needed() (int, int) {
	return l.cols * constants.CellWidth, l.rows + 2
}

func (l layout) cellX(x int) int { return l.ox + x*constants.CellWidth }

func (l layout) cellY(y int) int { return l.oy + y }

func (l layout) centerX() int { return l.ox + l.width/2 }

func (l layout) centerY() int { return l.oy + l.rows/2 }

func (l layout) inBoard(x, y int) bool {
	return x >= 0 && x < l.cols && y >= 0 && y < l.rows
}

// pixelAt returns the logical pixel center of a terminal cell inside the board
func (l layout) pixelAt(tx, ty int) (float64, float64) {
	px := float64((tx-l.ox)*pxPerColumn) + pxPerColumn/2.0
	py := float64((ty-l.oy)*constants.TileSize) + constants.TileSize/2.0
	return px, py
}

// cellAt maps a logical pixel to its terminal cell
func (l layout) cellAt(px, py float64) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	tx := l.ox + int(px)/pxPerColumn
	ty := l.oy + int(py)/constants.TileSize
	if tx >= l.ox+l.width || ty >= l.oy+l.rows {
		return 0, 0, false
	}
	return tx, ty, true
}
