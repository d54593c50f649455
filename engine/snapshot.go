package engine

import (
	"time"

	"github.com/lixenwraith/snakeio/core"
)

// Snapshot is a value copy of everything the renderer needs
// Slices are copied, mutating a Snapshot never reaches the Game
type Snapshot struct {
	Mode   Mode
	Reason string

	Cols, Rows int

	Snake []Point
	Dir   Direction
	Foods []Food

	Score     int
	HighScore int

	Speed           SpeedPreset
	Interval        time.Duration
	FoodSpeedFactor float64
	Muted           bool

	Explosion    Explosion
	HasExplosion bool

	AnimTick     int
	JustAte      bool
	NewBestFlash int

	SnakeColor core.RGB
	HeadColor  core.RGB
}

// Snapshot captures the current state
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:            g.mode,
		Reason:          g.reason,
		Cols:            g.cols,
		Rows:            g.rows,
		Snake:           g.snake.Cells(),
		Dir:             g.dir,
		Foods:           make([]Food, len(g.foods)),
		Score:           g.score,
		HighScore:       g.highScore,
		Speed:           g.speed,
		Interval:        g.interval,
		FoodSpeedFactor: g.foodSpeedFactor,
		Muted:           g.audio.IsMuted(),
		AnimTick:        g.animTick,
		JustAte:         g.justAte,
		NewBestFlash:    g.newBestFlash,
		SnakeColor:      g.snakeColor,
		HeadColor:       g.headColor,
	}
	copy(snap.Foods, g.foods)
	if g.explosion != nil {
		snap.Explosion = g.explosion.clone()
		snap.HasExplosion = true
	}
	return snap
}
