package render

import (
	"strings"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/engine"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func playingSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Mode:            engine.ModePlaying,
		Reason:          constants.ReasonCollision,
		Cols:            constants.DefaultCols,
		Rows:            constants.DefaultRows,
		Snake:           []engine.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		Dir:             engine.DirRight,
		Foods:           []engine.Food{{Pos: engine.Point{X: 10, Y: 10}, Kind: engine.FoodGreen}, {Pos: engine.Point{X: 12, Y: 3}, Kind: engine.FoodBomb}},
		Score:           7,
		HighScore:       12,
		Speed:           engine.SpeedMedium,
		Interval:        constants.SpeedMediumInterval,
		FoodSpeedFactor: 1.0,
		SnakeColor:      core.SnakeDefault,
		HeadColor:       core.SnakeDefault.Lighten(0.2),
	}
}

// screenText joins every buffer row for substring checks
func screenText(r *Renderer) string {
	_, h := r.buf.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = r.buf.Row(y)
	}
	return strings.Join(rows, "\n")
}

func TestRenderHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)
	r.Render(playingSnapshot())

	l, ok := newLayout(constants.DefaultCols, constants.DefaultRows, 80, 40)
	if !ok {
		t.Fatal("Expected 80x40 to fit the default board")
	}
	hud := r.buf.Row(l.oy - 1)
	if !strings.Contains(hud, "Score: 7   Best: 12") {
		t.Errorf("HUD row %q missing score line", hud)
	}
	if !strings.Contains(r.buf.Row(l.oy+l.rows), constants.Attribution) {
		t.Error("Attribution row missing")
	}

	primary, _, _, _ := screen.GetContent(l.ox, l.oy-1)
	if primary != 'S' {
		t.Errorf("Flushed HUD starts with %q, want 'S'", primary)
	}
	if r.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", r.Frames())
	}
}

func TestRenderNewBestFlash(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)

	snap := playingSnapshot()
	r.Render(snap)
	if strings.Contains(screenText(r), "NEW BEST!") {
		t.Error("NEW BEST shown without flash")
	}

	snap.NewBestFlash = constants.NewBestFlashTicks
	r.Render(snap)
	if !strings.Contains(screenText(r), "NEW BEST!") {
		t.Error("NEW BEST missing during flash")
	}
}

func TestRenderTitle(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)

	snap := playingSnapshot()
	snap.Mode = engine.ModeTitle
	snap.Speed = engine.SpeedFast
	snap.Snake = []engine.Point{{X: 0, Y: 0}}
	r.Render(snap)

	text := screenText(r)
	for _, want := range []string{
		constants.Title,
		"Best: 12",
		"Current Speed: FAST  (1/2/3 to change)",
		constants.TitlePrompt,
		constants.TitleControls,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Title screen missing %q", want)
		}
	}
	if strings.Contains(text, "Score: 7") {
		t.Error("HUD drawn on title screen")
	}
}

func TestRenderPausePanel(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)

	snap := playingSnapshot()
	snap.Mode = engine.ModePaused
	snap.FoodSpeedFactor = 1.2
	r.Render(snap)

	text := screenText(r)
	for _, want := range []string{
		"PAUSED",
		"+1  (Green Food)",
		"+5  (Purple Food)",
		"KO  (Red Bomb)",
		constants.PauseShuffle,
		"Food wander: 1.2x",
		constants.PauseSpeeds,
		constants.PauseControls,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Pause panel missing %q", want)
		}
	}
}

func TestRenderGameOverPanel(t *testing.T) {
	tests := []struct {
		name   string
		reason string
	}{
		{"collision", constants.ReasonCollision},
		{"bomb", constants.ReasonBomb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t, 80, 40)
			r := NewRenderer(screen)

			snap := playingSnapshot()
			snap.Mode = engine.ModeGameOver
			snap.Reason = tt.reason
			r.Render(snap)

			text := screenText(r)
			for _, want := range []string{tt.reason, "Final Score: 7    Best: 12", constants.GameOverTip} {
				if !strings.Contains(text, want) {
					t.Errorf("Game over panel missing %q", want)
				}
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	r := NewRenderer(screen)
	r.Render(playingSnapshot())

	if !strings.Contains(screenText(r), "Terminal too small") {
		t.Error("Expected too-small notice")
	}
}

func TestRenderResizeFollowsScreen(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)
	r.Render(playingSnapshot())

	screen.SetSize(100, 50)
	r.Render(playingSnapshot())
	if w, h := r.buf.Size(); w != 100 || h != 50 {
		t.Errorf("Buffer %dx%d, want 100x50", w, h)
	}
}

func TestRenderDoesNotMutateSnapshot(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)

	snap := playingSnapshot()
	snake := append([]engine.Point(nil), snap.Snake...)
	foods := append([]engine.Food(nil), snap.Foods...)
	r.Render(snap)

	for i := range snake {
		if snap.Snake[i] != snake[i] {
			t.Errorf("Snake[%d] changed: %v -> %v", i, snake[i], snap.Snake[i])
		}
	}
	for i := range foods {
		if snap.Foods[i] != foods[i] {
			t.Errorf("Foods[%d] changed", i)
		}
	}
}

func TestRenderHeadAndFood(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)
	snap := playingSnapshot()
	r.Render(snap)

	l, _ := newLayout(snap.Cols, snap.Rows, 80, 40)
	head := snap.Snake[0]
	eye := r.buf.Get(l.cellX(head.X)+1, l.cellY(head.Y))
	if eye.Rune != ':' {
		t.Errorf("Right-facing head eye %q, want ':'", eye.Rune)
	}
	if eye.Bg != snap.HeadColor {
		t.Errorf("Head bg %v, want %v", eye.Bg, snap.HeadColor)
	}

	grass := r.buf.Get(l.cellX(10), l.cellY(10))
	if grass.Rune != 'ʷ' || grass.Fg != RgbGrass {
		t.Errorf("Green food cell = %+v", grass)
	}
	bomb := r.buf.Get(l.cellX(12), l.cellY(3))
	if bomb.Rune != '●' || bomb.Fg != RgbBomb {
		t.Errorf("Bomb cell = %+v", bomb)
	}
}

func TestRenderTongueFlick(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)
	snap := playingSnapshot()
	l, _ := newLayout(snap.Cols, snap.Rows, 80, 40)
	ahead := snap.Snake[0].Add(snap.Dir)

	tests := []struct {
		tick int
		want bool
	}{
		{0, true},
		{constants.TongueShowTicks - 1, true},
		{constants.TongueShowTicks, false},
		{constants.TongueCycleTicks, true},
	}
	for _, tt := range tests {
		snap.AnimTick = tt.tick
		r.Render(snap)
		got := r.buf.Get(l.cellX(ahead.X), l.cellY(ahead.Y)).Fg == RgbTongue
		if got != tt.want {
			t.Errorf("tick %d: tongue %v, want %v", tt.tick, got, tt.want)
		}
	}
}

func TestRenderExplosionOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 40)
	r := NewRenderer(screen)

	snap := playingSnapshot()
	snap.Mode = engine.ModeExploding
	snap.Explosion = engine.Explosion{
		CenterX:   float64(20*constants.TileSize) + constants.TileSize/2,
		CenterY:   float64(20*constants.TileSize) + constants.TileSize/2,
		MaxFrames: constants.ExplosionMaxFrames,
		Particles: []engine.Particle{{X: 405, Y: 410, Life: 20}},
	}
	snap.HasExplosion = true
	r.Render(snap)

	l, _ := newLayout(snap.Cols, snap.Rows, 80, 40)
	center := r.buf.Get(l.cellX(20), l.cellY(20))
	if center.Bg == RgbBackground {
		t.Error("Explosion core did not tint the center cell")
	}
	if center.Rune != '*' {
		t.Errorf("Particle glyph %q, want '*'", center.Rune)
	}
	corner := r.buf.Get(l.cellX(0), l.cellY(0))
	if corner.Bg == RgbBackground {
		t.Error("Explosion tint missing at board corner")
	}
}

func TestSegmentRadius(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want float64
	}{
		{"single", 0, 1, segmentBaseRadius},
		{"head", 0, 10, segmentBaseRadius},
		{"tail", 9, 10, segmentBaseRadius * 0.65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentRadius(tt.i, tt.n); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("segmentRadius(%d, %d) = %f, want %f", tt.i, tt.n, got, tt.want)
			}
		})
	}
	if segmentRadius(5, 10) >= segmentRadius(4, 10) {
		t.Error("Radius must shrink towards the tail")
	}
}

func TestLayoutPixelMapping(t *testing.T) {
	l, ok := newLayout(30, 30, 80, 40)
	if !ok {
		t.Fatal("Expected fit")
	}
	if l.ox != 10 || l.oy != 5 {
		t.Errorf("Origin (%d,%d), want (10,5)", l.ox, l.oy)
	}

	px, py := l.pixelAt(l.cellX(3), l.cellY(4))
	tx, ty, ok := l.cellAt(px, py)
	if !ok || tx != l.cellX(3) || ty != l.cellY(4) {
		t.Errorf("Round trip gave (%d,%d,%v)", tx, ty, ok)
	}
	if _, _, ok := l.cellAt(-1, 5); ok {
		t.Error("Negative pixel mapped into the board")
	}
	if _, _, ok := l.cellAt(float64(30*constants.TileSize), 5); ok {
		t.Error("Pixel past the right edge mapped into the board")
	}

	if _, ok := newLayout(30, 30, 59, 40); ok {
		t.Error("59 columns cannot hold a 30-cell board")
	}
}
