package engine

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/input"
	"github.com/lixenwraith/snakeio/status"
	"github.com/lixenwraith/snakeio/vmath"
)

// Options wires a Game to its collaborators, nil fields fall back to inert defaults
type Options struct {
	Cols, Rows      int
	Speed           SpeedPreset
	FoodSpeedFactor float64

	Rand      *rand.Rand
	Clock     TimeProvider
	Scheduler Scheduler
	Audio     AudioPlayer
	Store     HighScoreStore
	Renderer  Renderer
	Status    *status.Registry
}

// Intent lookups, keyed by the input groups
var (
	directionIntents = map[input.Intent]Direction{
		input.IntentUp:    DirUp,
		input.IntentDown:  DirDown,
		input.IntentLeft:  DirLeft,
		input.IntentRight: DirRight,
	}
	speedIntents = map[input.Intent]SpeedPreset{
		input.IntentSpeedSlow:   SpeedSlow,
		input.IntentSpeedMedium: SpeedMedium,
		input.IntentSpeedFast:   SpeedFast,
	}
)

// Game owns all mutable game state
// Every method must be called from the goroutine running the game loop
type Game struct {
	cols, rows int

	mode   Mode
	reason string

	snake   Snake
	dir     Direction
	nextDir Direction
	foods   []Food

	score     int
	highScore int

	speed           SpeedPreset
	interval        time.Duration
	foodSpeedFactor float64

	snakeColor core.RGB
	headColor  core.RGB

	justAte      bool
	animTick     int
	newBestFlash int
	lastShuffle  time.Time

	explosion    *Explosion
	explodeCount int // Frames rendered by the current explosion

	session string

	rng       *rand.Rand
	clock     TimeProvider
	scheduler Scheduler
	audio     AudioPlayer
	store     HighScoreStore
	renderer  Renderer
	stats     gameStats
}

// NewGame creates a game on the title screen with the stored high score loaded
func NewGame(opts Options) *Game {
	cols, rows := opts.Cols, opts.Rows
	if cols < constants.MinGridDim {
		cols = constants.DefaultCols
	}
	if rows < constants.MinGridDim {
		rows = constants.DefaultRows
	}

	factor := opts.FoodSpeedFactor
	if factor == 0 {
		factor = constants.FoodSpeedFactorDefault
	}
	factor = vmath.RoundTo(vmath.Clamp(factor, constants.FoodSpeedFactorMin, constants.FoodSpeedFactorMax), 2)

	g := &Game{
		cols:            cols,
		rows:            rows,
		mode:            ModeTitle,
		reason:          constants.ReasonCollision,
		speed:           opts.Speed,
		interval:        opts.Speed.Interval(),
		foodSpeedFactor: factor,
		rng:             opts.Rand,
		clock:           opts.Clock,
		scheduler:       opts.Scheduler,
		audio:           opts.Audio,
		store:           opts.Store,
		renderer:        opts.Renderer,
		stats:           newGameStats(opts.Status),
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	if g.clock == nil {
		g.clock = NewMonotonicTimeProvider()
	}
	if g.scheduler == nil {
		g.scheduler = nopScheduler{}
	}
	if g.audio == nil {
		g.audio = &nopAudio{}
	}
	if g.store == nil {
		g.store = &memoryScore{}
	}
	if g.renderer == nil {
		g.renderer = nopRenderer{}
	}

	g.highScore = max(0, g.store.Load())
	g.stats.bestScore.Store(int64(g.highScore))
	g.stats.wander.Set(g.foodSpeedFactor)
	g.stats.mode.Store(g.mode.String())

	// Title backdrop: a single cell snake and one still food
	g.snake = NewSnake(Point{}, 1)
	g.dir, g.nextDir = DirRight, DirRight
	g.snakeColor = core.SnakeDefault
	g.headColor = core.SnakeDefault.Lighten(0.35)
	g.spawnFood(false)

	return g
}

// transition moves to mode to when the edge exists in the mode graph
func (g *Game) transition(to Mode) bool {
	if !CanTransition(g.mode, to) {
		log.Printf("game %s: rejected transition %s -> %s", g.session, g.mode, to)
		return false
	}
	g.mode = to
	g.stats.mode.Store(to.String())
	return true
}

// reset lays out a fresh board: centered snake heading right and a drifting food pair
func (g *Game) reset() {
	g.snake = NewSnake(Point{X: g.cols / 2, Y: g.rows / 2}, constants.StartLength)
	g.dir, g.nextDir = DirRight, DirRight
	g.score = 0
	g.justAte = false
	g.animTick = 0
	g.newBestFlash = 0
	g.explosion = nil
	g.explodeCount = 0
	g.reason = constants.ReasonCollision
	g.setSnakeColor(core.SnakeDefault)

	g.foods = g.foods[:0]
	for i := 0; i < constants.BaseFoodCount; i++ {
		g.spawnFood(true)
	}
	g.lastShuffle = g.clock.Now()
}

// StartGame begins a new session from title, pause or game over
func (g *Game) StartGame() {
	if !g.transition(ModePlaying) {
		return
	}

	g.reset()
	g.interval = g.speed.Interval()
	g.session = uuid.NewString()
	g.stats.sessions.Add(1)
	log.Printf("game %s: start speed=%s interval=%s wander=%.2f grid=%dx%d",
		g.session, g.speed, g.interval, g.foodSpeedFactor, g.cols, g.rows)

	g.scheduler.CancelFrame()
	g.scheduler.Reschedule(g.interval)
	g.audio.Play(core.SoundStart)
	g.draw()
}

// HandleIntent applies one input action, returns false when the loop should quit
func (g *Game) HandleIntent(in input.Intent) bool {
	switch in {
	case input.IntentNone:
		return true
	case input.IntentQuit:
		return false
	case input.IntentWanderSlower:
		g.adjustFoodSpeed(constants.FoodSpeedFactorStep, constants.TuneWanderSlower)
	case input.IntentWanderFaster:
		g.adjustFoodSpeed(-constants.FoodSpeedFactorStep, constants.TuneWanderFaster)
	}

	switch g.mode {
	case ModeTitle:
		return g.handleTitle(in)
	case ModeExploding:
		if in == input.IntentMute {
			g.audio.ToggleMute()
		}
	case ModeGameOver:
		return g.handleGameOver(in)
	case ModePaused:
		g.handlePaused(in)
	case ModePlaying:
		g.handlePlaying(in)
	}
	return true
}

func (g *Game) handleTitle(in input.Intent) bool {
	switch {
	case in == input.IntentEscape:
		return false
	case in.IsSpeed():
		g.speed = speedIntents[in]
		g.audio.Tune(g.speed.TuneFreq())
	case in == input.IntentMute:
		g.audio.ToggleMute()
	default:
		g.StartGame()
		return true
	}
	g.interval = g.speed.Interval()
	g.draw()
	return true
}

func (g *Game) handleGameOver(in input.Intent) bool {
	switch in {
	case input.IntentEscape:
		return false
	case input.IntentMute:
		g.audio.ToggleMute()
		g.draw()
	case input.IntentRestart, input.IntentPause:
		g.StartGame()
	}
	return true
}

func (g *Game) handlePaused(in input.Intent) {
	switch {
	case in == input.IntentMute:
		g.audio.ToggleMute()
	case in.IsSpeed():
		g.applySpeed(speedIntents[in])
	case in == input.IntentRestart:
		g.StartGame()
		return
	case in == input.IntentPause:
		g.resume()
		return
	default:
		return
	}
	g.draw()
}

func (g *Game) handlePlaying(in input.Intent) {
	switch {
	case in.IsDirection():
		g.queueDir(directionIntents[in])
	case in.IsSpeed():
		g.applySpeed(speedIntents[in])
	case in == input.IntentPause:
		g.pause()
	case in == input.IntentMute:
		g.audio.ToggleMute()
	}
}

// queueDir records the next turn; reversing onto the active direction is ignored
func (g *Game) queueDir(d Direction) {
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// applySpeed selects a preset; the tick is re-armed only while playing
func (g *Game) applySpeed(p SpeedPreset) {
	g.speed = p
	g.interval = p.Interval()
	if g.mode == ModePlaying {
		g.scheduler.Reschedule(g.interval)
	}
}

func (g *Game) pause() {
	if !g.transition(ModePaused) {
		return
	}
	g.scheduler.StopTick()
	g.audio.Play(core.SoundPause)
	g.draw()
}

func (g *Game) resume() {
	if !g.transition(ModePlaying) {
		return
	}
	g.scheduler.Reschedule(g.interval)
	g.audio.Play(core.SoundPause)
	g.draw()
}

// adjustFoodSpeed shifts the wander factor by delta and recomputes every cadence
func (g *Game) adjustFoodSpeed(delta, cue float64) {
	factor := vmath.Clamp(g.foodSpeedFactor+delta, constants.FoodSpeedFactorMin, constants.FoodSpeedFactorMax)
	g.foodSpeedFactor = vmath.RoundTo(factor, 2)
	g.recomputeFoodCadence()
	g.stats.wander.Set(g.foodSpeedFactor)
	g.audio.Tune(cue)
	if g.mode == ModePaused {
		g.draw()
	}
}

// setSnakeColor recolors the body and derives the lighter head
func (g *Game) setSnakeColor(c core.RGB) {
	g.snakeColor = c
	g.headColor = c.Lighten(0.35)
}

// updateScore persists a beaten high score; the stored value never decreases
func (g *Game) updateScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.stats.bestScore.Store(int64(g.highScore))
	if err := g.store.Save(g.highScore); err != nil {
		log.Printf("game %s: high score kept in memory: %v", g.session, err)
	}
	g.newBestFlash = constants.NewBestFlashTicks
	g.audio.Play(core.SoundNewBest)
}

// gameOver ends the session with reason and stops both timers
func (g *Game) gameOver(reason string) {
	if !g.transition(ModeGameOver) {
		return
	}
	g.reason = reason
	g.scheduler.StopTick()
	g.scheduler.CancelFrame()
	log.Printf("game %s: over reason=%q score=%d best=%d ticks=%d color=%s",
		g.session, reason, g.score, g.highScore, g.animTick, g.snakeColor.Hex())
	g.draw()
}

func (g *Game) draw() {
	g.renderer.Render(g.Snapshot())
}

// Redraw republishes the current state, used after a terminal resize
func (g *Game) Redraw() {
	g.draw()
}

// Accessors

func (g *Game) Mode() Mode { return g.mode }
func (g *Game) Score() int { return g.score }
func (g *Game) HighScore() int { return g.highScore }
func (g *Game) Speed() SpeedPreset { return g.speed }
func (g *Game) Interval() time.Duration { return g.interval }
func (g *Game) FoodSpeedFactor() float64 { return g.foodSpeedFactor }
func (g *Game) Session() string { return g.session }
func (g *Game) Reason() string { return g.reason }
func (g *Game) Dir() Direction { return g.dir }
func (g *Game) Muted() bool { return g.audio.IsMuted() }
