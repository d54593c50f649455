package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/status"
)

// AudioPlayer defines the minimal audio interface used by the game
type AudioPlayer interface {
	Play(core.SoundType) bool
	Tune(freq float64) bool
	ToggleMute() bool
	IsMuted() bool
}

// HighScoreStore is the single durable score slot
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// Renderer draws an immutable view of the game
type Renderer interface {
	Render(snap Snapshot)
}

// nopAudio is used when no player is wired
type nopAudio struct {
	muted bool
}

func (a *nopAudio) Play(core.SoundType) bool { return false }
func (a *nopAudio) Tune(float64) bool { return false }
func (a *nopAudio) IsMuted() bool { return a.muted }
func (a *nopAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

// memoryScore keeps the high score for the session only
type memoryScore struct {
	best int
}

func (m *memoryScore) Load() int { return m.best }
func (m *memoryScore) Save(score int) error {
	m.best = score
	return nil
}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

type nopScheduler struct{}

func (nopScheduler) Reschedule(time.Duration) {}
func (nopScheduler) StopTick() {}
func (nopScheduler) RequestFrame() {}
func (nopScheduler) CancelFrame() {}

// gameStats caches registry pointers so the tick path writes atomics directly
type gameStats struct {
	ticks       *atomic.Int64
	sessions    *atomic.Int64
	foodSpawned *atomic.Int64
	foodEaten   *atomic.Int64
	shuffles    *atomic.Int64
	surprise    *atomic.Int64
	explosions  *atomic.Int64
	bestScore   *atomic.Int64
	mode        *status.AtomicString
	wander      *status.AtomicFloat
}

func newGameStats(reg *status.Registry) gameStats {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return gameStats{
		ticks:       reg.Ints.Get("game.ticks"),
		sessions:    reg.Ints.Get("game.sessions"),
		foodSpawned: reg.Ints.Get("food.spawned"),
		foodEaten:   reg.Ints.Get("food.eaten"),
		shuffles:    reg.Ints.Get("food.shuffles"),
		surprise:    reg.Ints.Get("food.surprise"),
		explosions:  reg.Ints.Get("game.explosions"),
		bestScore:   reg.Ints.Get("score.best"),
		mode:        reg.Strings.Get("game.mode"),
		wander:      reg.Floats.Get("food.wander_factor"),
	}
}
