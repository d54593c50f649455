package engine

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/input"
)

// recordingScheduler captures every timer request
type recordingScheduler struct {
	reschedules  []time.Duration
	stops        int
	frameArmed   bool
	frameReqs    int
	frameCancels int
}

func (s *recordingScheduler) Reschedule(d time.Duration) { s.reschedules = append(s.reschedules, d) }
func (s *recordingScheduler) StopTick() { s.stops++ }
func (s *recordingScheduler) RequestFrame() {
	s.frameArmed = true
	s.frameReqs++
}
func (s *recordingScheduler) CancelFrame() {
	s.frameArmed = false
	s.frameCancels++
}

func (s *recordingScheduler) lastInterval() time.Duration {
	if len(s.reschedules) == 0 {
		return 0
	}
	return s.reschedules[len(s.reschedules)-1]
}

// recordingAudio captures played cues
type recordingAudio struct {
	cues  []core.SoundType
	tunes []float64
	muted bool
}

func (a *recordingAudio) Play(st core.SoundType) bool {
	a.cues = append(a.cues, st)
	return !a.muted
}

func (a *recordingAudio) Tune(freq float64) bool {
	a.tunes = append(a.tunes, freq)
	return !a.muted
}

func (a *recordingAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *recordingAudio) IsMuted() bool { return a.muted }

func (a *recordingAudio) count(st core.SoundType) int {
	n := 0
	for _, c := range a.cues {
		if c == st {
			n++
		}
	}
	return n
}

// recordingStore counts writes and can be made to fail
type recordingStore struct {
	value  int
	saves  []int
	broken bool
}

func (s *recordingStore) Load() int { return s.value }

func (s *recordingStore) Save(score int) error {
	if s.broken {
		return errors.New("disk full")
	}
	s.value = score
	s.saves = append(s.saves, score)
	return nil
}

// countingRenderer keeps the last snapshot
type countingRenderer struct {
	renders int
	last    Snapshot
}

func (r *countingRenderer) Render(snap Snapshot) {
	r.renders++
	r.last = snap
}

type testRig struct {
	game   *Game
	sched  *recordingScheduler
	audio  *recordingAudio
	store  *recordingStore
	render *countingRenderer
	clock  *MockTimeProvider
}

func newTestRig(t *testing.T, seed uint64) *testRig {
	t.Helper()
	rig := &testRig{
		sched:  &recordingScheduler{},
		audio:  &recordingAudio{},
		store:  &recordingStore{},
		render: &countingRenderer{},
		clock:  NewMockTimeProvider(time.Unix(1_700_000_000, 0)),
	}
	rig.game = NewGame(Options{
		Cols:      20,
		Rows:      20,
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Clock:     rig.clock,
		Scheduler: rig.sched,
		Audio:     rig.audio,
		Store:     rig.store,
		Renderer:  rig.render,
	})
	return rig
}

// start leaves the title screen
func (r *testRig) start(t *testing.T) {
	t.Helper()
	if !r.game.HandleIntent(input.IntentOther) {
		t.Fatal("start intent requested quit")
	}
	if r.game.Mode() != ModePlaying {
		t.Fatalf("mode after start = %s, want Playing", r.game.Mode())
	}
}

// parkFoods replaces the food set with foods that never wander, padded to the maximum in the bottom row
// A full set disables surprise spawns so a tick is deterministic
func (r *testRig) parkFoods(foods ...Food) {
	g := r.game
	g.foods = g.foods[:0]
	for _, f := range foods {
		f.MoveEvery = 1 << 30
		g.foods = append(g.foods, f)
	}
	for x := 0; len(g.foods) < 4; x += 2 {
		g.foods = append(g.foods, Food{Pos: Point{X: x, Y: g.rows - 1}, Kind: FoodGreen, MoveEvery: 1 << 30})
	}
}

// ahead returns the cell the head enters next tick
func (r *testRig) ahead() Point {
	return r.game.snake.Head().Add(r.game.nextDir)
}
