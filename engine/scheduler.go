package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snakeio/constants"
)

// Scheduler owns the two timers driving the game: the repeating gameplay tick and the one-shot animation frame
type Scheduler interface {
	// Reschedule cancels any running tick and arms a new one at interval d
	Reschedule(d time.Duration)
	// StopTick cancels the gameplay tick
	StopTick()
	// RequestFrame arms a single animation frame
	RequestFrame()
	// CancelFrame drops a pending animation frame
	CancelFrame()
}

// ClockScheduler implements Scheduler on time.Ticker and time.Timer
// Channels are consumed by the single goroutine running the game loop
// A nil channel blocks forever in select, so inactive timers never fire
type ClockScheduler struct {
	mu sync.Mutex

	ticker   *time.Ticker
	interval time.Duration
	frame    *time.Timer

	frameInterval time.Duration

	// Cached metric counters
	reschedules atomic.Int64
	frames      atomic.Int64
}

// NewClockScheduler creates an idle scheduler with the default frame cadence
func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{
		frameInterval: constants.FrameUpdateInterval,
	}
}

// Reschedule swaps the ticker so a tick from the old interval can never be observed afterwards
func (cs *ClockScheduler) Reschedule(d time.Duration) {
	if d <= 0 {
		return
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.ticker != nil {
		cs.ticker.Stop()
	}
	cs.ticker = time.NewTicker(d)
	cs.interval = d
	cs.reschedules.Add(1)
}

// StopTick cancels the gameplay tick
func (cs *ClockScheduler) StopTick() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.ticker != nil {
		cs.ticker.Stop()
		cs.ticker = nil
	}
	cs.interval = 0
}

// RequestFrame arms a single animation frame, a pending frame is replaced
func (cs *ClockScheduler) RequestFrame() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.frame != nil {
		cs.frame.Stop()
	}
	cs.frame = time.NewTimer(cs.frameInterval)
	cs.frames.Add(1)
}

// CancelFrame drops a pending animation frame
func (cs *ClockScheduler) CancelFrame() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.frame != nil {
		cs.frame.Stop()
		cs.frame = nil
	}
}

// TickC returns the current tick channel, nil while the tick is stopped
// Must be re-read after every event since Reschedule replaces it
func (cs *ClockScheduler) TickC() <-chan time.Time {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.ticker == nil {
		return nil
	}
	return cs.ticker.C
}

// FrameC returns the pending frame channel, nil when no frame is requested
func (cs *ClockScheduler) FrameC() <-chan time.Time {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.frame == nil {
		return nil
	}
	return cs.frame.C
}

// FrameFired clears the consumed one-shot timer, call after receiving from FrameC
func (cs *ClockScheduler) FrameFired() {
	cs.mu.Lock()
	cs.frame = nil
	cs.mu.Unlock()
}

// Interval returns the active tick interval, zero while stopped
func (cs *ClockScheduler) Interval() time.Duration {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.interval
}

// Stop releases both timers
func (cs *ClockScheduler) Stop() {
	cs.StopTick()
	cs.CancelFrame()
}

// Counts returns the number of reschedules and frame requests so far
func (cs *ClockScheduler) Counts() (reschedules, frames int64) {
	return cs.reschedules.Load(), cs.frames.Load()
}
