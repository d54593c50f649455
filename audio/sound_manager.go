package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
)

// ErrAudioUnavailable is returned when no output device could be opened
var ErrAudioUnavailable = errors.New("audio unavailable")

// SoundManager plays fire-and-forget cues through one speaker mixer
// Muting silences the master volume, cutting cues already in flight
type SoundManager struct {
	mu     sync.Mutex
	config *AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume

	initialized bool
	muted       atomic.Bool
	silent      atomic.Bool

	played  atomic.Int64
	dropped atomic.Int64
}

// NewSoundManager creates a new sound manager, nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()

	sm := &SoundManager{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
	}
	sm.master = newVolume(sm.mixer, cfg.OutputGain())
	sm.muted.Store(cfg.Muted)
	sm.master.Silent = sm.master.Silent || cfg.Muted
	return sm
}

// Initialize opens the speaker, on failure the manager stays silent for the session
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		sm.silent.Store(true)
		log.Printf("audio: speaker init failed, continuing silent: %v", err)
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues a game cue, returns false when nothing will be heard
func (sm *SoundManager) Play(st core.SoundType) bool {
	return sm.enqueue(st.String(), func() beep.Streamer { return NewCue(st, sm.rate) })
}

// Tune queues a short confirmation blip at freq
func (sm *SoundManager) Tune(freq float64) bool {
	return sm.enqueue("tune", func() beep.Streamer { return NewTune(freq, sm.rate) })
}

func (sm *SoundManager) enqueue(name string, build func() beep.Streamer) bool {
	if sm.muted.Load() || sm.silent.Load() {
		sm.dropped.Add(1)
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.dropped.Add(1)
		return false
	}

	s := build()
	if s == nil {
		log.Printf("audio: no streamer for cue %s", name)
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// SetMuted sets the global mute flag
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted.Store(muted)
	silent := muted || sm.config.OutputGain() <= 0
	if !sm.initialized {
		sm.master.Silent = silent
		return
	}
	speaker.Lock()
	sm.master.Silent = silent
	speaker.Unlock()
}

// ToggleMute flips mute, returns true if now muted
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsSilent returns true when the speaker could not be opened
func (sm *SoundManager) IsSilent() bool {
	return sm.silent.Load()
}

// GetStats returns played and dropped cue counts
func (sm *SoundManager) GetStats() (played, dropped int64) {
	return sm.played.Load(), sm.dropped.Load()
}
