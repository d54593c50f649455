package constants

import "time"

// Audio engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MasterGain scales every cue before it reaches the speaker
	MasterGain = 0.16
)

// Blip envelope
const (
	BlipAttack   = 10 * time.Millisecond
	BlipMinDecay = 20 * time.Millisecond
	BlipTail     = 20 * time.Millisecond
)

// Cue timing
const (
	EatSmallDuration = 60 * time.Millisecond
	EatLargeDuration = 70 * time.Millisecond
	EatLargeGap      = 60 * time.Millisecond

	StartNoteDuration = 60 * time.Millisecond
	StartGap          = 60 * time.Millisecond

	PauseDuration = 50 * time.Millisecond
	TuneDuration  = 50 * time.Millisecond

	NewBestNoteDuration = 60 * time.Millisecond
	NewBestLastDuration = 80 * time.Millisecond
	NewBestGap          = 70 * time.Millisecond

	GameOverDuration = 450 * time.Millisecond

	BombNoiseDuration = 180 * time.Millisecond
	BombThudDelay     = 20 * time.Millisecond
	BombThudDuration  = 400 * time.Millisecond
	BombEchoDelay     = 120 * time.Millisecond
	BombEchoDuration  = 120 * time.Millisecond

	ChirpAttack       = 20 * time.Millisecond
	MinChirpFrequency = 40.0
	DecayFloor        = 0.0001
)

// Tune cue frequencies
const (
	TuneSlowFreq     = 300.0
	TuneMediumFreq   = 380.0
	TuneFastFreq     = 460.0
	TuneWanderSlower = 320.0
	TuneWanderFaster = 380.0
)
