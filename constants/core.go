package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the animation frame cadence (~60 FPS), used by the explosion sequence
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffered capacity of the terminal event channel
	EventChannelSize = 256
)

// Speed presets are the gameplay tick intervals selected with 1/2/3
const (
	SpeedSlowInterval   = 160 * time.Millisecond
	SpeedMediumInterval = 120 * time.Millisecond
	SpeedFastInterval   = 80 * time.Millisecond

	// MinTickInterval is the floor below which score speed-ups cannot push the tick
	MinTickInterval = 55 * time.Millisecond

	// SpeedUpStep is subtracted from the tick interval on every score multiple of SpeedUpScoreInterval
	SpeedUpStep = 6 * time.Millisecond

	// SpeedUpScoreInterval is the score multiple that triggers a speed-up
	SpeedUpScoreInterval = 5
)
