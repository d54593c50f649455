package audio

import (
	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/vmath"
)

// AudioConfig holds speaker and output settings
type AudioConfig struct {
	Muted        bool
	MasterVolume float64 // 0.0-1.0, scales MasterGain
	SampleRate   int
}

// DefaultAudioConfig returns unmuted full volume at the default sample rate
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Muted:        false,
		MasterVolume: 1.0,
		SampleRate:   constants.AudioSampleRate,
	}
}

// Normalize clamps volume and replaces an invalid sample rate
func (c *AudioConfig) Normalize() {
	c.MasterVolume = vmath.Clamp(c.MasterVolume, 0, 1)
	if c.SampleRate <= 0 {
		c.SampleRate = constants.AudioSampleRate
	}
}

// OutputGain is the final gain applied to the cue mix
func (c *AudioConfig) OutputGain() float64 {
	return constants.MasterGain * c.MasterVolume
}
