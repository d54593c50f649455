package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
)

// blip is a short enveloped note at a fixed pitch
func blip(freq float64, dur time.Duration, wave WaveType, peak float64) Voice {
	return Voice{
		Wave:     wave,
		From:     freq,
		Peak:     peak,
		Attack:   constants.BlipAttack,
		DecayEnd: max(constants.BlipMinDecay, dur),
		Length:   dur + constants.BlipTail,
	}
}

// chirp sweeps pitch exponentially from -> to over dur
func chirp(from, to float64, dur time.Duration, wave WaveType, peak float64) Voice {
	return Voice{
		Wave:     wave,
		From:     from,
		To:       max(constants.MinChirpFrequency, to),
		Sweep:    dur,
		Peak:     peak,
		Attack:   constants.ChirpAttack,
		DecayEnd: dur,
		Length:   dur + constants.BlipTail,
	}
}

// NewCue builds the unmastered streamer for a game cue, nil for unknown types
func NewCue(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	voice := func(v Voice) beep.Streamer { return NewVoice(v, rate) }

	switch st {
	case core.SoundEatSmall:
		return voice(blip(540, constants.EatSmallDuration, WaveSquare, 0.25))

	case core.SoundEatLarge:
		return beep.Mix(
			voice(blip(760, constants.EatLargeDuration, WaveSquare, 0.3)),
			delayed(voice(blip(900, constants.EatLargeDuration, WaveSquare, 0.28)), constants.EatLargeGap, rate),
		)

	case core.SoundBomb:
		thud := Voice{
			Wave:     WaveSine,
			From:     220,
			To:       70,
			Sweep:    350 * time.Millisecond,
			Peak:     0.35,
			DecayEnd: constants.BombThudDuration,
			Length:   constants.BombThudDuration + constants.BlipTail,
		}
		return beep.Mix(
			NewNoiseBurst(constants.BombNoiseDuration, 0.45, 1600, rate),
			delayed(voice(thud), constants.BombThudDelay, rate),
			delayed(NewNoiseBurst(constants.BombEchoDuration, 0.28, 1200, rate), constants.BombEchoDelay, rate),
		)

	case core.SoundGameOver:
		return voice(chirp(600, 140, constants.GameOverDuration, WaveSaw, 0.22))

	case core.SoundPause:
		return voice(blip(420, constants.PauseDuration, WaveTriangle, 0.18))

	case core.SoundNewBest:
		return beep.Mix(
			voice(blip(660, constants.NewBestNoteDuration, WaveSquare, 0.28)),
			delayed(voice(blip(830, constants.NewBestNoteDuration, WaveSquare, 0.26)), constants.NewBestGap, rate),
			delayed(voice(blip(990, constants.NewBestLastDuration, WaveSquare, 0.24)), 2*constants.NewBestGap, rate),
		)

	case core.SoundStart:
		return beep.Mix(
			voice(blip(520, constants.StartNoteDuration, WaveSquare, 0.22)),
			delayed(voice(blip(680, constants.StartNoteDuration, WaveSquare, 0.20)), constants.StartGap, rate),
		)

	default:
		return nil
	}
}

// NewTune builds the short triangle confirmation used by settings keys
func NewTune(freq float64, rate beep.SampleRate) beep.Streamer {
	return NewVoice(blip(freq, constants.TuneDuration, WaveTriangle, 0.15), rate)
}
