package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/snakeio/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// sample returns the wave value at phase in [0, 1)
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return 0
	}
}

// Voice describes one enveloped oscillator note
// Gain ramps linearly 0 -> Peak over Attack, then exponentially to DecayFloor at DecayEnd
// Frequency sweeps exponentially From -> To over Sweep; zero Sweep holds From
type Voice struct {
	Wave     WaveType
	From, To float64
	Sweep    time.Duration
	Peak     float64
	Attack   time.Duration
	DecayEnd time.Duration
	Length   time.Duration // Oscillator stop time, at or after DecayEnd
}

// tone renders a Voice sample by sample
type tone struct {
	wave     WaveType
	from, to float64
	sweep    int
	peak     float64
	attack   int
	decayEnd int
	length   int
	phase    float64
	position int
	rate     beep.SampleRate
}

// NewVoice creates a finite streamer for v
func NewVoice(v Voice, rate beep.SampleRate) beep.Streamer {
	to := v.To
	if to <= 0 {
		to = v.From
	}
	length := max(rate.N(v.Length), rate.N(v.DecayEnd))
	return &tone{
		wave:     v.Wave,
		from:     v.From,
		to:       to,
		sweep:    rate.N(v.Sweep),
		peak:     v.Peak,
		attack:   rate.N(v.Attack),
		decayEnd: rate.N(v.DecayEnd),
		length:   length,
		rate:     rate,
	}
}

func (t *tone) gain() float64 {
	p := t.position
	switch {
	case p < t.attack:
		return t.peak * float64(p) / float64(t.attack)
	case p < t.decayEnd:
		span := float64(t.decayEnd - t.attack)
		frac := float64(p-t.attack) / span
		return t.peak * math.Pow(constants.DecayFloor/t.peak, frac)
	default:
		return constants.DecayFloor
	}
}

func (t *tone) freq() float64 {
	if t.sweep <= 0 {
		return t.from
	}
	if t.position >= t.sweep {
		return t.to
	}
	frac := float64(t.position) / float64(t.sweep)
	return t.from * math.Pow(t.to/t.from, frac)
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		val := t.wave.sample(t.phase) * t.gain()
		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		t.phase += t.freq() / float64(t.rate)
		t.phase = t.phase - math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// noiseBurst is white noise under a linear fade, smoothed by a one-pole lowpass
type noiseBurst struct {
	total    int
	position int
	peak     float64
	alpha    float64
	prev     float64
}

// NewNoiseBurst creates a fading noise streamer filtered at cutoff Hz
func NewNoiseBurst(duration time.Duration, peak, cutoff float64, rate beep.SampleRate) beep.Streamer {
	return &noiseBurst{
		total: rate.N(duration),
		peak:  peak,
		alpha: 1 - math.Exp(-2*math.Pi*cutoff/float64(rate)),
	}
}

func (nb *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if nb.position >= nb.total {
			return i, i > 0
		}

		fade := 1 - float64(nb.position)/float64(nb.total)
		x := (rand.Float64()*2 - 1) * fade
		nb.prev += nb.alpha * (x - nb.prev)

		val := nb.prev * nb.peak
		samples[i][0] = val
		samples[i][1] = val
		nb.position++
	}
	return len(samples), true
}

func (nb *noiseBurst) Err() error { return nil }

// delayed prefixes s with d of silence
func delayed(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(generators.Silence(rate.N(d)), s)
}

// newVolume wraps s at linear gain vol, zero or below is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
