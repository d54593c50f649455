package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
)

// drain streams s to completion, returning sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for guard := 0; guard < 10000; guard++ {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("sample %d is %v", total+i, v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

// TestWaveRanges verifies every wave stays in [-1, 1]
func TestWaveRanges(t *testing.T) {
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise}
	for _, w := range waves {
		for i := 0; i < 100; i++ {
			v := w.sample(float64(i) / 100)
			if v < -1 || v > 1 {
				t.Errorf("wave %d phase %d: %v out of range", w, i, v)
			}
		}
	}
	if WaveTriangle.sample(0.5) != 1 || WaveTriangle.sample(0) != -1 {
		t.Error("triangle extremes misplaced")
	}
}

// TestVoiceLength verifies a blip runs exactly its stop time
func TestVoiceLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	v := blip(540, constants.EatSmallDuration, WaveSquare, 0.25)
	n, peak := drain(t, NewVoice(v, rate))

	want := rate.N(constants.EatSmallDuration + constants.BlipTail)
	if n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
	if peak > 0.25+1e-9 {
		t.Errorf("peak = %v exceeds voice peak", peak)
	}
	if peak < 0.1 {
		t.Errorf("peak = %v, voice is nearly silent", peak)
	}
}

// TestVoiceEnvelope verifies the linear attack and exponential decay
func TestVoiceEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := NewVoice(Voice{
		Wave:     WaveSquare,
		From:     100,
		Peak:     0.5,
		Attack:   10 * time.Millisecond,
		DecayEnd: 30 * time.Millisecond,
		Length:   40 * time.Millisecond,
	}, rate).(*tone)

	tn.position = 5
	if g := tn.gain(); math.Abs(g-0.25) > 1e-12 {
		t.Errorf("mid attack gain = %v, want 0.25", g)
	}
	tn.position = 10
	if g := tn.gain(); math.Abs(g-0.5) > 1e-12 {
		t.Errorf("peak gain = %v, want 0.5", g)
	}
	tn.position = 35
	if g := tn.gain(); g != constants.DecayFloor {
		t.Errorf("tail gain = %v, want floor", g)
	}
}

// TestChirpSweep verifies exponential frequency sweep endpoints and floor
func TestChirpSweep(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := NewVoice(chirp(600, 10, 400*time.Millisecond, WaveSaw, 0.2), rate).(*tone)

	if tn.to != constants.MinChirpFrequency {
		t.Errorf("sweep target = %v, want floor %v", tn.to, constants.MinChirpFrequency)
	}
	if f := tn.freq(); f != 600 {
		t.Errorf("start freq = %v", f)
	}
	tn.position = 200
	if f, want := tn.freq(), 600*math.Sqrt(constants.MinChirpFrequency/600); math.Abs(f-want) > 1e-9 {
		t.Errorf("mid freq = %v, want %v", f, want)
	}
	tn.position = 400
	if f := tn.freq(); f != constants.MinChirpFrequency {
		t.Errorf("end freq = %v", f)
	}
}

// TestNoiseBurstFades verifies the burst is finite and decays toward silence
func TestNoiseBurstFades(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := NewNoiseBurst(180*time.Millisecond, 0.45, 1600, rate)
	n, peak := drain(t, s)
	if n != rate.N(180*time.Millisecond) {
		t.Errorf("samples = %d", n)
	}
	if peak > 0.45 {
		t.Errorf("peak = %v exceeds burst gain", peak)
	}
}

// TestCuesAreFinite verifies every cue drains with bounded output
func TestCuesAreFinite(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := NewCue(st, rate)
			if s == nil {
				t.Fatal("no streamer")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("empty cue")
			}
			if n > rate.N(time.Second) {
				t.Errorf("cue runs %d samples, longer than a second", n)
			}
			if peak > 1 {
				t.Errorf("peak = %v clips", peak)
			}
		})
	}

	if NewCue(core.SoundTypeCount, rate) != nil {
		t.Error("unknown cue produced a streamer")
	}
}

// TestDelayedOffsetsStart verifies silence is prepended
func TestDelayedOffsetsStart(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := delayed(NewTune(400, rate), 60*time.Millisecond, rate)
	buf := make([][2]float64, 60)
	n, _ := s.Stream(buf)
	if n != 60 {
		t.Fatalf("streamed %d samples", n)
	}
	for i := range buf {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %v during delay", i, buf[i][0])
		}
	}
}

// TestNewVolumeZero verifies zero volume is silent rather than -Inf
func TestNewVolumeZero(t *testing.T) {
	v := newVolume(NewTune(400, beep.SampleRate(1000)), 0)
	if !v.Silent {
		t.Error("zero volume not silent")
	}
	if math.IsInf(v.Volume, 0) {
		t.Error("volume is infinite")
	}
}
