package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion, returning the sample count and the peak magnitude
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if math.IsNaN(v) {
					t.Fatalf("NaN sample at %d", total+i)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name  string
		wave  WaveType
		check func(v float64) bool
	}{
		{"sine", WaveSine, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"square", WaveSquare, func(v float64) bool { return v == -1 || v == 1 }},
		{"saw", WaveSaw, func(v float64) bool { return v >= -1 && v < 1 }},
		{"noise", WaveNoise, func(v float64) bool { return v >= -1 && v <= 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(220, 50*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Stream() = %d, %v", n, ok)
			}
			for i := 0; i < n; i++ {
				if !tt.check(samples[i][0]) || samples[i][0] != samples[i][1] {
					t.Errorf("sample %d = %v", i, samples[i])
				}
			}
		})
	}
}

func TestOscillatorEndsAtDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 40*time.Millisecond, WaveSine, rate)

	total, _ := drain(t, osc, 10*rate.N(time.Second))
	if want := rate.N(40 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %v, want 1", samples[50][0])
	}
	if samples[99][0] >= samples[80][0] {
		t.Errorf("release not decreasing: %v -> %v", samples[80][0], samples[99][0])
	}
}

func TestMergeFrequencyRisesWithTier(t *testing.T) {
	prev := 0.0
	for tier := 1; tier <= 7; tier++ {
		f := MergeFrequency(tier)
		if f <= prev {
			t.Errorf("tier %d frequency %v not above %v", tier, f, prev)
		}
		prev = f
	}
	if MergeFrequency(1) != 523.25 {
		t.Errorf("tier 1 = %v, want 523.25", MergeFrequency(1))
	}
}

func TestCueStreamsAreFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	limit := rate.N(2 * time.Second)

	cues := map[string]beep.Streamer{
		"drop":       CreateDropSound(rate, 1),
		"merge":      CreateMergeSound(rate, 3, 1),
		"annihilate": CreateAnnihilateSound(rate, 1),
	}
	for name, s := range cues {
		t.Run(name, func(t *testing.T) {
			total, peak := drain(t, s, limit)
			if total == 0 {
				t.Error("cue produced no samples")
			}
			if peak > 1.0+1e-9 {
				t.Errorf("peak %v exceeds full scale", peak)
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	_, peak := drain(t, CreateDropSound(rate, 0), rate.N(time.Second))
	if peak != 0 {
		t.Errorf("peak = %v, want silence", peak)
	}
}
