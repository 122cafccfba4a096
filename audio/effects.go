package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/circle-merge/parameter"
	"github.com/lixenwraith/circle-merge/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = float64(o.noise.Intn(2001))/1000 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp, a flat sustain and a release ramp
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// MergeFrequency returns the chime pitch for a merge producing tier
func MergeFrequency(tier int) float64 {
	steps := float64(tier-1) * parameter.MergeSoundStep
	return parameter.MergeSoundBaseFreq * math.Pow(2, steps/12)
}

// CreateDropSound generates a short click for a player drop
func CreateDropSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(parameter.DropSoundFreq, parameter.DropSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.DropSoundDuration, parameter.DropSoundAttack, parameter.DropSoundRelease, rate)
	return newVolume(shaped, 0.4*vol)
}

// CreateMergeSound generates a chime with an octave overtone, pitched by the resulting tier
func CreateMergeSound(rate beep.SampleRate, tier int, vol float64) beep.Streamer {
	freq := MergeFrequency(tier)

	fund := NewOscillator(freq, parameter.MergeSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.MergeSoundDuration, parameter.MergeSoundAttack, parameter.MergeSoundRelease, rate)

	over, err := generators.SineTone(rate, freq*2)
	if err != nil {
		// Overtone above Nyquist, play the fundamental alone
		return newVolume(fundShaped, vol)
	}
	overShaped := NewEnvelope(
		beep.Take(rate.N(parameter.MergeSoundDuration), over),
		parameter.MergeSoundDuration, parameter.MergeSoundAttack, parameter.MergeSoundRelease/2, rate,
	)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, vol)
}

// CreateAnnihilateSound generates a rumble for a top-tier pair vanishing
func CreateAnnihilateSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.AnnihilateSoundDuration

	rumble := NewEnvelope(NewOscillator(parameter.AnnihilateSoundFreq, d, WaveSine, rate),
		d, parameter.AnnihilateSoundAttack, parameter.AnnihilateSoundRelease, rate)
	crackle := NewEnvelope(NewOscillator(0, d, WaveNoise, rate),
		d, parameter.AnnihilateSoundAttack, parameter.AnnihilateSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(rumble, 0.6),
		newVolume(crackle, 0.4),
	)
	return newVolume(mixed, vol)
}
