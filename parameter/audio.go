package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the default master volume in [0,1]
	AudioVolume = 0.5
)

// Drop Sound: short filtered click
const (
	DropSoundDuration = 40 * time.Millisecond
	DropSoundAttack   = 2 * time.Millisecond
	DropSoundRelease  = 30 * time.Millisecond
	DropSoundFreq     = 180.0
)

// Merge Sound: sine chime rising two semitones per tier
const (
	MergeSoundDuration = 220 * time.Millisecond
	MergeSoundAttack   = 5 * time.Millisecond
	MergeSoundRelease  = 160 * time.Millisecond
	MergeSoundBaseFreq = 523.25 // C5 for the tier 1 result
	MergeSoundStep     = 2.0    // semitones per tier
)

// Annihilation Sound: low rumble with noise
const (
	AnnihilateSoundDuration = 450 * time.Millisecond
	AnnihilateSoundAttack   = 10 * time.Millisecond
	AnnihilateSoundRelease  = 350 * time.Millisecond
	AnnihilateSoundFreq     = 70.0
)
