// Package audio plays synthesized feedback cues through the beep speaker
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/circle-merge/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the output mixer; every cue is a finite streamer added to it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	live        bool // mixer is attached to the speaker and needs speaker.Lock

	muted  atomic.Bool
	played atomic.Int64
}

// NewSoundManager creates a manager; nothing plays until Initialize
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.live = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.live {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
		speaker.Clear()
	} else {
		sm.mixer.Clear()
	}
	sm.initialized = false
	sm.live = false
}

// SetMuted silences new cues, sounds already playing finish
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// ToggleMute flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Played returns the number of cues started
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

func (sm *SoundManager) PlayDrop() {
	sm.play(func() beep.Streamer { return CreateDropSound(sampleRate, sm.volume) })
}

func (sm *SoundManager) PlayMerge(tier int) {
	sm.play(func() beep.Streamer { return CreateMergeSound(sampleRate, tier, sm.volume) })
}

func (sm *SoundManager) PlayAnnihilate() {
	sm.play(func() beep.Streamer { return CreateAnnihilateSound(sampleRate, sm.volume) })
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build()
	if sm.live {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	} else {
		sm.mixer.Add(s)
	}
	sm.played.Add(1)
}
