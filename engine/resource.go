package engine

import (
	"time"

	"github.com/lixenwraith/circle-merge/config"
	"github.com/lixenwraith/circle-merge/event"
	"github.com/lixenwraith/circle-merge/score"
	"github.com/lixenwraith/circle-merge/status"
	"github.com/lixenwraith/circle-merge/vmath"
)

// Resource holds singleton session resources, initialized once by NewGameContext
type Resource struct {
	Time   *TimeResource
	Config *config.Config
	Game   *GameState
	Event  *event.EventQueue
	Score  *score.Tracker
	Rand   vmath.RandomSource

	// Telemetry
	Status *status.Registry
}

// TimeResource wraps tick timing data for systems
// Updated by GameContext at the start of each active tick
type TimeResource struct {
	// TickTime is the timestamp delivered by the ticker
	TickTime time.Time

	// DeltaTime is the duration since the previous tick, zero on the first
	DeltaTime time.Duration

	// FrameNumber counts simulation steps in the current session
	FrameNumber int64
}

// Update advances the time resource to a new tick
func (tr *TimeResource) Update(now time.Time, frame int64) {
	if tr.TickTime.IsZero() {
		tr.DeltaTime = 0
	} else {
		tr.DeltaTime = now.Sub(tr.TickTime)
	}
	tr.TickTime = now
	tr.FrameNumber = frame
}
