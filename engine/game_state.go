package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/circle-merge/status"
)

// GameState holds the session flags shared between the input goroutine, the simulation and the renderer
// All fields are atomics; no mutex is needed for reads from any goroutine
type GameState struct {
	active atomic.Bool

	// FrameNumber counts simulation steps since the last Start
	FrameNumber atomic.Int64

	// NextTier is the tier the next drop will use, published by the spawn system for the preview
	NextTier atomic.Int32

	// AimX is the keyboard aim position in field coordinates
	aimX status.AtomicFloat
}

// NewGameState creates an inactive game state aiming at x
func NewGameState(aimX float64) *GameState {
	gs := &GameState{}
	gs.aimX.Store(aimX)
	return gs
}

// Active reports whether the simulation is running
func (gs *GameState) Active() bool {
	return gs.active.Load()
}

// SetActive updates the running flag
func (gs *GameState) SetActive(v bool) {
	gs.active.Store(v)
}

func (gs *GameState) AimX() float64 {
	return gs.aimX.Load()
}

func (gs *GameState) SetAimX(x float64) {
	gs.aimX.Store(x)
}
