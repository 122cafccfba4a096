package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueCapacity is the initial backing size of the event queue
	EventQueueCapacity = 64
)
