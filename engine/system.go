package engine

import "time"

// System is an interface that all simulation systems implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// Resettable is implemented by systems and handlers holding per-session state
// GameContext calls Reset on session start, after the world is cleared
type Resettable interface {
	Reset()
}
