package event

import "github.com/lixenwraith/circle-merge/core"

// DropRequestPayload carries the field x coordinate of a drop
type DropRequestPayload struct {
	X float64
}

// CirclePayload describes the circle an event is about
type CirclePayload struct {
	Entity core.Entity // 0 when no circle survives (annihilation)
	Tier   int
	X, Y   float64
}

// ScorePayload carries the score after a change
type ScorePayload struct {
	Score     int
	HighScore int
	Raised    bool // high score was beaten
}
