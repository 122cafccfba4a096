package event

// EventType represents the type of game event
type EventType int

const (
	// EventGameStart resets the session and activates the simulation
	// Trigger: Lifecycle input (Enter) | Consumer: GameContext | Payload: nil
	EventGameStart EventType = iota

	// EventGameStop deactivates the simulation, frames keep rendering
	// Trigger: Lifecycle input | Consumer: GameContext | Payload: nil
	EventGameStop

	// EventDropRequest asks for a circle to be dropped at a field x coordinate
	// Trigger: InputHandler (mouse press, space) | Consumer: SpawnSystem | Payload: *DropRequestPayload
	EventDropRequest

	// EventCircleDropped signals a player-spawned circle
	// Trigger: SpawnSystem | Consumer: audio | Payload: *CirclePayload
	EventCircleDropped

	// EventCircleMerged signals two circles combined into the next tier
	// Trigger: MergeSystem | Consumer: audio | Payload: *CirclePayload (new circle)
	EventCircleMerged

	// EventCircleAnnihilated signals a top-tier pair removed with no replacement
	// Trigger: MergeSystem | Consumer: audio | Payload: *CirclePayload (midpoint, top tier)
	EventCircleAnnihilated

	// EventScoreChanged signals a score update after a merge
	// Trigger: MergeSystem | Payload: *ScorePayload
	EventScoreChanged
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventGameStart:
		return "GameStart"
	case EventGameStop:
		return "GameStop"
	case EventDropRequest:
		return "DropRequest"
	case EventCircleDropped:
		return "CircleDropped"
	case EventCircleMerged:
		return "CircleMerged"
	case EventCircleAnnihilated:
		return "CircleAnnihilated"
	case EventScoreChanged:
		return "ScoreChanged"
	default:
		return "Unknown"
	}
}

// GameEvent is a typed event with an optional payload
type GameEvent struct {
	Type    EventType
	Payload any
}
