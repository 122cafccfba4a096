package parameter

// System Execution Priorities (lower runs first)
// Order is the simulation step: integrate, constrain, separate, merge
const (
	PriorityIntegration = 10
	PriorityBoundary    = 20
	PriorityOverlap     = 30
	PriorityMerge       = 40
)

// PrioritySpawn orders the event-driven spawn system ahead of the step; its Update is a no-op
const PrioritySpawn = 0
