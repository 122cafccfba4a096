package event

import (
	"sync"

	"github.com/lixenwraith/circle-merge/parameter"
)

// EventQueue is a mutex-guarded FIFO for game events
// Thread-Safety:
//   - Push: any goroutine (input poller, systems)
//   - Consume: single consumer (game tick)
//
// Unbounded; the tick drains it every frame
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueCapacity),
	}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	eq.events = append(eq.events, event)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]GameEvent, 0, parameter.EventQueueCapacity)
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.events)
}

// Discard drops pending events of the given types, keeping the rest in order
func (eq *EventQueue) Discard(types ...EventType) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	kept := eq.events[:0]
	for _, ev := range eq.events {
		drop := false
		for _, t := range types {
			if ev.Type == t {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, ev)
		}
	}
	eq.events = kept
}
