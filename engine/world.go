package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/core"
	"github.com/lixenwraith/circle-merge/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Resource holds session singletons (config, score, events, metrics)
	Resource *Resource

	// Circles is the ordered circle store, its order is the pair and merge-scan index space
	Circles *Store[component.CircleComponent]

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world bound to the given resources
func NewWorld(res *Resource) *World {
	return &World{
		nextEntityID: 1,
		Resource:     res,
		Circles:      NewStore[component.CircleComponent](),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
// IDs are monotonic for the lifetime of the world and never reused, including across Clear
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// SpawnCircle creates an entity carrying the circle and appends it to the store
func (w *World) SpawnCircle(c component.CircleComponent) core.Entity {
	e := w.CreateEntity()
	w.Circles.Set(e, c)
	return e
}

// DestroyBatch removes entities in one order-preserving pass, returns the count removed
func (w *World) DestroyBatch(entities ...core.Entity) int {
	return w.Circles.RemoveBatch(entities)
}

// Clear removes all entities, entity IDs keep increasing
func (w *World) Clear() {
	w.Circles.Clear()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N, stable for equal priorities)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked(dt time.Duration) {
	for _, system := range w.Systems() {
		system.Update(w, dt)
	}
}

// PushEvent emits a game event on the session queue
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.Resource == nil || w.Resource.Event == nil {
		return
	}
	w.Resource.Event.Push(event.GameEvent{Type: eventType, Payload: payload})
}
