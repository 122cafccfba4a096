package engine

import (
	"sync"

	"github.com/lixenwraith/circle-merge/core"
)

// Store is a generic container for a specific component type T
// Entities keep insertion order; removal compacts without reordering survivors
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
// New entities are appended at the end of the iteration order
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Entities returns all entities in iteration order
func (s *Store[T]) Entities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Snapshot returns parallel copies of entities and values in iteration order
func (s *Store[T]) Snapshot() ([]core.Entity, []T) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]core.Entity, len(s.entities))
	vals := make([]T, len(s.entities))
	for i, e := range s.entities {
		ids[i] = e
		vals[i] = s.components[e]
	}
	return ids, vals
}

// Apply writes values back for entities still present, slices must be parallel
func (s *Store[T]) Apply(ids []core.Entity, vals []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range ids {
		if _, ok := s.components[e]; ok {
			s.components[e] = vals[i]
		}
	}
}

// Each calls fn with a mutable copy of every component in order and stores the result
func (s *Store[T]) Each(fn func(e core.Entity, val *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entities {
		v := s.components[e]
		fn(e, &v)
		s.components[e] = v
	}
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}

// Remove deletes a single entity, preserving order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	s.RemoveBatch([]core.Entity{e})
}

// RemoveBatch deletes multiple entities in a single pass - O(n+m)
// Survivors keep their relative order, so indices taken before removal stay meaningful
func (s *Store[T]) RemoveBatch(entities []core.Entity) int {
	if len(entities) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.components) == 0 {
		return 0
	}

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}

	if len(toRemove) == 0 {
		return 0
	}

	// Single pass compaction of entities slice
	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	clear(s.entities[writeIdx:])
	s.entities = s.entities[:writeIdx]
	return len(toRemove)
}
