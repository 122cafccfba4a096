// Package score tracks the session score and the persisted high score
package score

import (
	"log"
	"sync"

	"github.com/lixenwraith/circle-merge/storage"
)

// Tracker holds current and high score
// Score never decreases within a session; the high score is saved whenever it is raised
type Tracker struct {
	mu    sync.RWMutex
	score int
	high  int
	store storage.HighScoreStore
}

// NewTracker creates a tracker seeded with the persisted high score
func NewTracker(store storage.HighScoreStore) *Tracker {
	if store == nil {
		store = storage.NewMemoryStore(0)
	}
	return &Tracker{
		high:  store.Load(),
		store: store,
	}
}

// Score returns the current session score
func (t *Tracker) Score() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.score
}

// HighScore returns the best score across sessions
func (t *Tracker) HighScore() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.high
}

// Snapshot returns score and high score under one lock
func (t *Tracker) Snapshot() (score, high int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.score, t.high
}

// Reset starts a new session at zero, the high score is kept
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.score = 0
}

// Add increases the score by points and persists a new high score
// Non-positive points are ignored. Returns true when the high score was raised
func (t *Tracker) Add(points int) bool {
	if points <= 0 {
		return false
	}

	t.mu.Lock()
	t.score += points
	raised := t.score > t.high
	if raised {
		t.high = t.score
	}
	high := t.high
	t.mu.Unlock()

	if raised {
		// Save failure is absorbed, the in-memory high score stays correct for this session
		if err := t.store.Save(high); err != nil {
			log.Printf("high score save failed: %v", err)
		}
	}
	return raised
}
