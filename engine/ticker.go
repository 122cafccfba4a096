package engine

import (
	"sync"
	"time"
)

// Ticker delivers tick timestamps to the scheduler
// Production uses RealTicker; tests use ManualTicker for deterministic stepping
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealTicker wraps time.Ticker
type RealTicker struct {
	ticker *time.Ticker
}

// NewRealTicker creates a ticker firing every interval
func NewRealTicker(interval time.Duration) *RealTicker {
	return &RealTicker{ticker: time.NewTicker(interval)}
}

func (rt *RealTicker) C() <-chan time.Time { return rt.ticker.C }

func (rt *RealTicker) Stop() { rt.ticker.Stop() }

// ManualTicker fires only when Tick is called, advancing a synthetic clock by step
type ManualTicker struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
	ch   chan time.Time
}

// NewManualTicker creates a manual ticker starting at start
func NewManualTicker(start time.Time, step time.Duration) *ManualTicker {
	return &ManualTicker{
		now:  start,
		step: step,
		ch:   make(chan time.Time),
	}
}

func (mt *ManualTicker) C() <-chan time.Time { return mt.ch }

func (mt *ManualTicker) Stop() {}

// Tick advances the clock and blocks until the receiver takes the timestamp
func (mt *ManualTicker) Tick() time.Time {
	mt.mu.Lock()
	mt.now = mt.now.Add(mt.step)
	now := mt.now
	mt.mu.Unlock()

	mt.ch <- now
	return now
}

// Now returns the current synthetic time
func (mt *ManualTicker) Now() time.Time {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.now
}
