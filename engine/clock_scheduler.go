package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/circle-merge/core"
)

// ClockScheduler drives GameContext.Tick from a Ticker on its own goroutine
// It is the only goroutine that mutates the world once started
type ClockScheduler struct {
	game    *GameContext
	ticker  Ticker
	onFrame func()

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler; onFrame runs after every tick on the scheduler goroutine and may be nil
func NewClockScheduler(game *GameContext, ticker Ticker, onFrame func()) *ClockScheduler {
	return &ClockScheduler{
		game:     game,
		ticker:   ticker,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop, ctx cancellation ends it like Stop
func (cs *ClockScheduler) Start(ctx context.Context) {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(func() {
			defer cs.wg.Done()
			cs.Run(ctx)
		})
	}
}

// Stop halts the scheduler loop and waits for the current tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		cs.ticker.Stop()
	})
	cs.wg.Wait()
	cs.running.Store(false)
}

// Run executes ticks until ctx is done or Stop is called
// Blocking; Start wraps it in a goroutine
func (cs *ClockScheduler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-cs.stopChan:
			return
		case now := <-cs.ticker.C():
			cs.game.Tick(now)
			cs.tickCount.Add(1)
			if cs.onFrame != nil {
				cs.onFrame()
			}
		}
	}
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Running reports whether the loop goroutine was started and not yet stopped
func (cs *ClockScheduler) Running() bool {
	return cs.running.Load()
}
