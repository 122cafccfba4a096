package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/circle-merge/config"
	"github.com/lixenwraith/circle-merge/event"
	"github.com/lixenwraith/circle-merge/score"
	"github.com/lixenwraith/circle-merge/status"
	"github.com/lixenwraith/circle-merge/vmath"
)

// GameContext owns one game session: the world, its resources and the lifecycle state
type GameContext struct {
	// ===== Immutable After Init =====
	World *World
	State *GameState

	router   *event.Router[*World]
	handlers []event.Handler[*World]

	// Cached metric pointers
	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statSessions *atomic.Int64
	statActive   *atomic.Bool
}

// NewGameContext wires a world and its resources for a session
// A nil tracker gets an in-memory store; a nil rng gets a time-seeded FastRand
func NewGameContext(cfg *config.Config, tracker *score.Tracker, rng vmath.RandomSource) *GameContext {
	if tracker == nil {
		tracker = score.NewTracker(nil)
	}
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}

	reg := status.NewRegistry()
	queue := event.NewEventQueue()
	state := NewGameState(cfg.Field.Width / 2)

	res := &Resource{
		Time:   &TimeResource{},
		Config: cfg,
		Game:   state,
		Event:  queue,
		Score:  tracker,
		Rand:   rng,
		Status: reg,
	}

	g := &GameContext{
		World:        NewWorld(res),
		State:        state,
		router:       event.NewRouter[*World](queue),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statEntities: reg.Ints.Get("world.entities"),
		statSessions: reg.Ints.Get("game.sessions"),
		statActive:   reg.Bools.Get("game.active"),
	}
	g.router.Register(g)
	return g
}

// AddSystem adds a system to the world and registers it for events when it handles any
func (g *GameContext) AddSystem(s System) {
	g.World.AddSystem(s)
	if h, ok := s.(event.Handler[*World]); ok {
		g.RegisterHandler(h)
	}
}

// RegisterHandler adds an event handler, must be called before the scheduler starts
func (g *GameContext) RegisterHandler(h event.Handler[*World]) {
	g.router.Register(h)
	g.handlers = append(g.handlers, h)
}

// Resource returns the session resources
func (g *GameContext) Resource() *Resource {
	return g.World.Resource
}

// Active reports whether the simulation is running
func (g *GameContext) Active() bool {
	return g.State.Active()
}

// ===== Requests (any goroutine) =====

// RequestStart queues a session start, applied on the next tick
func (g *GameContext) RequestStart() {
	g.World.PushEvent(event.EventGameStart, nil)
}

// RequestStop queues a session stop, applied on the next tick
func (g *GameContext) RequestStop() {
	g.World.PushEvent(event.EventGameStop, nil)
}

// RequestDrop queues a drop at field x, returns false when inactive and nothing was queued
func (g *GameContext) RequestDrop(x float64) bool {
	if !g.State.Active() {
		return false
	}
	g.World.PushEvent(event.EventDropRequest, &event.DropRequestPayload{X: x})
	return true
}

// ===== Synchronous lifecycle =====

// Start resets the session immediately; callers must not hold the world update lock
func (g *GameContext) Start() {
	g.World.RunSafe(g.start)
}

// Stop halts the simulation immediately; entities are kept for display
func (g *GameContext) Stop() {
	g.World.RunSafe(g.stop)
}

func (g *GameContext) start() {
	res := g.World.Resource

	g.World.Clear()
	res.Score.Reset()
	*res.Time = TimeResource{}
	g.State.FrameNumber.Store(0)

	// Stale drops queued against the previous session
	res.Event.Discard(event.EventDropRequest)

	for _, s := range g.World.Systems() {
		if r, ok := s.(Resettable); ok {
			r.Reset()
		}
	}
	for _, h := range g.handlers {
		if _, isSystem := h.(System); isSystem {
			continue
		}
		if r, ok := h.(Resettable); ok {
			r.Reset()
		}
	}

	g.State.SetActive(true)
	g.statActive.Store(true)
	g.statSessions.Add(1)
	g.statEntities.Store(0)
	log.Printf("game: session started, high score %d", res.Score.HighScore())
}

func (g *GameContext) stop() {
	if !g.State.Active() {
		return
	}
	g.State.SetActive(false)
	g.statActive.Store(false)
	log.Printf("game: session stopped, score %d", g.World.Resource.Score.Score())
}

// HandleEvent applies lifecycle events during dispatch, the update lock is already held
func (g *GameContext) HandleEvent(_ *World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameStart:
		g.start()
	case event.EventGameStop:
		g.stop()
	}
}

// EventTypes returns the lifecycle events owned by the context
func (g *GameContext) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameStart, event.EventGameStop}
}

// ===== Tick =====

// Tick applies queued requests, then runs one simulation step if active
// A started step always completes; requests arriving mid-step wait for the next tick
func (g *GameContext) Tick(now time.Time) {
	g.World.RunSafe(func() {
		g.router.DispatchAll(g.World)

		if g.State.Active() {
			frame := g.State.FrameNumber.Add(1)
			g.World.Resource.Time.Update(now, frame)
			g.World.UpdateLocked(g.World.Resource.Time.DeltaTime)

			// Events emitted by systems this step (merge, score) reach handlers before the frame is drawn
			g.router.DispatchAll(g.World)
		}

		g.statTicks.Add(1)
		g.statEntities.Store(int64(g.World.Circles.Count()))
	})
}
