package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/core"
	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/event"
	"github.com/lixenwraith/circle-merge/parameter"
	"github.com/lixenwraith/circle-merge/vmath"
)

// SpawnSystem places player drops and owns the next-tier roll
// Event-driven: drops arrive as EventDropRequest, Update does nothing
type SpawnSystem struct {
	engine.SystemBase

	rng  vmath.RandomSource
	next int

	statDrops   *atomic.Int64
	statIgnored *atomic.Int64
}

// NewSpawnSystem creates the spawn system using the world's random source and rolls the first tier
func NewSpawnSystem(world *engine.World) *SpawnSystem {
	s := &SpawnSystem{
		SystemBase:  engine.NewSystemBase(world),
		rng:         world.Resource.Rand,
		statDrops:   world.Resource.Status.Ints.Get("spawn.drops"),
		statIgnored: world.Resource.Status.Ints.Get("spawn.ignored"),
	}
	s.Roll()
	return s
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Update(_ *engine.World, _ time.Duration) {}

// Reset picks the first tier of a new session
func (s *SpawnSystem) Reset() {
	s.statDrops.Store(0)
	s.statIgnored.Store(0)
	s.Roll()
}

func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventDropRequest}
}

func (s *SpawnSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.DropRequestPayload); ok {
		s.Drop(p.X)
	}
}

// NextTier returns the tier the next drop will use
func (s *SpawnSystem) NextTier() int {
	return s.next
}

// Roll draws a new next tier uniformly from the spawnable tiers and publishes it
func (s *SpawnSystem) Roll() int {
	s.next = s.rng.Intn(s.Resource.Config.SpawnTiers())
	s.Resource.Game.NextTier.Store(int32(s.next))
	return s.next
}

// Drop creates a resting circle of the next tier at (x, spawn height) and re-rolls
// Ignored while the game is inactive: no entity and no re-roll
func (s *SpawnSystem) Drop(x float64) (core.Entity, bool) {
	if !s.Resource.Game.Active() {
		s.statIgnored.Add(1)
		return 0, false
	}

	cfg := s.Resource.Config
	tier := s.next
	entity := s.World.SpawnCircle(component.CircleComponent{
		X:      x,
		Y:      cfg.Spawn.Y,
		Tier:   tier,
		Radius: cfg.Radius(tier),
	})
	s.Roll()
	s.statDrops.Add(1)

	s.World.PushEvent(event.EventCircleDropped, &event.CirclePayload{
		Entity: entity,
		Tier:   tier,
		X:      x,
		Y:      cfg.Spawn.Y,
	})
	return entity, true
}
