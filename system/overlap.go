package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/parameter"
	"github.com/lixenwraith/circle-merge/physics"
)

// OverlapSystem runs one relaxation pass separating intersecting circles
// Pairs are visited in store order; each push sees the positions left by earlier pairs
type OverlapSystem struct {
	engine.SystemBase

	statOverlaps *atomic.Int64
}

func NewOverlapSystem(world *engine.World) *OverlapSystem {
	return &OverlapSystem{
		SystemBase:   engine.NewSystemBase(world),
		statOverlaps: world.Resource.Status.Ints.Get("physics.overlaps"),
	}
}

func (s *OverlapSystem) Name() string { return "overlap" }

func (s *OverlapSystem) Priority() int { return parameter.PriorityOverlap }

func (s *OverlapSystem) Update(_ *engine.World, _ time.Duration) {
	ids, circles := s.World.Circles.Snapshot()
	if len(circles) < 2 {
		s.statOverlaps.Store(0)
		return
	}

	n := physics.ResolveOverlaps(circles, s.Resource.Config.Physics.OverlapRelax)
	s.World.Circles.Apply(ids, circles)
	s.statOverlaps.Store(int64(n))
}
