package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/core"
	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/parameter"
	"github.com/lixenwraith/circle-merge/physics"
)

// BoundarySystem clamps circles inside the walls and onto the floor
type BoundarySystem struct {
	engine.SystemBase

	statGrounded *atomic.Int64
}

func NewBoundarySystem(world *engine.World) *BoundarySystem {
	return &BoundarySystem{
		SystemBase:   engine.NewSystemBase(world),
		statGrounded: world.Resource.Status.Ints.Get("physics.grounded"),
	}
}

func (s *BoundarySystem) Name() string { return "boundary" }

func (s *BoundarySystem) Priority() int { return parameter.PriorityBoundary }

func (s *BoundarySystem) Update(_ *engine.World, _ time.Duration) {
	field := s.Resource.Config.Field

	var grounded int64
	s.World.Circles.Each(func(_ core.Entity, c *component.CircleComponent) {
		if physics.ConstrainToField(c, field.Width, field.Height) {
			grounded++
		}
	})
	s.statGrounded.Store(grounded)
}
