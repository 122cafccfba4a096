package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/core"
	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/parameter"
	"github.com/lixenwraith/circle-merge/physics"
	"github.com/lixenwraith/circle-merge/status"
)

// IntegrationSystem applies score-scaled gravity, damping and motion to every circle
type IntegrationSystem struct {
	engine.SystemBase

	statGravity *status.AtomicFloat
	statResting *atomic.Int64
}

func NewIntegrationSystem(world *engine.World) *IntegrationSystem {
	return &IntegrationSystem{
		SystemBase:  engine.NewSystemBase(world),
		statGravity: world.Resource.Status.Floats.Get("physics.gravity"),
		statResting: world.Resource.Status.Ints.Get("physics.resting"),
	}
}

func (s *IntegrationSystem) Name() string { return "integration" }

func (s *IntegrationSystem) Priority() int { return parameter.PriorityIntegration }

func (s *IntegrationSystem) Update(_ *engine.World, _ time.Duration) {
	cfg := s.Resource.Config.Physics
	gravity := physics.GravityAt(cfg.Gravity, cfg.GravityPerPoint, s.Resource.Score.Score())
	s.statGravity.Store(gravity)

	var resting int64
	s.World.Circles.Each(func(_ core.Entity, c *component.CircleComponent) {
		physics.Integrate(c, gravity, cfg.Damping, cfg.RestThreshold)
		if c.AtRest() {
			resting++
		}
	})
	s.statResting.Store(resting)
}
