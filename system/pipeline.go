package system

import (
	"github.com/lixenwraith/circle-merge/engine"
)

// Pipeline groups the systems of one session
type Pipeline struct {
	Spawn       *SpawnSystem
	Integration *IntegrationSystem
	Boundary    *BoundarySystem
	Overlap     *OverlapSystem
	Merge       *MergeSystem
}

// Install creates every simulation system and registers it with the context
// Step order follows priority: integrate, constrain, separate, merge
func Install(g *engine.GameContext) *Pipeline {
	p := &Pipeline{
		Spawn:       NewSpawnSystem(g.World),
		Integration: NewIntegrationSystem(g.World),
		Boundary:    NewBoundarySystem(g.World),
		Overlap:     NewOverlapSystem(g.World),
		Merge:       NewMergeSystem(g.World),
	}

	g.AddSystem(p.Spawn)
	g.AddSystem(p.Integration)
	g.AddSystem(p.Boundary)
	g.AddSystem(p.Overlap)
	g.AddSystem(p.Merge)
	return p
}
