package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/event"
	"github.com/lixenwraith/circle-merge/parameter"
	"github.com/lixenwraith/circle-merge/physics"
	"github.com/lixenwraith/circle-merge/vmath"
)

// MergeSystem combines at most one touching same-tier pair per step
// Below the top tier the pair becomes one circle of the next tier at the midpoint and scores;
// a top-tier pair is removed with nothing created and no score
type MergeSystem struct {
	engine.SystemBase

	statMerges      *atomic.Int64
	statAnnihilated *atomic.Int64
	statTopTier     *atomic.Int64
}

func NewMergeSystem(world *engine.World) *MergeSystem {
	reg := world.Resource.Status
	return &MergeSystem{
		SystemBase:      engine.NewSystemBase(world),
		statMerges:      reg.Ints.Get("merge.count"),
		statAnnihilated: reg.Ints.Get("merge.annihilated"),
		statTopTier:     reg.Ints.Get("merge.top_tier"),
	}
}

func (s *MergeSystem) Name() string { return "merge" }

func (s *MergeSystem) Priority() int { return parameter.PriorityMerge }

// Reset clears per-session counters
func (s *MergeSystem) Reset() {
	s.statMerges.Store(0)
	s.statAnnihilated.Store(0)
	s.statTopTier.Store(0)
}

func (s *MergeSystem) Update(_ *engine.World, _ time.Duration) {
	s.Step()
}

// Step performs the merge scan once, returns true when a pair was consumed
func (s *MergeSystem) Step() bool {
	ids, circles := s.World.Circles.Snapshot()

	i, j, ok := physics.FindMergePair(circles, s.Resource.Config.Physics.MergeEpsilon)
	if !ok {
		return false
	}

	cfg := s.Resource.Config
	merged, created := physics.MergeResult(&circles[i], &circles[j], cfg.MaxTier(), cfg.Radius)

	// Parents leave in one pass so neither index shifts under the other
	s.World.DestroyBatch(ids[i], ids[j])

	if !created {
		s.statAnnihilated.Add(1)
		midX, midY := vmath.Midpoint(circles[i].X, circles[i].Y, circles[j].X, circles[j].Y)
		s.World.PushEvent(event.EventCircleAnnihilated, &event.CirclePayload{
			Tier: circles[i].Tier,
			X:    midX,
			Y:    midY,
		})
		log.Printf("merge: tier %d pair annihilated at (%.0f,%.0f)", circles[i].Tier, midX, midY)
		return true
	}

	entity := s.World.SpawnCircle(merged)
	s.statMerges.Add(1)
	if int64(merged.Tier) > s.statTopTier.Load() {
		s.statTopTier.Store(int64(merged.Tier))
	}

	raised := s.Resource.Score.Add(cfg.Scoring.MergeReward)
	scoreNow, high := s.Resource.Score.Snapshot()

	s.World.PushEvent(event.EventCircleMerged, &event.CirclePayload{
		Entity: entity,
		Tier:   merged.Tier,
		X:      merged.X,
		Y:      merged.Y,
	})
	s.World.PushEvent(event.EventScoreChanged, &event.ScorePayload{
		Score:     scoreNow,
		HighScore: high,
		Raised:    raised,
	})
	return true
}
