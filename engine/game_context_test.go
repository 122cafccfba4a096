package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/config"
	"github.com/lixenwraith/circle-merge/event"
	"github.com/lixenwraith/circle-merge/score"
	"github.com/lixenwraith/circle-merge/storage"
	"github.com/lixenwraith/circle-merge/vmath"
)

type countingSystem struct {
	updates int
	resets  int
}

func (s *countingSystem) Update(_ *World, _ time.Duration) { s.updates++ }
func (s *countingSystem) Priority() int                     { return 10 }
func (s *countingSystem) Reset()                            { s.resets++ }

type dropRecorder struct {
	xs []float64
}

func (d *dropRecorder) HandleEvent(_ *World, ev event.GameEvent) {
	d.xs = append(d.xs, ev.Payload.(*event.DropRequestPayload).X)
}

func (d *dropRecorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventDropRequest}
}

func newTestContext() *GameContext {
	return NewGameContext(config.Default(), score.NewTracker(storage.NewMemoryStore(0)), vmath.NewSeededRand(1))
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGameContextInactiveByDefault(t *testing.T) {
	g := newTestContext()
	sys := &countingSystem{}
	g.AddSystem(sys)

	if g.Active() {
		t.Fatal("new context should be inactive")
	}
	if g.RequestDrop(100) {
		t.Error("RequestDrop should refuse while inactive")
	}
	if g.Resource().Event.Len() != 0 {
		t.Error("inactive drop was queued")
	}

	g.Tick(epoch)
	if sys.updates != 0 {
		t.Errorf("systems ran while inactive: %d", sys.updates)
	}
}

func TestGameContextStartRequestAppliedOnTick(t *testing.T) {
	g := newTestContext()
	sys := &countingSystem{}
	g.AddSystem(sys)

	g.RequestStart()
	if g.Active() {
		t.Fatal("start must wait for the tick")
	}

	g.Tick(epoch)
	if !g.Active() {
		t.Fatal("start not applied")
	}
	if sys.resets != 1 {
		t.Errorf("resets = %d, want 1", sys.resets)
	}
	if sys.updates != 1 {
		t.Errorf("updates = %d, want 1 (start then step in the same tick)", sys.updates)
	}
	if g.State.FrameNumber.Load() != 1 {
		t.Errorf("frame = %d, want 1", g.State.FrameNumber.Load())
	}

	g.RequestStop()
	g.Tick(epoch.Add(16 * time.Millisecond))
	if g.Active() || sys.updates != 1 {
		t.Errorf("stop not applied before step: active=%v updates=%d", g.Active(), sys.updates)
	}
}

func TestGameContextStartResetsSession(t *testing.T) {
	g := newTestContext()
	g.Start()
	g.World.SpawnCircle(component.CircleComponent{X: 100, Y: 100, Radius: 25})
	g.Resource().Score.Add(30)

	g.Stop()
	if g.World.Circles.Count() != 1 {
		t.Error("stop should keep entities for display")
	}

	g.Start()
	if g.World.Circles.Count() != 0 {
		t.Errorf("entities after restart = %d", g.World.Circles.Count())
	}
	if g.Resource().Score.Score() != 0 {
		t.Errorf("score after restart = %d", g.Resource().Score.Score())
	}
	if g.Resource().Score.HighScore() != 30 {
		t.Errorf("high score after restart = %d, want 30", g.Resource().Score.HighScore())
	}
}

func TestGameContextDropsRoutedToHandler(t *testing.T) {
	g := newTestContext()
	rec := &dropRecorder{}
	g.RegisterHandler(rec)
	g.Start()

	if !g.RequestDrop(120) || !g.RequestDrop(80) {
		t.Fatal("RequestDrop refused while active")
	}
	g.Tick(epoch)

	if len(rec.xs) != 2 || rec.xs[0] != 120 || rec.xs[1] != 80 {
		t.Errorf("drops = %v, want [120 80]", rec.xs)
	}
}

func TestTimeResourceDelta(t *testing.T) {
	g := newTestContext()
	g.Start()
	g.Tick(epoch)
	if d := g.Resource().Time.DeltaTime; d != 0 {
		t.Errorf("first delta = %v, want 0", d)
	}
	g.Tick(epoch.Add(16 * time.Millisecond))
	if d := g.Resource().Time.DeltaTime; d != 16*time.Millisecond {
		t.Errorf("delta = %v, want 16ms", d)
	}
}

func TestClockSchedulerManualTicks(t *testing.T) {
	g := newTestContext()
	sys := &countingSystem{}
	g.AddSystem(sys)
	g.Start()

	ticker := NewManualTicker(epoch, 16*time.Millisecond)
	frames := make(chan struct{}, 8)
	cs := NewClockScheduler(g, ticker, func() { frames <- struct{}{} })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cs.Start(ctx)

	for i := 0; i < 3; i++ {
		ticker.Tick()
		select {
		case <-frames:
		case <-time.After(time.Second):
			t.Fatalf("frame %d not rendered", i)
		}
	}

	cs.Stop()
	if cs.TickCount() != 3 {
		t.Errorf("TickCount() = %d, want 3", cs.TickCount())
	}
	if sys.updates != 3 {
		t.Errorf("updates = %d, want 3", sys.updates)
	}
	if cs.Running() {
		t.Error("scheduler still running after Stop")
	}
	// Idempotent
	cs.Stop()
}

func TestClockSchedulerContextCancel(t *testing.T) {
	g := newTestContext()
	cs := NewClockScheduler(g, NewManualTicker(epoch, time.Millisecond), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cs.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSchedulerServiceDrivesScheduler(t *testing.T) {
	g := newTestContext()
	ticker := NewManualTicker(epoch, 16*time.Millisecond)
	frames := make(chan struct{}, 4)
	cs := NewClockScheduler(g, ticker, func() { frames <- struct{}{} })

	svc := NewSchedulerService(context.Background(), cs, "terminal")
	if svc.Name() != "scheduler" || len(svc.Dependencies()) != 1 || svc.Dependencies()[0] != "terminal" {
		t.Fatalf("unexpected identity %q %v", svc.Name(), svc.Dependencies())
	}
	if err := svc.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cs.Running() {
		t.Fatal("scheduler running before Start")
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	ticker.Tick()
	select {
	case <-frames:
	case <-time.After(time.Second):
		t.Fatal("no frame after tick")
	}

	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if cs.Running() || cs.TickCount() != 1 {
		t.Errorf("running=%v ticks=%d after Stop", cs.Running(), cs.TickCount())
	}
}
