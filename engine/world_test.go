package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/config"
	"github.com/lixenwraith/circle-merge/event"
)

type orderSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *orderSystem) Update(_ *World, _ time.Duration) { *s.log = append(*s.log, s.name) }
func (s *orderSystem) Priority() int                     { return s.priority }

func newTestWorld() *World {
	return NewWorld(&Resource{Config: config.Default(), Event: event.NewEventQueue()})
}

func TestWorldEntityIDsNeverReused(t *testing.T) {
	w := newTestWorld()
	a := w.SpawnCircle(component.CircleComponent{Tier: 0, Radius: 25})
	b := w.SpawnCircle(component.CircleComponent{Tier: 1, Radius: 35})
	if a == 0 || b <= a {
		t.Fatalf("ids not monotonic: %d, %d", a, b)
	}

	w.DestroyBatch(a)
	w.Clear()
	c := w.SpawnCircle(component.CircleComponent{})
	if c <= b {
		t.Errorf("id %d reused after Clear (last %d)", c, b)
	}
	if w.Circles.Count() != 1 {
		t.Errorf("Count() = %d, want 1", w.Circles.Count())
	}
}

func TestWorldSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&orderSystem{"merge", 40, &log})
	w.AddSystem(&orderSystem{"integrate", 10, &log})
	w.AddSystem(&orderSystem{"overlap", 30, &log})
	w.AddSystem(&orderSystem{"boundary", 20, &log})

	w.Update(0)

	want := []string{"integrate", "boundary", "overlap", "merge"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("run order = %v, want %v", log, want)
		}
	}
}

func TestWorldPushEvent(t *testing.T) {
	w := newTestWorld()
	w.PushEvent(event.EventCircleMerged, &event.CirclePayload{Tier: 2})
	evs := w.Resource.Event.Consume()
	if len(evs) != 1 || evs[0].Type != event.EventCircleMerged {
		t.Fatalf("events = %v", evs)
	}

	// No queue wired: silently dropped
	bare := NewWorld(nil)
	bare.PushEvent(event.EventGameStart, nil)
}
