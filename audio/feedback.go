package audio

import (
	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/event"
)

// Player is the cue surface used by the feedback handler
type Player interface {
	PlayDrop()
	PlayMerge(tier int)
	PlayAnnihilate()
}

// FeedbackHandler turns simulation events into sound cues
type FeedbackHandler struct {
	player Player
}

func NewFeedbackHandler(player Player) *FeedbackHandler {
	return &FeedbackHandler{player: player}
}

func (h *FeedbackHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCircleDropped,
		event.EventCircleMerged,
		event.EventCircleAnnihilated,
	}
}

func (h *FeedbackHandler) HandleEvent(_ *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventCircleDropped:
		h.player.PlayDrop()
	case event.EventCircleMerged:
		if p, ok := ev.Payload.(*event.CirclePayload); ok {
			h.player.PlayMerge(p.Tier)
		}
	case event.EventCircleAnnihilated:
		h.player.PlayAnnihilate()
	}
}
