package input

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/render"
)

// aimSteps is the number of keyboard steps across the field width
const aimSteps = 40

// ViewportSource supplies the current field-to-screen mapping
type ViewportSource interface {
	Viewport(g *engine.GameContext) render.Viewport
}

// Handler applies terminal events to a game session
// Game-facing intents become queued requests; system intents are returned for the caller
type Handler struct {
	game     *engine.GameContext
	viewport ViewportSource

	// Button state of the previous mouse event, a drop fires on the press edge only
	lastButtons tcell.ButtonMask
}

func NewHandler(game *engine.GameContext, viewport ViewportSource) *Handler {
	return &Handler{game: game, viewport: viewport}
}

// Handle processes one event and returns the resolved intent
func (h *Handler) Handle(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		return h.handleMouse(ev)
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

func (h *Handler) handleKey(ev *tcell.EventKey) IntentType {
	intent := lookupKey(ev)

	switch intent {
	case IntentStart:
		if !h.game.Active() {
			h.game.RequestStart()
		}
	case IntentStop:
		if h.game.Active() {
			h.game.RequestStop()
		}
	case IntentAimLeft:
		h.nudgeAim(-1)
	case IntentAimRight:
		h.nudgeAim(1)
	case IntentDrop:
		if !h.game.RequestDrop(h.game.State.AimX()) {
			return IntentNone
		}
	}
	return intent
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) IntentType {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons

	col, _ := ev.Position()
	x, ok := h.viewport.Viewport(h.game).ColumnToFieldX(col)
	if !ok {
		return IntentNone
	}

	h.game.State.SetAimX(x)
	if pressed && h.game.RequestDrop(x) {
		return IntentDrop
	}
	return IntentAimTo
}

// nudgeAim moves the aim by one step, clamped to the field
func (h *Handler) nudgeAim(dir float64) {
	width := h.game.Resource().Config.Field.Width
	step := width / aimSteps
	aim := h.game.State.AimX() + dir*step
	h.game.State.SetAimX(math.Max(0, math.Min(aim, width)))
}
