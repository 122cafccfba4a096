// Package render draws the game state onto a tcell screen
package render

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/circle-merge/component"
	"github.com/lixenwraith/circle-merge/engine"
)

// TerminalRenderer handles all terminal rendering
// It only reads game state; call RenderFrame from the goroutine that ticks the game
type TerminalRenderer struct {
	screen  tcell.Screen
	overlay atomic.Bool
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetOverlay shows or hides the metrics overlay
func (r *TerminalRenderer) SetOverlay(on bool) {
	r.overlay.Store(on)
}

// ToggleOverlay flips the metrics overlay and returns the new state
func (r *TerminalRenderer) ToggleOverlay() bool {
	for {
		old := r.overlay.Load()
		if r.overlay.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Viewport returns the field mapping for the current screen size
func (r *TerminalRenderer) Viewport(g *engine.GameContext) Viewport {
	w, h := r.screen.Size()
	cfg := g.Resource().Config
	return NewViewport(w, h, cfg.Field.Width, cfg.Field.Height)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(g *engine.GameContext) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	vp := r.Viewport(g)

	r.drawStatusBar(g)

	if g.Active() {
		r.drawFrame(vp, defaultStyle)
		_, circles := g.World.Circles.Snapshot()
		for i := range circles {
			r.drawCircle(vp, &circles[i])
		}
		r.drawAim(vp, g, defaultStyle)
		r.drawHint(vp, "h/l aim  space/click drop  x stop  m mute  q quit", defaultStyle)
	} else {
		r.drawStartPanel(g, defaultStyle)
	}

	if r.overlay.Load() {
		r.drawOverlay(g, defaultStyle)
	}

	r.screen.Show()
}

// drawStatusBar draws score, high score and the next-tier preview on the top row
func (r *TerminalRenderer) drawStatusBar(g *engine.GameContext) {
	w, _ := r.screen.Size()
	barStyle := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, barStyle)
	}

	score, high := g.Resource().Score.Snapshot()
	x := r.drawText(1, 0, fmt.Sprintf("Score: %d", score), barStyle)

	highStyle := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbHighScoreBg)
	x = r.drawText(x+2, 0, fmt.Sprintf(" High: %d ", high), highStyle)

	if g.Active() {
		next := int(g.State.NextTier.Load())
		x = r.drawText(x+2, 0, "Next: ", barStyle)
		previewStyle := TierStyle(next)
		r.screen.SetContent(x, 0, TierGlyph(next), nil, previewStyle)
		r.screen.SetContent(x+1, 0, TierGlyph(next), nil, previewStyle)
		r.drawText(x+3, 0, fmt.Sprintf("(%d)", next), barStyle)
	}
}

// drawFrame draws the container walls and floor
func (r *TerminalRenderer) drawFrame(vp Viewport, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbFrame)
	left := vp.OffsetX - 1
	right := vp.OffsetX + vp.Cols
	floor := vp.OffsetY + vp.Rows

	for row := vp.OffsetY; row < floor; row++ {
		r.screen.SetContent(left, row, '│', nil, style)
		r.screen.SetContent(right, row, '│', nil, style)
	}
	r.screen.SetContent(left, floor, '└', nil, style)
	r.screen.SetContent(right, floor, '┘', nil, style)
	for col := vp.OffsetX; col < right; col++ {
		r.screen.SetContent(col, floor, '─', nil, style)
	}
}

// drawCircle fills every field cell whose center lies inside the circle
// The center cell is always drawn so small circles stay visible at coarse scales
func (r *TerminalRenderer) drawCircle(vp Viewport, c *component.CircleComponent) {
	glyph := TierGlyph(c.Tier)
	style := TierStyle(c.Tier)

	minCol, minRow := vp.FieldToCell(c.X-c.Radius, c.Y-c.Radius)
	maxCol, maxRow := vp.FieldToCell(c.X+c.Radius, c.Y+c.Radius)
	rSq := c.Radius * c.Radius

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !vp.InField(col, row) {
				continue
			}
			x, y := vp.CellCenter(col, row)
			dx, dy := x-c.X, y-c.Y
			if dx*dx+dy*dy <= rSq {
				r.screen.SetContent(col, row, glyph, nil, style)
			}
		}
	}

	if col, row := vp.FieldToCell(c.X, c.Y); vp.InField(col, row) {
		r.screen.SetContent(col, row, glyph, nil, style)
	}
}

// drawAim marks the keyboard drop column on the row above the field
func (r *TerminalRenderer) drawAim(vp Viewport, g *engine.GameContext, defaultStyle tcell.Style) {
	aim := math.Max(0, math.Min(g.State.AimX(), vp.FieldW-1e-9))
	col, _ := vp.FieldToCell(aim, 0)
	r.screen.SetContent(col, vp.OffsetY, '▼', nil, defaultStyle.Foreground(RgbAimMarker))
}

func (r *TerminalRenderer) drawHint(vp Viewport, text string, defaultStyle tcell.Style) {
	w, _ := r.screen.Size()
	row := vp.OffsetY + vp.Rows + 1
	r.drawText(max((w-len(text))/2, 0), row, text, defaultStyle.Foreground(RgbPanelDim))
}

type panelLine struct {
	text  string
	style tcell.Style
}

// drawStartPanel shows the title screen while no session is running
func (r *TerminalRenderer) drawStartPanel(g *engine.GameContext, defaultStyle tcell.Style) {
	w, h := r.screen.Size()
	score, high := g.Resource().Score.Snapshot()

	lines := []panelLine{
		{"CIRCLE MERGE", defaultStyle.Foreground(RgbPanelText).Bold(true)},
		{"", defaultStyle},
		{"Drop circles, match sizes, merge them up.", defaultStyle.Foreground(RgbPanelDim)},
		{"", defaultStyle},
		{fmt.Sprintf("High score: %d", high), defaultStyle.Foreground(RgbHighScoreBg)},
	}
	if score > 0 {
		lines = append(lines, panelLine{fmt.Sprintf("Last score: %d", score), defaultStyle.Foreground(RgbPanelText)})
	}
	lines = append(lines,
		panelLine{"", defaultStyle},
		panelLine{"Enter start   q quit", defaultStyle.Foreground(RgbPanelDim)},
	)

	top := max((h-len(lines))/2, statusRows)
	for i, l := range lines {
		r.drawText(max((w-len([]rune(l.text)))/2, 0), top+i, l.text, l.style)
	}
}

// drawOverlay lists status registry metrics in the top-right corner
func (r *TerminalRenderer) drawOverlay(g *engine.GameContext, defaultStyle tcell.Style) {
	w, _ := r.screen.Size()
	lines := g.Resource().Status.Snapshot()

	keyStyle := defaultStyle.Foreground(RgbOverlayText)
	valStyle := defaultStyle.Foreground(RgbOverlayValue)
	for i, l := range lines {
		text := l.Key + " "
		x := max(w-len(text)-len(l.Value)-1, 0)
		x = r.drawText(x, statusRows+i, text, keyStyle)
		r.drawText(x, statusRows+i, l.Value, valStyle)
	}
}

// drawText writes s starting at (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
