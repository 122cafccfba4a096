package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the frame and status surfaces
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame        = tcell.NewRGBColor(120, 120, 140) // Container walls and floor
	RgbStatusBar    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHighScoreBg  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbPanelText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbPanelDim     = tcell.NewRGBColor(160, 160, 160) // Gray hints
	RgbAimMarker    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbOverlayText  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbOverlayValue = tcell.NewRGBColor(144, 238, 144) // Light grass green
)

// tierPalette gives each size tier its own color, smallest first
var tierPalette = []tcell.Color{
	tcell.NewRGBColor(255, 99, 71),   // Tomato
	tcell.NewRGBColor(255, 165, 0),   // Orange
	tcell.NewRGBColor(255, 215, 0),   // Gold
	tcell.NewRGBColor(144, 238, 144), // Light green
	tcell.NewRGBColor(64, 224, 208),  // Turquoise
	tcell.NewRGBColor(100, 149, 237), // Cornflower
	tcell.NewRGBColor(186, 85, 211),  // Orchid
	tcell.NewRGBColor(255, 105, 180), // Hot pink
}

// tierGlyphs distinguish tiers without color support
var tierGlyphs = []rune{'░', '▒', '▓', '█', '●', '◆', '■', '◉'}

// TierColor returns the fill color for a tier, cycling past the palette end
func TierColor(tier int) tcell.Color {
	if tier < 0 {
		tier = 0
	}
	return tierPalette[tier%len(tierPalette)]
}

// TierGlyph returns the fill rune for a tier
func TierGlyph(tier int) rune {
	if tier < 0 {
		tier = 0
	}
	return tierGlyphs[tier%len(tierGlyphs)]
}

// TierStyle returns the cell style for a circle of the given tier
func TierStyle(tier int) tcell.Style {
	return tcell.StyleDefault.Foreground(TierColor(tier)).Background(RgbBackground)
}
