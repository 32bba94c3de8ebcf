package render

import "github.com/helixml/led-coordinator/internal/panel"

// Color constants are a closed set (§4.2). Every scene draws exclusively from these.
var (
	ProjectBlue     = panel.Color{R: 0, G: 100, B: 255}
	SprintGreen     = panel.Color{R: 0, G: 255, B: 0}
	GaugeOutline    = panel.Color{R: 100, G: 100, B: 100}
	TextWhite       = panel.Color{R: 255, G: 255, B: 255}
	CheckmarkBG     = panel.Color{R: 0, G: 200, B: 0}
	EmptySlotDim    = panel.Color{R: 10, G: 10, B: 10}
	WifiGreen       = panel.Color{R: 0, G: 255, B: 0}
	WifiErrorRed    = panel.Color{R: 255, G: 0, B: 0}
	TunnelBlue      = panel.Color{R: 0, G: 150, B: 255}
	DiscordPurple   = panel.Color{R: 88, G: 101, B: 242}
	HourglassYellow = panel.Color{R: 255, G: 200, B: 0}
	AllOnWhite      = panel.Color{R: 255, G: 255, B: 255}
)

// UserStoryPalette is the cyclic 8-color palette for user story rows (§4.2).
var UserStoryPalette = [8]panel.Color{
	{R: 0, G: 100, B: 255},  // blue
	{R: 255, G: 220, B: 0},  // yellow
	{R: 0, G: 255, B: 255},  // cyan
	{R: 255, G: 0, B: 255},  // magenta
	{R: 255, G: 140, B: 0},  // orange
	{R: 0, G: 255, B: 100},  // lime
	{R: 255, G: 105, B: 180}, // pink
	{R: 160, G: 0, B: 255},  // purple
}

// PaletteColor returns the palette color for the i-th user story, cycling modulo 8.
func PaletteColor(i int) panel.Color {
	return UserStoryPalette[((i%8)+8)%8]
}
