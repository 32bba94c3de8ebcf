package render

import "github.com/helixml/led-coordinator/internal/panel"

var (
	progressGreen  = panel.Color{R: 0, G: 200, B: 0}
	progressYellow = panel.Color{R: 220, G: 200, B: 0}
	progressRed    = panel.Color{R: 220, G: 0, B: 0}
)

// Progress renders the legacy full-width vertical progress bar (§4.2): green in the
// bottom third, yellow in the middle third, red in the top third, filled from the
// bottom proportional to pct. Used by producers with a single percentage and no
// hierarchy context.
func Progress(pct float64) *panel.Framebuffer {
	p := ClampPercentage(pct)
	fb := panel.NewFramebuffer()

	fillRows := (p * panel.Height) / 100
	top := panel.Height - fillRows

	bottomThird := panel.Height * 2 / 3
	middleThird := panel.Height / 3

	for y := top; y < panel.Height; y++ {
		var c panel.Color
		switch {
		case y >= bottomThird:
			c = progressGreen
		case y >= middleThird:
			c = progressYellow
		default:
			c = progressRed
		}
		for x := 0; x < panel.Width; x++ {
			fb.Set(x, y, c)
		}
	}
	return fb
}
