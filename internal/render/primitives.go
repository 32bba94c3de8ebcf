package render

import "github.com/helixml/led-coordinator/internal/panel"

// Range is a half-open pixel range [Lo, Hi).
type Range struct{ Lo, Hi int }

func (r Range) len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// ClampPercentage clamps p to 0..=100, per the §3 invariant that percentages are
// clamped before any rendering.
func ClampPercentage(p float64) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return int(p)
}

// FillVerticalBar fills xRange x yRange from the bottom of yRange upward, proportional
// to pct (already clamped). Fill rows = floor(pct/100 * height).
func FillVerticalBar(fb *panel.Framebuffer, xRange, yRange Range, pct int, c panel.Color) {
	height := yRange.len()
	fillRows := (pct * height) / 100
	top := yRange.Hi - fillRows
	for y := top; y < yRange.Hi; y++ {
		for x := xRange.Lo; x < xRange.Hi; x++ {
			fb.Set(x, y, c)
		}
	}
}

// FillHorizontalBar fills xRange x yRange from the left of xRange rightward,
// proportional to pct. Fill columns = floor(pct/100 * width).
func FillHorizontalBar(fb *panel.Framebuffer, xRange, yRange Range, pct int, c panel.Color) {
	width := xRange.len()
	fillCols := (pct * width) / 100
	right := xRange.Lo + fillCols
	for x := xRange.Lo; x < right; x++ {
		for y := yRange.Lo; y < yRange.Hi; y++ {
			fb.Set(x, y, c)
		}
	}
}

// DrawOutlineRect draws a 1-pixel border around xRange x yRange.
func DrawOutlineRect(fb *panel.Framebuffer, xRange, yRange Range, c panel.Color) {
	for x := xRange.Lo; x < xRange.Hi; x++ {
		fb.Set(x, yRange.Lo, c)
		fb.Set(x, yRange.Hi-1, c)
	}
	for y := yRange.Lo; y < yRange.Hi; y++ {
		fb.Set(xRange.Lo, y, c)
		fb.Set(xRange.Hi-1, y, c)
	}
}

// DrawLine draws a simple axis-agnostic Bresenham line, used by the symbol renderers
// for arcs/strokes built out of short segments.
func DrawLine(fb *panel.Framebuffer, x0, y0, x1, y1 int, c panel.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a circle outline centered at (cx, cy) with the given radius.
func DrawCircle(fb *panel.Framebuffer, cx, cy, radius int, c panel.Color) {
	x, y, d := radius, 0, 1-radius
	for x >= y {
		plotOctants(fb, cx, cy, x, y, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle draws a filled disc centered at (cx, cy) with the given radius.
func FillCircle(fb *panel.Framebuffer, cx, cy, radius int, c panel.Color) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				fb.Set(cx+x, cy+y, c)
			}
		}
	}
}

func plotOctants(fb *panel.Framebuffer, cx, cy, x, y int, c panel.Color) {
	fb.Set(cx+x, cy+y, c)
	fb.Set(cx-x, cy+y, c)
	fb.Set(cx+x, cy-y, c)
	fb.Set(cx-x, cy-y, c)
	fb.Set(cx+y, cy+x, c)
	fb.Set(cx-y, cy+x, c)
	fb.Set(cx+y, cy-x, c)
	fb.Set(cx-y, cy-x, c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DrawText draws text starting at (x, y) using the fixed 3x5 glyph table. Unknown
// glyphs draw nothing but still advance the cursor by 4px (§4.2).
func DrawText(fb *panel.Framebuffer, text string, x, y int, c panel.Color) {
	cursor := x
	for _, r := range text {
		g, ok := glyphFor(r)
		if ok {
			for row := 0; row < 5; row++ {
				bits := g[row]
				for col := 0; col < glyphWidth; col++ {
					if bits&(1<<(glyphWidth-1-col)) != 0 {
						fb.Set(cursor+col, y+row, c)
					}
				}
			}
		}
		cursor += glyphAdvance
	}
}

// DrawTextCentered draws text horizontally centered around centerX.
func DrawTextCentered(fb *panel.Framebuffer, text string, centerX, y int, c panel.Color) {
	DrawText(fb, text, centerX-TextWidth(text)/2, y, c)
}

// checkmarkSprite is the 7x7 green-background / white-tick sprite used wherever a bar
// or label reaches 100% (§4.2). 1 = white tick pixel, 0 = green background pixel.
var checkmarkSprite = [7][7]uint8{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 1, 0, 0},
	{0, 1, 0, 1, 0, 0, 0},
	{0, 0, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// DrawCheckmark draws the 7x7 checkmark sprite with its top-left corner at (x, y).
func DrawCheckmark(fb *panel.Framebuffer, x, y int) {
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			if checkmarkSprite[row][col] == 1 {
				fb.Set(x+col, y+row, TextWhite)
			} else {
				fb.Set(x+col, y+row, CheckmarkBG)
			}
		}
	}
}

// DrawCheckmarkCentered draws the checkmark sprite centered at (centerX, centerY).
func DrawCheckmarkCentered(fb *panel.Framebuffer, centerX, centerY int) {
	DrawCheckmark(fb, centerX-3, centerY-3)
}
