package render

import (
	"fmt"

	"github.com/helixml/led-coordinator/internal/panel"
)

const userStoryNameBudget = 12

var userStoryGaugeX = Range{Lo: 14, Hi: 38}

// UserStoryLayout renders the focused sprint and its user stories as equal-height
// horizontal bands (§4.2). If the selected sprint has no user stories, only the sprint
// line is rendered; if the focus index does not name a sprint, the framebuffer is left
// blank.
func UserStoryLayout(p LayoutPayload) *panel.Framebuffer {
	p = p.Normalize(userStoryNameBudget)
	fb := panel.NewFramebuffer()

	idx := 0
	if p.FocusSprintIndex != nil {
		idx = *p.FocusSprintIndex
	}
	if idx < 0 || idx >= len(p.Sprints) {
		return fb
	}
	sprint := p.Sprints[idx]

	lines := 1 + len(sprint.UserStories)
	lineHeight := panel.Height / lines

	drawLine := func(row int, label string, pct int, color panel.Color) {
		top := row * lineHeight
		bottom := top + lineHeight
		if row == lines-1 {
			bottom = panel.Height
		}
		gaugeY := Range{Lo: top + 1, Hi: bottom - 1}
		centerY := (top + bottom) / 2

		DrawText(fb, label, 2, centerY-2, TextWhite)
		DrawOutlineRect(fb, userStoryGaugeX, gaugeY, GaugeOutline)
		FillHorizontalBar(fb, Range{Lo: userStoryGaugeX.Lo + 1, Hi: userStoryGaugeX.Hi - 1},
			Range{Lo: gaugeY.Lo + 1, Hi: gaugeY.Hi - 1}, pct, color)

		rightX := userStoryGaugeX.Hi + 3
		if pct >= 100 {
			DrawCheckmarkCentered(fb, rightX+3, centerY)
		} else {
			DrawText(fb, fmt.Sprintf("%d%%", pct), rightX, centerY-2, TextWhite)
		}
	}

	drawLine(0, "S1", sprint.Percentage, SprintGreen)
	for i, us := range sprint.UserStories {
		drawLine(i+1, fmt.Sprintf("U%d", i+1), us.Percentage, PaletteColor(i))
	}

	return fb
}
