package render

import (
	"fmt"

	"github.com/helixml/led-coordinator/internal/panel"
)

const singleViewNameBudget = 10

var singleGaugeX = Range{Lo: 22, Hi: 42}
var singleGaugeY = Range{Lo: 12, Hi: 56}

// SingleView renders the single-project layout (§4.2). Pure function: always returns a
// fully populated 64x64 framebuffer for the given payload, deterministically.
func SingleView(p LayoutPayload) *panel.Framebuffer {
	p = p.Normalize(singleViewNameBudget)
	fb := panel.NewFramebuffer()

	DrawTextCentered(fb, p.Project.Name, panel.Width/2, 3, TextWhite)

	DrawOutlineRect(fb, singleGaugeX, singleGaugeY, GaugeOutline)
	FillVerticalBar(fb, Range{Lo: singleGaugeX.Lo + 1, Hi: singleGaugeX.Hi - 1},
		Range{Lo: singleGaugeY.Lo + 1, Hi: singleGaugeY.Hi - 1}, p.Project.Percentage, SprintGreen)

	hasSprints := len(p.Sprints) > 0
	hasUserStories := false
	for _, s := range p.Sprints {
		if len(s.UserStories) > 0 {
			hasUserStories = true
			break
		}
	}

	if hasSprints || hasUserStories {
		DrawText(fb, "S:", 2, 48, TextWhite)
		DrawText(fb, "US:", 44, 48, TextWhite)

		sprintsCompleted, sprintsTotal := completedCount(p.Sprints, func(s Sprint) int { return s.Percentage })
		var allStories []UserStory
		for _, s := range p.Sprints {
			allStories = append(allStories, s.UserStories...)
		}
		storiesCompleted, storiesTotal := completedCount(allStories, func(u UserStory) int { return u.Percentage })

		DrawText(fb, fmt.Sprintf("%d/%d", sprintsCompleted, sprintsTotal), 2, 61, TextWhite)
		DrawText(fb, fmt.Sprintf("%d/%d", storiesCompleted, storiesTotal), 44, 61, TextWhite)
	}

	if p.Project.Percentage >= 100 {
		DrawCheckmarkCentered(fb, panel.Width/2, 64)
	} else {
		DrawTextCentered(fb, fmt.Sprintf("%d%%", p.Project.Percentage), panel.Width/2, 64, TextWhite)
	}

	return fb
}
