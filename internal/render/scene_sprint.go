package render

import (
	"fmt"

	"github.com/helixml/led-coordinator/internal/panel"
)

const sprintViewNameBudget = 10

var projectBarY = Range{Lo: 0, Hi: 10}

// sprintColumns returns the three columns (21, 21 and 22 pixels wide) that the area
// of SprintView below the project bar is divided into (§4.2).
func sprintColumns() [3]Range {
	third := panel.Width / 3
	return [3]Range{
		{Lo: 0, Hi: third},
		{Lo: third, Hi: 2 * third},
		{Lo: 2 * third, Hi: panel.Width},
	}
}

// SprintView renders the sprint-row layout (§4.2): a project bar on top and up to two
// sprint gauges below. The third column is always the dim empty-slot color, as is the
// first or second column when there is no sprint for it. Additional sprints beyond the
// first two are silently omitted.
func SprintView(p LayoutPayload) *panel.Framebuffer {
	p = p.Normalize(sprintViewNameBudget)
	fb := panel.NewFramebuffer()

	FillHorizontalBar(fb, Range{Lo: 0, Hi: panel.Width}, projectBarY, p.Project.Percentage, ProjectBlue)
	if p.Project.Percentage >= 100 {
		DrawCheckmarkCentered(fb, panel.Width/2, projectBarY.Lo+projectBarY.len()/2)
	} else {
		DrawTextCentered(fb, fmt.Sprintf("%d%%", p.Project.Percentage), panel.Width/2, projectBarY.Lo+2, TextWhite)
	}

	cols := sprintColumns()
	gaugeY := Range{Lo: 16, Hi: 60}

	for i := 0; i < 2; i++ {
		col := cols[i]
		gaugeX := Range{Lo: col.Lo + 4, Hi: col.Hi - 4}
		if i >= len(p.Sprints) {
			fillEmptySlot(fb, col)
			continue
		}
		sprint := p.Sprints[i]
		label := fmt.Sprintf("S%d", i+1)
		DrawText(fb, label, col.Lo+2, 11, TextWhite)

		DrawOutlineRect(fb, gaugeX, gaugeY, GaugeOutline)
		FillVerticalBar(fb, Range{Lo: gaugeX.Lo + 1, Hi: gaugeX.Hi - 1},
			Range{Lo: gaugeY.Lo + 1, Hi: gaugeY.Hi - 1}, sprint.Percentage, SprintGreen)

		midY := (gaugeY.Lo + gaugeY.Hi) / 2
		midX := (gaugeX.Lo + gaugeX.Hi) / 2
		if sprint.Percentage >= 100 {
			DrawCheckmarkCentered(fb, midX, midY)
		} else {
			DrawTextCentered(fb, fmt.Sprintf("%d%%", sprint.Percentage), midX, midY-2, TextWhite)
		}
	}

	// Third column: only ever the unused-slot indicator, even if a third sprint was
	// supplied (§4.2 tie-break: additional sprints are silently omitted).
	fillEmptySlot(fb, cols[2])

	return fb
}

func fillEmptySlot(fb *panel.Framebuffer, col Range) {
	for x := col.Lo; x < col.Hi; x++ {
		for y := 13; y < panel.Height; y++ {
			fb.Set(x, y, EmptySlotDim)
		}
	}
}
