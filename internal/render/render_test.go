package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helixml/led-coordinator/internal/panel"
)

func TestClampPercentage(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"below zero", -5, 0},
		{"zero", 0, 0},
		{"mid", 42.9, 42},
		{"at hundred", 100, 100},
		{"above hundred", 137, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPercentage(tt.in))
		})
	}
}

func TestFillVerticalBarFillsFromBottom(t *testing.T) {
	fb := panel.NewFramebuffer()
	xRange := Range{Lo: 0, Hi: 4}
	yRange := Range{Lo: 0, Hi: 10}
	FillVerticalBar(fb, xRange, yRange, 50, TextWhite)

	for y := 0; y < 5; y++ {
		assert.Equal(t, panel.Color{}, fb.At(0, y), "top half should remain unfilled at y=%d", y)
	}
	for y := 5; y < 10; y++ {
		assert.Equal(t, TextWhite, fb.At(0, y), "bottom half should be filled at y=%d", y)
	}
}

func TestFillHorizontalBarFillsFromLeft(t *testing.T) {
	fb := panel.NewFramebuffer()
	xRange := Range{Lo: 0, Hi: 10}
	yRange := Range{Lo: 0, Hi: 4}
	FillHorizontalBar(fb, xRange, yRange, 30, TextWhite)

	for x := 0; x < 3; x++ {
		assert.Equal(t, TextWhite, fb.At(x, 0))
	}
	for x := 3; x < 10; x++ {
		assert.Equal(t, panel.Color{}, fb.At(x, 0))
	}
}

func TestDrawOutlineRectDrawsOnlyBorder(t *testing.T) {
	fb := panel.NewFramebuffer()
	DrawOutlineRect(fb, Range{Lo: 2, Hi: 6}, Range{Lo: 2, Hi: 6}, GaugeOutline)

	assert.Equal(t, GaugeOutline, fb.At(2, 2))
	assert.Equal(t, GaugeOutline, fb.At(5, 5))
	assert.Equal(t, panel.Color{}, fb.At(3, 3), "interior should not be drawn")
}

func TestPaletteColorCyclesModuloEight(t *testing.T) {
	assert.Equal(t, PaletteColor(0), PaletteColor(8))
	assert.Equal(t, PaletteColor(1), PaletteColor(9))
}

func TestLayoutPayloadNormalizeClampsAndTruncates(t *testing.T) {
	p := LayoutPayload{
		Layout:  LayoutSingleView,
		Project: Project{Name: "a-very-long-project-name-indeed", Percentage: 250},
		Sprints: []Sprint{
			{
				Name:       "sprint-one-has-a-long-name",
				Percentage: -10,
				UserStories: []UserStory{
					{Title: "story-with-a-rather-long-title", Percentage: 101},
				},
			},
		},
	}

	out := p.Normalize(8)

	assert.Equal(t, 100, out.Project.Percentage)
	assert.Len(t, out.Project.Name, 8)
	assert.Equal(t, 0, out.Sprints[0].Percentage)
	assert.Len(t, out.Sprints[0].Name, 8)
	assert.Equal(t, 100, out.Sprints[0].UserStories[0].Percentage)
	assert.Len(t, out.Sprints[0].UserStories[0].Title, 8)
}

func TestLayoutPayloadNormalizeLeavesShortFieldsUntouched(t *testing.T) {
	p := LayoutPayload{
		Project: Project{Name: "ok", Percentage: 50},
	}
	out := p.Normalize(20)
	assert.Equal(t, "ok", out.Project.Name)
	assert.Equal(t, 50, out.Project.Percentage)
}

func TestSingleViewProducesAFullSizeFramebuffer(t *testing.T) {
	p := LayoutPayload{
		Layout:  LayoutSingleView,
		Project: Project{Name: "Demo", Percentage: 60},
		Sprints: []Sprint{{Name: "S1", Percentage: 100, UserStories: []UserStory{{Title: "US1", Percentage: 100}}}},
	}
	fb := SingleView(p.Normalize(32))
	assert.NotNil(t, fb)
}

// TestSingleViewEndToEndScenario pins down the single-view pixel layout for the
// worked example: project "Demo" at 100%, one sprint, one of its two user stories
// complete. The gauge fills solid green end to end and the 100% bottom label becomes a
// checkmark instead of text.
func TestSingleViewEndToEndScenario(t *testing.T) {
	p := LayoutPayload{
		Layout:  LayoutSingleView,
		Project: Project{Name: "Demo", Percentage: 100},
		Sprints: []Sprint{{
			Name:       "S1",
			Percentage: 40,
			UserStories: []UserStory{
				{Title: "U1", Percentage: 100},
				{Title: "U2", Percentage: 50},
			},
		}},
	}
	fb := SingleView(p)

	tests := []struct {
		name string
		x, y int
		want panel.Color
	}{
		{"gauge top-left border", 22, 12, GaugeOutline},
		{"gauge interior is fully filled green", 30, 30, SprintGreen},
		{"gauge interior near the bottom is filled green", 30, 54, SprintGreen},
		{"area left of the gauge stays black", 10, 30, panel.Color{}},
		{"checkmark background at the clipped bottom", 29, 61, CheckmarkBG},
		{"checkmark tick pixel at the clipped bottom", 33, 63, TextWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fb.At(tt.x, tt.y))
		})
	}
}

func TestSprintViewAlwaysFillsThreeColumnsRegardlessOfSprintCount(t *testing.T) {
	p := LayoutPayload{
		Layout:  LayoutSprintView,
		Project: Project{Name: "Demo", Percentage: 10},
		Sprints: []Sprint{{Name: "Only One", Percentage: 40}},
	}
	fb := SprintView(p.Normalize(32))
	assert.NotNil(t, fb)

	cols := sprintColumns()
	assert.Len(t, cols, 3)

	assert.Equal(t, SprintGreen, fb.At(10, 50), "first column holds the only sprint's gauge")
	assert.Equal(t, EmptySlotDim, fb.At(30, 30), "second column has no sprint and is dim")
	assert.Equal(t, EmptySlotDim, fb.At(50, 30), "third column is dim")
}

// TestSprintViewEndToEndScenario pins down the sprint-view pixel layout for the worked
// example: project at 50%, sprint S1 at 100%, sprint S2 at 0%. The project bar splits
// blue/black at the halfway column, S1's gauge fills solid green with a checkmark, S2's
// gauge stays unfilled, and the unused third column is always the dim empty-slot color.
func TestSprintViewEndToEndScenario(t *testing.T) {
	p := LayoutPayload{
		Layout:  LayoutSprintView,
		Project: Project{Name: "Demo", Percentage: 50},
		Sprints: []Sprint{
			{Name: "S1", Percentage: 100},
			{Name: "S2", Percentage: 0},
		},
	}
	fb := SprintView(p)

	tests := []struct {
		name string
		x, y int
		want panel.Color
	}{
		{"project bar left half is filled blue", 5, 8, ProjectBlue},
		{"project bar right half stays black", 50, 8, panel.Color{}},
		{"S1 gauge interior is fully filled green", 6, 20, SprintGreen},
		{"S1 checkmark background", 7, 35, CheckmarkBG},
		{"S1 checkmark tick pixel", 12, 36, TextWhite},
		{"S2 gauge interior stays unfilled", 30, 25, panel.Color{}},
		{"S2 gauge border is drawn", 25, 16, GaugeOutline},
		{"third column is the dim empty-slot color", 50, 30, EmptySlotDim},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fb.At(tt.x, tt.y))
		})
	}
}

func TestUserStoryLayoutDefaultsToFirstSprintWhenFocusIndexMissing(t *testing.T) {
	p := LayoutPayload{
		Layout:  LayoutUserStoryLayout,
		Project: Project{Name: "Demo", Percentage: 10},
		Sprints: []Sprint{
			{Name: "S1", Percentage: 20, UserStories: []UserStory{{Title: "US1", Percentage: 0}}},
			{Name: "S2", Percentage: 80},
		},
	}
	fb := UserStoryLayout(p.Normalize(32))
	assert.NotNil(t, fb)

	// S1 (20%, one user story) gives two 32-row bands; S2 (80%, no stories) would give
	// one band filled far past x=25.
	assert.Equal(t, SprintGreen, fb.At(16, 16), "sprint band is filled at 20%")
	assert.Equal(t, panel.Color{}, fb.At(25, 16), "sprint band stays unfilled past 20%")
	assert.Equal(t, GaugeOutline, fb.At(20, 33), "second band holds S1's user story gauge")
}

// TestUserStoryLayoutEndToEndScenario pins down the user-story-layout pixel layout for
// the worked example: the focus sprint sits at 58%, with three user stories at 25%,
// 50%, and 100%. Four equal 16-row bands stack top to bottom; the last band's gauge
// fills completely and ends in a checkmark instead of a percentage label.
func TestUserStoryLayoutEndToEndScenario(t *testing.T) {
	p := LayoutPayload{
		Layout:  LayoutUserStoryLayout,
		Project: Project{Name: "Demo", Percentage: 10},
		Sprints: []Sprint{{
			Name:       "S1",
			Percentage: 58,
			UserStories: []UserStory{
				{Title: "U1", Percentage: 25},
				{Title: "U2", Percentage: 50},
				{Title: "U3", Percentage: 100},
			},
		}},
	}
	fb := UserStoryLayout(p)

	tests := []struct {
		name string
		x, y int
		want panel.Color
	}{
		{"sprint band (58%) is filled green within its fill width", 20, 8, SprintGreen},
		{"sprint band stays unfilled past its fill width", 30, 8, panel.Color{}},
		{"U1 band (25%) is filled with the first palette color", 17, 24, PaletteColor(0)},
		{"U1 band stays unfilled past its fill width", 25, 24, panel.Color{}},
		{"U2 band (50%) is filled with the second palette color", 18, 40, PaletteColor(1)},
		{"U2 band stays unfilled past its fill width", 30, 40, panel.Color{}},
		{"U3 band (100%) is filled with the third palette color", 20, 56, PaletteColor(2)},
		{"U3 band ends in a checkmark background instead of a label", 41, 53, CheckmarkBG},
		{"U3 band checkmark tick pixel", 46, 54, TextWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fb.At(tt.x, tt.y))
		})
	}
}

func TestUserStoryLayoutOutOfRangeFocusReturnsEmptyFramebuffer(t *testing.T) {
	idx := 5
	p := LayoutPayload{
		Layout:           LayoutUserStoryLayout,
		Project:          Project{Name: "Demo", Percentage: 10},
		Sprints:          []Sprint{{Name: "S1", Percentage: 20}},
		FocusSprintIndex: &idx,
	}
	fb := UserStoryLayout(p.Normalize(32))
	assert.Equal(t, panel.NewFramebuffer(), fb)
}

func TestRenderSymbolCoversEveryValidSymbol(t *testing.T) {
	for s := range ValidSymbols {
		fb := RenderSymbol(s)
		assert.NotNil(t, fb, "symbol %q should render", s)
	}
}

func TestRenderAnimationFrameCoversEveryValidAnimation(t *testing.T) {
	for a := range ValidAnimations {
		spec, ok := SpecFor(a)
		assert.True(t, ok)
		fb := RenderAnimationFrame(a, 0)
		assert.NotNil(t, fb)
		assert.Greater(t, spec.FrameCount, 0)
	}
}

func TestProgressThreeBandColoring(t *testing.T) {
	low := Progress(10)
	mid := Progress(50)
	high := Progress(95)
	assert.NotNil(t, low)
	assert.NotNil(t, mid)
	assert.NotNil(t, high)

	// 10% fills 6 rows (58..63), all in the green bottom third.
	assert.Equal(t, progressGreen, low.At(0, 63))
	assert.Equal(t, panel.Color{}, low.At(0, 30))

	// 50% fills 32 rows (32..63): green from y=42, yellow from y=21.
	assert.Equal(t, progressGreen, mid.At(0, 50))
	assert.Equal(t, progressYellow, mid.At(0, 35))
	assert.Equal(t, panel.Color{}, mid.At(0, 20))

	// 95% fills 60 rows (4..63), reaching the red top third.
	assert.Equal(t, progressGreen, high.At(0, 50))
	assert.Equal(t, progressYellow, high.At(0, 30))
	assert.Equal(t, progressRed, high.At(0, 10))
	assert.Equal(t, panel.Color{}, high.At(0, 0))
}
