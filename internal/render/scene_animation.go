package render

import (
	"time"

	"github.com/helixml/led-coordinator/internal/panel"
)

// Animation is the closed set of named finite/looping scenes (§3).
type Animation string

const (
	AnimationBoot          Animation = "boot"
	AnimationWifiSearching Animation = "wifi_searching"
	AnimationActivity      Animation = "activity"
	AnimationIdle          Animation = "idle"
)

// ValidAnimations enumerates the full closed set, for client/server-side validation.
var ValidAnimations = map[Animation]bool{
	AnimationBoot: true, AnimationWifiSearching: true, AnimationActivity: true, AnimationIdle: true,
}

// AnimationSpec describes an animation's timing: whether it is finite, how many
// distinct frames it has, and its default per-frame delay (§4.3).
type AnimationSpec struct {
	Loop        bool
	FrameCount  int
	FrameDelay  time.Duration
}

var animationSpecs = map[Animation]AnimationSpec{
	AnimationBoot:          {Loop: false, FrameCount: 40, FrameDelay: 50 * time.Millisecond},
	AnimationWifiSearching: {Loop: true, FrameCount: 3, FrameDelay: 400 * time.Millisecond},
	AnimationActivity:      {Loop: true, FrameCount: 2, FrameDelay: 500 * time.Millisecond},
	AnimationIdle:          {Loop: true, FrameCount: 8, FrameDelay: 300 * time.Millisecond},
}

// SpecFor returns the timing spec for a. The bool is false for an unrecognized name.
func SpecFor(a Animation) (AnimationSpec, bool) {
	s, ok := animationSpecs[a]
	return s, ok
}

// RenderAnimationFrame renders frame index frameIdx of animation a. frameIdx is not
// pre-wrapped: looping animations wrap it modulo their frame count themselves.
func RenderAnimationFrame(a Animation, frameIdx int) *panel.Framebuffer {
	switch a {
	case AnimationBoot:
		return bootFrame(frameIdx)
	case AnimationWifiSearching:
		return wifiSearchingFrame(frameIdx)
	case AnimationActivity:
		return activityFrame(frameIdx)
	case AnimationIdle:
		return idleFrame(frameIdx)
	default:
		return panel.NewFramebuffer()
	}
}

// bootFrame advances a horizontal progress bar from 0 to 100 across its frame count,
// with "BOOTING..." above it (§4.3). Finite: frameIdx is clamped to the last frame.
func bootFrame(frameIdx int) *panel.Framebuffer {
	spec := animationSpecs[AnimationBoot]
	if frameIdx >= spec.FrameCount {
		frameIdx = spec.FrameCount - 1
	}
	if frameIdx < 0 {
		frameIdx = 0
	}
	pct := (frameIdx * 100) / (spec.FrameCount - 1)

	fb := panel.NewFramebuffer()
	DrawTextCentered(fb, "BOOTING...", panel.Width/2, 24, TextWhite)
	barX := Range{Lo: 8, Hi: 56}
	barY := Range{Lo: 34, Hi: 40}
	DrawOutlineRect(fb, barX, barY, GaugeOutline)
	FillHorizontalBar(fb, Range{Lo: barX.Lo + 1, Hi: barX.Hi - 1}, Range{Lo: barY.Lo + 1, Hi: barY.Hi - 1}, pct, ProjectBlue)
	return fb
}

func wifiSearchingFrame(frameIdx int) *panel.Framebuffer {
	arcs := (frameIdx % 3) + 1
	fb := panel.NewFramebuffer()
	drawWifiArcs(fb, arcs, WifiGreen)
	return fb
}

func activityFrame(frameIdx int) *panel.Framebuffer {
	fb := panel.NewFramebuffer()
	if frameIdx%2 == 0 {
		fb.Set(panel.Width-3, 2, TextWhite)
	}
	return fb
}

// idleFrame rotates a single lit pixel around the panel's perimeter across 8 frames.
func idleFrame(frameIdx int) *panel.Framebuffer {
	perimeter := [8][2]int{
		{32, 2}, {50, 14}, {60, 32}, {50, 50},
		{32, 60}, {14, 50}, {2, 32}, {14, 14},
	}
	fb := panel.NewFramebuffer()
	pos := perimeter[((frameIdx%8)+8)%8]
	fb.Set(pos[0], pos[1], TextWhite)
	return fb
}

// String helpers used by the coordinator/IPC layers to format free-form log fields.
func (a Animation) String() string { return string(a) }
func (s Symbol) String() string    { return string(s) }
