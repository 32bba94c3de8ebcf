package ledclient

import (
	"fmt"

	"github.com/helixml/led-coordinator/internal/ipc"
	"github.com/helixml/led-coordinator/internal/queue"
	"github.com/helixml/led-coordinator/internal/render"
)

// Priority mirrors queue.Priority for callers that don't want to import internal
// packages directly.
type Priority = queue.Priority

const (
	Low    = queue.Low
	Medium = queue.Medium
	High   = queue.High
)

// ShowSymbol submits a show_symbol command (§6). duration of 0 uses the symbol's
// default display duration.
func (c *Client) ShowSymbol(symbol render.Symbol, priority Priority, duration float64) (Result, error) {
	if !render.ValidSymbols[symbol] {
		return Result{}, fmt.Errorf("ledclient: unknown symbol %q", symbol)
	}
	return c.send(string(queue.KindShowSymbol), priority.String(), ipc.RequestParams{
		Symbol: string(symbol), Duration: duration,
	})
}

// ShowAnimation submits a show_animation command (§6).
func (c *Client) ShowAnimation(a render.Animation, priority Priority, duration, frameDelay float64) (Result, error) {
	if !render.ValidAnimations[a] {
		return Result{}, fmt.Errorf("ledclient: unknown animation %q", a)
	}
	return c.send(string(queue.KindShowAnimation), priority.String(), ipc.RequestParams{
		Animation: string(a), Duration: duration, FrameDelay: frameDelay,
	})
}

// ShowProgress submits a show_progress command, clamping percentage to 0..=100
// client-side before sending (§4.7).
func (c *Client) ShowProgress(percentage float64, priority Priority) (Result, error) {
	clamped := float64(render.ClampPercentage(percentage))
	return c.send(string(queue.KindShowProgress), priority.String(), ipc.RequestParams{
		Percentage: clamped,
	})
}

// ShowLayout submits a show_layout command with the given LayoutPayload (§6).
func (c *Client) ShowLayout(payload render.LayoutPayload, priority Priority) (Result, error) {
	switch payload.Layout {
	case render.LayoutSingleView, render.LayoutSprintView, render.LayoutUserStoryLayout:
	default:
		return Result{}, fmt.Errorf("ledclient: unknown layout %q", payload.Layout)
	}
	wire := toWirePayload(payload)
	return c.send(string(queue.KindShowLayout), priority.String(), ipc.RequestParams{Payload: &wire})
}

// StopAnimation submits a stop_animation command. Priority is always escalated to
// High server-side (§3) regardless of what is sent here.
func (c *Client) StopAnimation() (Result, error) {
	return c.send(string(queue.KindStopAnimation), "", ipc.RequestParams{})
}

// Clear submits a clear command.
func (c *Client) Clear() (Result, error) {
	return c.send(string(queue.KindClear), "", ipc.RequestParams{})
}

// Test submits the built-in self-test sequence (§4.5); this call blocks for the
// duration of the 2-second ack timeout only — the sequence itself runs to completion
// server-side regardless of whether this call times out (§5).
func (c *Client) Test() (Result, error) {
	return c.send(string(queue.KindTest), "", ipc.RequestParams{})
}

// Shutdown submits a shutdown command, which stops the coordinator's worker loop and
// IPC server.
func (c *Client) Shutdown() (Result, error) {
	return c.send(string(queue.KindShutdown), "", ipc.RequestParams{})
}

func toWirePayload(p render.LayoutPayload) ipc.LayoutPayload {
	out := ipc.LayoutPayload{
		Layout:           string(p.Layout),
		Project:          ipc.Project{Name: p.Project.Name, Percentage: p.Project.Percentage},
		FocusSprintIndex: p.FocusSprintIndex,
	}
	out.Sprints = make([]ipc.Sprint, len(p.Sprints))
	for i, s := range p.Sprints {
		ws := ipc.Sprint{Name: s.Name, Percentage: s.Percentage}
		ws.UserStories = make([]ipc.UserStory, len(s.UserStories))
		for j, us := range s.UserStories {
			ws.UserStories[j] = ipc.UserStory{Title: us.Title, Percentage: us.Percentage}
		}
		out.Sprints[i] = ws
	}
	return out
}
