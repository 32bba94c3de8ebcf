package ipc

import (
	"fmt"

	"github.com/helixml/led-coordinator/internal/queue"
	"github.com/helixml/led-coordinator/internal/render"
)

// toCommand validates req and converts it to a queue.Command, or returns a validation
// error code/message per §6/§7. Validation errors are rejected at enqueue time; the
// worker never sees them (§7).
func toCommand(req Request, clientID string) (queue.Command, string, error) {
	priority := queue.Medium
	if req.Priority != "" {
		p, ok := queue.ParsePriority(req.Priority)
		if !ok {
			return queue.Command{}, ErrInvalidParams, fmt.Errorf("unknown priority %q", req.Priority)
		}
		priority = p
	}

	cmd := queue.Command{Priority: priority, ClientID: clientID}

	switch req.Command {
	case string(queue.KindShowSymbol):
		sym := render.Symbol(req.Params.Symbol)
		if !render.ValidSymbols[sym] {
			return queue.Command{}, ErrInvalidParams, fmt.Errorf("unknown symbol %q", req.Params.Symbol)
		}
		cmd.Kind = queue.KindShowSymbol
		cmd.ShowSymbol = queue.ShowSymbolParams{Symbol: sym, Duration: req.Params.Duration}

	case string(queue.KindShowAnimation):
		a := render.Animation(req.Params.Animation)
		if !render.ValidAnimations[a] {
			return queue.Command{}, ErrInvalidParams, fmt.Errorf("unknown animation %q", req.Params.Animation)
		}
		cmd.Kind = queue.KindShowAnimation
		cmd.ShowAnimation = queue.ShowAnimationParams{
			Animation:  a,
			Duration:   req.Params.Duration,
			FrameDelay: req.Params.FrameDelay,
		}

	case string(queue.KindShowProgress):
		if req.Params.Percentage < 0 || req.Params.Percentage > 100 {
			return queue.Command{}, ErrInvalidParams, fmt.Errorf("percentage %.0f out of range", req.Params.Percentage)
		}
		cmd.Kind = queue.KindShowProgress
		cmd.ShowProgress = queue.ShowProgressParams{Percentage: req.Params.Percentage}

	case string(queue.KindShowLayout):
		if req.Params.Payload == nil {
			return queue.Command{}, ErrInvalidParams, fmt.Errorf("missing payload")
		}
		payload := req.Params.Payload.toRender()
		switch payload.Layout {
		case render.LayoutSingleView, render.LayoutSprintView, render.LayoutUserStoryLayout:
		default:
			return queue.Command{}, ErrInvalidParams, fmt.Errorf("unknown layout %q", payload.Layout)
		}
		cmd.Kind = queue.KindShowLayout
		cmd.ShowLayout = queue.ShowLayoutParams{Payload: payload}

	case string(queue.KindStopAnimation):
		cmd.Kind = queue.KindStopAnimation
	case string(queue.KindClear):
		cmd.Kind = queue.KindClear
	case string(queue.KindTest):
		cmd.Kind = queue.KindTest
	case string(queue.KindShutdown):
		cmd.Kind = queue.KindShutdown

	default:
		return queue.Command{}, ErrInvalidCommand, fmt.Errorf("unrecognized command %q", req.Command)
	}

	return cmd.NormalizePriority(), "", nil
}
