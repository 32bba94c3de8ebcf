// Package coordinator implements the Coordinator Core: the single worker loop that
// dequeues commands, dispatches them to the Renderer/Animation Engine, and
// acknowledges them (§4.5).
package coordinator

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/helixml/led-coordinator/internal/anim"
	"github.com/helixml/led-coordinator/internal/panel"
	"github.com/helixml/led-coordinator/internal/queue"
	"github.com/helixml/led-coordinator/internal/render"
)

// DefaultSymbolDuration is how long a ShowSymbol command blocks the worker so
// subsequent lower-priority commands don't immediately overwrite it (§4.5).
const DefaultSymbolDuration = 2 * time.Second

// ErrShutdown is returned by Run when the worker loop exits because it dispatched a
// Shutdown command itself (§4.5), as opposed to being stopped externally via Stop. A
// caller supervising Run (e.g. inside an errgroup) uses this to distinguish a clean,
// command-triggered shutdown from an external one so it can still tear down anything
// else depending on the worker loop (the IPC listener) in either case.
var ErrShutdown = errors.New("coordinator: shutdown requested")

// Ack is the acknowledgment the Core emits for every dispatched command, routed back
// to the submitting connection by the IPC Server.
type Ack struct {
	ClientID string
	Success  bool
	Message  string
	Error    string
}

// AckSink receives Acks as the worker emits them. The IPC Server implements this to
// route responses back to the right connection.
type AckSink interface {
	Send(Ack)
}

// Core is the single worker loop owner (§4.5). It exclusively owns the queue, the
// Animation Engine's active handle, and the framebuffer-write right (§3, §5).
type Core struct {
	driver panel.Driver
	engine *anim.Engine
	queue  *queue.Queue
	acks   AckSink
	logger zerolog.Logger

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// New wires a Core around driver, generalizing cmd/helix-drm-manager's
// single-resource-owner construction to the coordinator's three shared resources
// (queue, animation handle, framebuffer).
func New(driver panel.Driver, q *queue.Queue, acks AckSink, logger zerolog.Logger) *Core {
	c := &Core{
		driver: driver,
		engine: anim.New(driver, logger),
		queue:  q,
		acks:   acks,
		logger: logger.With().Str("component", "coordinator").Logger(),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	q.SetPreemptHook(c.onPush)
	return c
}

// onPush is the preemption coupling from §4.4: if the pushed priority is strictly
// greater than the currently running animation's priority, the engine is signaled to
// stop.
func (c *Core) onPush(p queue.Priority) {
	running, active := c.engine.RunningPriority()
	if active && p > running {
		c.logger.Debug().Str("running_priority", running.String()).Str("new_priority", p.String()).
			Msg("preempting running animation")
		c.engine.Stop()
	}
}

// Run is the worker loop: pop, dispatch, acknowledge, until Shutdown is dispatched or
// Stop is called (§4.5, §5). It returns ErrShutdown when it exited because it
// dispatched a Shutdown command itself, and nil when it exited because Stop was called
// or the queue was closed externally. A caller supervising Run (e.g. inside an
// errgroup) uses the distinction to tear down whatever else depends on the worker loop
// — the IPC listener — for either kind of exit, not just external ones (§4.5, §6).
func (c *Core) Run() error {
	defer close(c.doneCh)
	for {
		select {
		case <-c.stopCh:
			return nil
		default:
		}

		cmd, ok := c.queue.Pop()
		if !ok {
			return nil
		}

		ack := c.dispatch(cmd)
		if c.acks != nil {
			c.acks.Send(ack)
		}

		if cmd.Kind == queue.KindShutdown {
			return ErrShutdown
		}
	}
}

// Stop requests the worker loop to exit after its current command finishes, and
// closes the queue so a blocked Pop wakes up. Safe to call more than once, and safe to
// call after Run has already exited on its own (e.g. via a dispatched Shutdown).
func (c *Core) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
	c.queue.Close()
	<-c.doneCh
}

// dispatch executes exactly one command, per the table in §4.5.
func (c *Core) dispatch(cmd queue.Command) Ack {
	switch cmd.Kind {
	case queue.KindShowSymbol:
		return c.dispatchShowSymbol(cmd)
	case queue.KindShowProgress:
		c.engine.Stop()
		fb := render.Progress(cmd.ShowProgress.Percentage)
		c.driver.Present(fb)
		return ok(cmd.ClientID, "progress shown")
	case queue.KindShowLayout:
		c.engine.Stop()
		fb, err := renderLayout(cmd.ShowLayout.Payload)
		if err != nil {
			return fail(cmd.ClientID, "InvalidParams", err.Error())
		}
		c.driver.Present(fb)
		return ok(cmd.ClientID, "layout shown")
	case queue.KindShowAnimation:
		return c.dispatchShowAnimation(cmd)
	case queue.KindStopAnimation:
		_, wasActive := c.engine.Running()
		c.engine.Stop()
		if !wasActive {
			return Ack{ClientID: cmd.ClientID, Success: true, Message: "no animation running", Error: "NotRunning"}
		}
		return ok(cmd.ClientID, "animation stopped")
	case queue.KindClear:
		c.engine.Stop()
		c.driver.Clear()
		return ok(cmd.ClientID, "cleared")
	case queue.KindTest:
		c.runSelfTest(cmd.ClientID)
		return ok(cmd.ClientID, "self-test complete")
	case queue.KindShutdown:
		c.engine.Stop()
		c.driver.Clear()
		return ok(cmd.ClientID, "shutting down")
	default:
		return fail(cmd.ClientID, "InvalidCommand", "unrecognized command kind")
	}
}

func (c *Core) dispatchShowSymbol(cmd queue.Command) Ack {
	c.engine.Stop()
	fb := render.RenderSymbol(cmd.ShowSymbol.Symbol)
	c.driver.Present(fb)

	duration := DefaultSymbolDuration
	if cmd.ShowSymbol.Duration > 0 {
		duration = time.Duration(cmd.ShowSymbol.Duration * float64(time.Second))
	}
	time.Sleep(duration)
	return ok(cmd.ClientID, "symbol shown")
}

func (c *Core) dispatchShowAnimation(cmd queue.Command) Ack {
	frameDelay := time.Duration(cmd.ShowAnimation.FrameDelay * float64(time.Second))
	durationCap := time.Duration(cmd.ShowAnimation.Duration * float64(time.Second))
	c.engine.Start(cmd.ShowAnimation.Animation, cmd.Priority, frameDelay, durationCap)
	return ok(cmd.ClientID, "animation started")
}

func renderLayout(p render.LayoutPayload) (*panel.Framebuffer, error) {
	switch p.Layout {
	case render.LayoutSingleView:
		return render.SingleView(p), nil
	case render.LayoutSprintView:
		return render.SprintView(p), nil
	case render.LayoutUserStoryLayout:
		return render.UserStoryLayout(p), nil
	default:
		return nil, errUnknownLayout(p.Layout)
	}
}

func ok(clientID, msg string) Ack {
	return Ack{ClientID: clientID, Success: true, Message: msg}
}

func fail(clientID, code, msg string) Ack {
	return Ack{ClientID: clientID, Success: false, Message: msg, Error: code}
}
