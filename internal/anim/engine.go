// Package anim implements the Animation Engine: the single active looping or finite
// animation thread, with cooperative cancellation (§4.3).
package anim

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/helixml/led-coordinator/internal/panel"
	"github.com/helixml/led-coordinator/internal/queue"
	"github.com/helixml/led-coordinator/internal/render"
)

// ShutdownWait is the bounded wait the engine allows a cancelled animation's
// in-flight frame to finish before giving up and logging a leak (§4.3, §5).
const ShutdownWait = 200 * time.Millisecond

// Engine owns at most one running animation at a time (§3's Active Animation Handle).
// It is driven by the Coordinator Core and must never be written to concurrently by
// anything else.
type Engine struct {
	driver panel.Driver
	logger zerolog.Logger

	mu       sync.Mutex
	cancel   atomic.Bool
	done     chan struct{}
	running  render.Animation
	priority queue.Priority
	active   bool
}

// New returns an Engine that presents frames through driver.
func New(driver panel.Driver, logger zerolog.Logger) *Engine {
	return &Engine{driver: driver, logger: logger.With().Str("component", "anim").Logger()}
}

// Start stops any currently running animation (waiting, bounded, for its in-flight
// frame) and spawns a new animation thread for a, using frameDelay if non-zero or the
// animation's default otherwise. durationCap, if non-zero, stops a looping animation
// after that many seconds have elapsed (§6 show_animation.duration).
func (e *Engine) Start(a render.Animation, priority queue.Priority, frameDelay time.Duration, durationCap time.Duration) {
	e.Stop()

	spec, ok := render.SpecFor(a)
	if !ok {
		e.logger.Warn().Str("animation", a.String()).Msg("unknown animation, ignoring start")
		return
	}
	if frameDelay <= 0 {
		frameDelay = spec.FrameDelay
	}

	e.mu.Lock()
	e.cancel.Store(false)
	done := make(chan struct{})
	e.done = done
	e.running = a
	e.priority = priority
	e.active = true
	e.mu.Unlock()

	go e.run(a, spec, frameDelay, durationCap, done)
}

// run is the animation thread body: for each frame, render and present, then sleep
// for frameDelay, checking the cancel flag between frames (§4.3).
func (e *Engine) run(a render.Animation, spec render.AnimationSpec, frameDelay, durationCap time.Duration, done chan struct{}) {
	defer close(done)

	deadline := time.Time{}
	if durationCap > 0 {
		deadline = time.Now().Add(durationCap)
	}

	frame := 0
	for {
		if e.cancel.Load() {
			return
		}
		fb := render.RenderAnimationFrame(a, frame)
		e.driver.Present(fb)

		frame++
		if !spec.Loop && frame >= spec.FrameCount {
			e.finished()
			return
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			e.finished()
			return
		}

		time.Sleep(frameDelay)
		if e.cancel.Load() {
			return
		}
	}
}

// finished marks the engine idle after a finite animation completes on its own.
func (e *Engine) finished() {
	e.mu.Lock()
	e.active = false
	e.mu.Unlock()
}

// Stop signals the running animation (if any) to cancel, and waits up to
// ShutdownWait for its thread to exit. A leaked thread is logged and Stop returns
// anyway so the caller can proceed (§4.3, §5).
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return
	}
	done := e.done
	name := e.running
	e.cancel.Store(true)
	e.active = false
	e.mu.Unlock()

	select {
	case <-done:
	case <-time.After(ShutdownWait):
		e.logger.Warn().Str("animation", name.String()).Msg("animation thread did not exit within bounded wait, proceeding anyway")
	}
}

// Running reports the currently active animation name, if any.
func (e *Engine) Running() (render.Animation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running, e.active
}

// RunningPriority reports the priority the active animation was started with. This is
// the "running priority" slot from §4.4's preemption coupling: static scenes never
// hold one, since they are instantaneous from the queue's point of view.
func (e *Engine) RunningPriority() (queue.Priority, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.priority, e.active
}
