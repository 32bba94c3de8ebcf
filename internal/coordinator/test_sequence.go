package coordinator

import (
	"time"

	"github.com/helixml/led-coordinator/internal/queue"
	"github.com/helixml/led-coordinator/internal/render"
)

// testSymbolDuration and testAnimationDuration are the self-test sequence's per-step
// durations (§4.5: "every symbol (2s each) -> every animation (2-3s each)").
const (
	testSymbolDuration    = 2 * time.Second
	testAnimationDuration = 3 * time.Second
)

var testSymbolOrder = []render.Symbol{
	render.SymbolWifi, render.SymbolWifiError, render.SymbolTunnel, render.SymbolDiscord,
	render.SymbolCheck, render.SymbolError, render.SymbolHourglass, render.SymbolDot,
	render.SymbolAllOn, render.SymbolConnected,
}

var testAnimationOrder = []render.Animation{
	render.AnimationBoot, render.AnimationWifiSearching, render.AnimationActivity, render.AnimationIdle,
}

var testProgressLevels = []float64{0, 25, 50, 75, 100}

// runSelfTest executes the built-in diagnostic sequence from §4.5's Test row: every
// symbol, then every animation, then a progress ramp, then clear. It runs entirely on
// the worker thread, the same as any other blocking dispatch.
func (c *Core) runSelfTest(clientID string) {
	c.logger.Info().Str("client_id", clientID).Msg("starting self-test sequence")

	for _, s := range testSymbolOrder {
		fb := render.RenderSymbol(s)
		c.driver.Present(fb)
		time.Sleep(testSymbolDuration)
	}

	for _, a := range testAnimationOrder {
		durationCap := testAnimationDuration
		if spec, ok := render.SpecFor(a); ok && !spec.Loop {
			durationCap = 0 // finite animations (boot) run to completion on their own
		}
		c.engine.Start(a, queue.High, 0, durationCap) // self-test always wins preemption
		time.Sleep(testAnimationDuration)
		c.engine.Stop()
	}

	for _, pct := range testProgressLevels {
		c.driver.Present(render.Progress(pct))
		time.Sleep(500 * time.Millisecond)
	}

	c.driver.Clear()
	c.logger.Info().Str("client_id", clientID).Msg("self-test sequence complete")
}
