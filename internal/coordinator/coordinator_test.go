package coordinator

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/led-coordinator/internal/panel"
	"github.com/helixml/led-coordinator/internal/queue"
	"github.com/helixml/led-coordinator/internal/render"
)

type fakeSink struct {
	mu   sync.Mutex
	acks []Ack
}

func (f *fakeSink) Send(a Ack) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, a)
}

func (f *fakeSink) wait(t *testing.T, n int) []Ack {
	t.Helper()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return len(f.acks) >= n
	}, 3*time.Second, 5*time.Millisecond)
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Ack(nil), f.acks...)
}

func newTestCore(t *testing.T) (*Core, *panel.Mock, *queue.Queue, *fakeSink) {
	t.Helper()
	mock := panel.NewMock(zerolog.Nop())
	q := queue.New(16)
	sink := &fakeSink{}
	core := New(mock, q, sink, zerolog.Nop())
	go core.Run()
	t.Cleanup(core.Stop)
	return core, mock, q, sink
}

func TestDispatchShowSymbolPresentsAndAcks(t *testing.T) {
	_, mock, q, sink := newTestCore(t)

	require.NoError(t, q.Push(queue.Command{
		Kind:       queue.KindShowSymbol,
		Priority:   queue.Medium,
		ClientID:   "c1",
		ShowSymbol: queue.ShowSymbolParams{Symbol: render.SymbolWifi, Duration: 0.01},
	}))

	acks := sink.wait(t, 1)
	assert.True(t, acks[0].Success)
	presents, _ := mock.Counts()
	assert.GreaterOrEqual(t, presents, 1)
}

func TestDispatchShowProgressStopsAnyRunningAnimation(t *testing.T) {
	core, _, q, sink := newTestCore(t)

	require.NoError(t, q.Push(queue.Command{
		Kind: queue.KindShowAnimation, Priority: queue.Low, ClientID: "c1",
		ShowAnimation: queue.ShowAnimationParams{Animation: render.AnimationIdle, FrameDelay: 0.01},
	}))
	sink.wait(t, 1)
	require.Eventually(t, func() bool {
		_, active := core.engine.Running()
		return active
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, q.Push(queue.Command{
		Kind: queue.KindShowProgress, Priority: queue.Medium, ClientID: "c2",
		ShowProgress: queue.ShowProgressParams{Percentage: 50},
	}))
	sink.wait(t, 2)

	_, active := core.engine.Running()
	assert.False(t, active, "show_progress should stop any running animation")
}

func TestDispatchStopAnimationReportsNotRunningWhenIdle(t *testing.T) {
	_, _, q, sink := newTestCore(t)

	require.NoError(t, q.Push(queue.Command{Kind: queue.KindStopAnimation, Priority: queue.High, ClientID: "c1"}))
	acks := sink.wait(t, 1)
	assert.True(t, acks[0].Success)
	assert.Equal(t, "NotRunning", acks[0].Error)
}

func TestDispatchShowLayoutRendersRequestedView(t *testing.T) {
	_, mock, q, sink := newTestCore(t)

	payload := render.LayoutPayload{
		Layout:  render.LayoutSingleView,
		Project: render.Project{Name: "Demo", Percentage: 40},
	}
	require.NoError(t, q.Push(queue.Command{
		Kind: queue.KindShowLayout, Priority: queue.Medium, ClientID: "c1",
		ShowLayout: queue.ShowLayoutParams{Payload: payload},
	}))

	acks := sink.wait(t, 1)
	assert.True(t, acks[0].Success)
	assert.NotNil(t, mock.Last())
}

func TestDispatchUnknownLayoutFails(t *testing.T) {
	_, _, q, sink := newTestCore(t)

	require.NoError(t, q.Push(queue.Command{
		Kind: queue.KindShowLayout, Priority: queue.Medium, ClientID: "c1",
		ShowLayout: queue.ShowLayoutParams{Payload: render.LayoutPayload{Layout: "bogus_layout"}},
	}))

	acks := sink.wait(t, 1)
	assert.False(t, acks[0].Success)
	assert.Equal(t, "InvalidParams", acks[0].Error)
}

func TestHighPriorityPushPreemptsLowerPriorityAnimation(t *testing.T) {
	core, _, q, sink := newTestCore(t)

	require.NoError(t, q.Push(queue.Command{
		Kind: queue.KindShowAnimation, Priority: queue.Low, ClientID: "c1",
		ShowAnimation: queue.ShowAnimationParams{Animation: render.AnimationIdle, FrameDelay: 0.01},
	}))
	sink.wait(t, 1)
	require.Eventually(t, func() bool {
		_, active := core.engine.Running()
		return active
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, q.Push(queue.Command{
		Kind: queue.KindShowAnimation, Priority: queue.High, ClientID: "c2",
		ShowAnimation: queue.ShowAnimationParams{Animation: render.AnimationWifiSearching, FrameDelay: 0.01},
	}))

	sink.wait(t, 2)
	a, active := core.engine.Running()
	assert.True(t, active)
	assert.Equal(t, render.AnimationWifiSearching, a)
}

func TestShutdownClearsPanelAndStopsWorker(t *testing.T) {
	mock := panel.NewMock(zerolog.Nop())
	q := queue.New(16)
	sink := &fakeSink{}
	core := New(mock, q, sink, zerolog.Nop())
	go core.Run()

	require.NoError(t, q.Push(queue.Command{Kind: queue.KindShutdown, Priority: queue.High, ClientID: "c1"}))
	acks := sink.wait(t, 1)
	assert.True(t, acks[0].Success)
	_, clears := mock.Counts()
	assert.Equal(t, 1, clears, "shutdown should clear the panel")

	require.Eventually(t, func() bool {
		select {
		case <-core.doneCh:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
