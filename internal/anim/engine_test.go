package anim

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/led-coordinator/internal/panel"
	"github.com/helixml/led-coordinator/internal/queue"
	"github.com/helixml/led-coordinator/internal/render"
)

func newTestEngine() (*Engine, *panel.Mock) {
	mock := panel.NewMock(zerolog.Nop())
	return New(mock, zerolog.Nop()), mock
}

func TestEngineStartPresentsFrames(t *testing.T) {
	engine, mock := newTestEngine()

	engine.Start(render.AnimationIdle, queue.Low, 5*time.Millisecond, 0)
	defer engine.Stop()

	require.Eventually(t, func() bool {
		presents, _ := mock.Counts()
		return presents > 0
	}, time.Second, 5*time.Millisecond)

	a, active := engine.Running()
	assert.True(t, active)
	assert.Equal(t, render.AnimationIdle, a)
}

func TestEngineStopCancelsRunningAnimation(t *testing.T) {
	engine, mock := newTestEngine()

	engine.Start(render.AnimationActivity, queue.Low, 5*time.Millisecond, 0)
	require.Eventually(t, func() bool {
		presents, _ := mock.Counts()
		return presents > 0
	}, time.Second, 5*time.Millisecond)

	engine.Stop()

	_, active := engine.Running()
	assert.False(t, active)

	presentsAtStop, _ := mock.Counts()
	time.Sleep(30 * time.Millisecond)
	presentsAfter, _ := mock.Counts()
	assert.Equal(t, presentsAtStop, presentsAfter, "no frames should render after Stop")
}

func TestEngineStartPreemptsPreviouslyRunningAnimation(t *testing.T) {
	engine, mock := newTestEngine()

	engine.Start(render.AnimationIdle, queue.Low, 5*time.Millisecond, 0)
	require.Eventually(t, func() bool {
		presents, _ := mock.Counts()
		return presents > 0
	}, time.Second, 5*time.Millisecond)

	engine.Start(render.AnimationWifiSearching, queue.High, 5*time.Millisecond, 0)
	defer engine.Stop()

	a, active := engine.Running()
	assert.True(t, active)
	assert.Equal(t, render.AnimationWifiSearching, a)

	p, active := engine.RunningPriority()
	assert.True(t, active)
	assert.Equal(t, queue.High, p)
}

func TestEngineFiniteAnimationFinishesOnItsOwn(t *testing.T) {
	engine, mock := newTestEngine()

	engine.Start(render.AnimationBoot, queue.Medium, time.Millisecond, 0)

	require.Eventually(t, func() bool {
		_, active := engine.Running()
		return !active
	}, 2*time.Second, 5*time.Millisecond)

	presents, _ := mock.Counts()
	assert.GreaterOrEqual(t, presents, 1)
}

func TestEngineStopIsSafeWhenNothingRunning(t *testing.T) {
	engine, _ := newTestEngine()
	assert.NotPanics(t, func() {
		engine.Stop()
	})
}
