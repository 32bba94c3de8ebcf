package panel

import (
	"sync"

	"github.com/rs/zerolog"
)

// Mock is the no-hardware Driver used in development and CI (§4.1, §6 LED_MOCK_MODE).
// It records every Present/Clear call so tests can assert on what would have been shown,
// and logs a one-line summary the way a real driver would log its own present calls.
type Mock struct {
	logger zerolog.Logger

	mu       sync.Mutex
	last     *Framebuffer
	presents int
	clears   int
}

// NewMock returns a Mock driver. Present always succeeds.
func NewMock(logger zerolog.Logger) *Mock {
	return &Mock{logger: logger.With().Str("driver", "mock").Logger()}
}

func (m *Mock) Present(fb *Framebuffer) {
	m.mu.Lock()
	m.last = fb.Clone()
	m.presents++
	n := m.presents
	m.mu.Unlock()
	m.logger.Debug().Int("present_count", n).Msg("present")
}

func (m *Mock) Clear() {
	m.Present(NewFramebuffer())
	m.mu.Lock()
	m.clears++
	m.mu.Unlock()
}

func (m *Mock) Close() error { return nil }

// Last returns a copy of the most recently presented framebuffer, or nil if none yet.
func (m *Mock) Last() *Framebuffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return nil
	}
	return m.last.Clone()
}

// Counts returns the number of Present and Clear calls observed so far, for diagnostics
// and tests.
func (m *Mock) Counts() (presents, clears int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.presents, m.clears
}
