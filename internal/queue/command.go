package queue

import (
	"github.com/helixml/led-coordinator/internal/render"
)

// Kind is the closed set of command kinds (§3).
type Kind string

const (
	KindShowSymbol     Kind = "show_symbol"
	KindShowAnimation  Kind = "show_animation"
	KindShowProgress   Kind = "show_progress"
	KindShowLayout     Kind = "show_layout"
	KindStopAnimation  Kind = "stop_animation"
	KindClear          Kind = "clear"
	KindTest           Kind = "test"
	KindShutdown       Kind = "shutdown"
)

// ShowSymbolParams is the kind-specific payload for show_symbol (§6).
type ShowSymbolParams struct {
	Symbol   render.Symbol
	Duration float64 // seconds; 0 means use the symbol's default duration
}

// ShowAnimationParams is the kind-specific payload for show_animation (§6).
type ShowAnimationParams struct {
	Animation  render.Animation
	Duration   float64 // seconds; finite cap, 0 means no cap
	FrameDelay float64 // seconds; 0 means use the animation's default
}

// ShowProgressParams is the kind-specific payload for show_progress (§6).
type ShowProgressParams struct {
	Percentage float64
}

// ShowLayoutParams is the kind-specific payload for show_layout (§6).
type ShowLayoutParams struct {
	Payload render.LayoutPayload
}

// Command is a record submitted by a client (§3). It is created when received and
// consumed when dispatched; it is never otherwise persisted.
type Command struct {
	Kind     Kind
	Priority Priority
	ClientID string

	ShowSymbol    ShowSymbolParams
	ShowAnimation ShowAnimationParams
	ShowProgress  ShowProgressParams
	ShowLayout    ShowLayoutParams
}

// NormalizePriority forces StopAnimation and Shutdown to High regardless of the
// caller-supplied priority, per the §3 Priority Queue invariant.
func (c Command) NormalizePriority() Command {
	if c.Kind == KindStopAnimation || c.Kind == KindShutdown {
		c.Priority = High
	}
	return c
}
