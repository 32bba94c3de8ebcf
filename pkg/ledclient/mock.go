package ledclient

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewMock returns a Client in mock mode: every method logs its arguments and returns
// a successful Result without touching the network (§4.7).
func NewMock(logger zerolog.Logger) *Client {
	return &Client{mock: true, mockLogger: logger.With().Str("component", "ledclient").Bool("mock", true).Logger()}
}

// mockSend replaces send when the client is constructed via NewMock.
func (c *Client) mockSend(command, priority string, params interface{}) (Result, error) {
	logger := c.mockLogger
	if logger.GetLevel() == zerolog.Disabled {
		logger = log.Logger
	}
	logger.Info().Str("command", command).Str("priority", priority).Interface("params", params).
		Msg("mock ledclient call")
	return Result{Success: true, Message: "mock"}, nil
}
