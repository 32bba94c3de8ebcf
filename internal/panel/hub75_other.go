//go:build !linux

package panel

import (
	"errors"

	"github.com/rs/zerolog"
)

// newHardwareDriver is unavailable off Linux: the HUB75 GPIO character device
// interface this driver bit-bangs is Linux-only. Use mock mode instead (§6 LED_MOCK_MODE).
func newHardwareDriver(cfg Config, logger zerolog.Logger) (Driver, error) {
	return nil, errors.New("hub75 gpio driver requires linux")
}
