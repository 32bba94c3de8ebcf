package panel

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrHardwareInit is returned by New when the physical panel cannot be initialized
// (e.g. GPIO lines unavailable). See spec §4.1 failure model.
var ErrHardwareInit = errors.New("panel: hardware init failed")

// HardwareMapping selects the wiring layout of the panel, per §4.1's config knobs.
type HardwareMapping string

const (
	MappingRegular     HardwareMapping = "regular"
	MappingAdafruitHAT HardwareMapping = "adafruit-hat"
)

// Config holds the enumerated hardware config knobs from §4.1.
type Config struct {
	MatrixRows      int             `yaml:"matrix_rows"`
	MatrixCols      int             `yaml:"matrix_cols"`
	HardwareMapping HardwareMapping `yaml:"hardware_mapping"`
	GPIOSlowdown    int             `yaml:"gpio_slowdown"`
	PWMBits         int             `yaml:"pwm_bits"`
	Brightness      int             `yaml:"brightness"`
	ParallelChains  int             `yaml:"parallel_chains"`
	ChainLength     int             `yaml:"chain_length"`
}

// DefaultConfig matches the panel this coordinator addresses: a single 64x64 chain.
func DefaultConfig() Config {
	return Config{
		MatrixRows:      Height,
		MatrixCols:      Width,
		HardwareMapping: MappingRegular,
		GPIOSlowdown:    1,
		PWMBits:         11,
		Brightness:      100,
		ParallelChains:  1,
		ChainLength:     1,
	}
}

// Driver is the Hardware Driver contract from §4.1. A conforming implementation must
// provide at least Present and Clear; DrawText/DrawLine/DrawCircle/DrawRectangleOutline
// are optional fast-paths that a Driver may leave to the Renderer building a Framebuffer
// in memory and calling Present.
type Driver interface {
	// Present atomically replaces the panel contents with fb. Must not fail at runtime;
	// transient device errors are logged and absorbed by the implementation.
	Present(fb *Framebuffer)
	// Clear is equivalent to Present(all-black).
	Clear()
	// Close releases any hardware resources (GPIO lines, file descriptors).
	Close() error
}

// New constructs the Driver appropriate for the environment: a Mock driver when mock is
// true, otherwise the platform's real panel driver. Mirrors the env-or-default wiring in
// cmd/helix-drm-manager/main.go, generalized to a constructor instead of a free function.
func New(cfg Config, mock bool, logger zerolog.Logger) (Driver, error) {
	if mock {
		return NewMock(logger), nil
	}
	d, err := newHardwareDriver(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHardwareInit, err)
	}
	return d, nil
}
