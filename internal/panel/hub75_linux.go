//go:build linux

package panel

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/warthog618/go-gpiocdev"
)

// pinout mirrors the Adafruit RGB Matrix Bonnet wiring used by the reference HUB75
// bit-banger this driver is adapted from.
type pinout struct {
	R1, G1, B1 int
	R2, G2, B2 int
	CLK, OE    int
	LA         int
	A, B, C, D, E int
}

var defaultPinout = pinout{
	R1: 5, G1: 13, B1: 6,
	R2: 12, G2: 16, B2: 23,
	CLK: 17, OE: 4, LA: 21,
	A: 22, B: 26, C: 27, D: 20, E: 24,
}

const gpioChip = "gpiochip0"

// hub75Driver drives a 64x64 HUB75E panel by bit-banging GPIO character device lines.
// It implements Driver.
type hub75Driver struct {
	cfg    Config
	logger zerolog.Logger
	lines  map[int]*gpiocdev.Line
}

func newHardwareDriver(cfg Config, logger zerolog.Logger) (*hub75Driver, error) {
	d := &hub75Driver{
		cfg:    cfg,
		logger: logger.With().Str("driver", "hub75").Logger(),
		lines:  make(map[int]*gpiocdev.Line),
	}

	pins := []int{
		defaultPinout.R1, defaultPinout.G1, defaultPinout.B1,
		defaultPinout.R2, defaultPinout.G2, defaultPinout.B2,
		defaultPinout.CLK, defaultPinout.OE, defaultPinout.LA,
		defaultPinout.A, defaultPinout.B, defaultPinout.C, defaultPinout.D, defaultPinout.E,
	}
	for _, pin := range pins {
		line, err := gpiocdev.RequestLine(gpioChip, pin, gpiocdev.AsOutput(0))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("request gpio line %d: %w", pin, err)
		}
		d.lines[pin] = line
	}
	d.logger.Info().Int("lines", len(d.lines)).Msg("hub75 gpio lines requested")
	return d, nil
}

func (d *hub75Driver) setPin(pin, value int) {
	line, ok := d.lines[pin]
	if !ok {
		return
	}
	if err := line.SetValue(value); err != nil {
		// Runtime present must not fail (§4.1); absorb and log.
		d.logger.Warn().Err(err).Int("pin", pin).Msg("gpio set failed")
	}
}

// Present performs one full-panel scan. Each 64-row frame is split into two 32-row
// halves driven in parallel via the R1/G1/B1 and R2/G2/B2 lanes, addressed by A-E.
func (d *hub75Driver) Present(fb *Framebuffer) {
	for y := 0; y < 32; y++ {
		d.setPin(defaultPinout.OE, 1)

		d.setPin(defaultPinout.A, y&1)
		d.setPin(defaultPinout.B, (y>>1)&1)
		d.setPin(defaultPinout.C, (y>>2)&1)
		d.setPin(defaultPinout.D, (y>>3)&1)
		d.setPin(defaultPinout.E, (y>>4)&1)

		for x := 0; x < Width; x++ {
			top := fb.At(x, y)
			bottom := fb.At(x, y+32)

			d.setPin(defaultPinout.R1, bit(top.R))
			d.setPin(defaultPinout.G1, bit(top.G))
			d.setPin(defaultPinout.B1, bit(top.B))
			d.setPin(defaultPinout.R2, bit(bottom.R))
			d.setPin(defaultPinout.G2, bit(bottom.G))
			d.setPin(defaultPinout.B2, bit(bottom.B))

			d.setPin(defaultPinout.CLK, 1)
			d.setPin(defaultPinout.CLK, 0)
		}

		d.setPin(defaultPinout.LA, 1)
		d.setPin(defaultPinout.LA, 0)
		d.setPin(defaultPinout.OE, 0)

		time.Sleep(time.Duration(d.cfg.GPIOSlowdown+1) * 10 * time.Microsecond)
	}
}

func bit(channel uint8) int {
	if channel > 0 {
		return 1
	}
	return 0
}

func (d *hub75Driver) Clear() {
	d.Present(NewFramebuffer())
}

func (d *hub75Driver) Close() error {
	for pin, line := range d.lines {
		if line != nil {
			if err := line.Close(); err != nil {
				d.logger.Warn().Err(err).Int("pin", pin).Msg("close gpio line failed")
			}
		}
	}
	d.lines = make(map[int]*gpiocdev.Line)
	return nil
}
