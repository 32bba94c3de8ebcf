// Package config loads the coordinator's environment and hardware configuration
// (§6). Environment variables are read with envconfig struct tags; the hardware
// config file is YAML, with unknown keys ignored and logged at Warn.
package config

import (
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/helixml/led-coordinator/internal/panel"
)

// DefaultSocketPath is the socket path used when LED_SOCKET_PATH is unset (§6). It is
// always this /tmp path; no systemd-managed run directory is probed for.
const DefaultSocketPath = "/tmp/led-manager.sock"

// Env holds the two recognized environment inputs from §6.
type Env struct {
	SocketPath string `envconfig:"LED_SOCKET_PATH" default:"/tmp/led-manager.sock"`
	MockMode   string `envconfig:"LED_MOCK_MODE"`
}

// LoadEnv reads LED_SOCKET_PATH / LED_MOCK_MODE the way
// api/pkg/config.LoadServerConfig reads its envconfig-tagged structs.
func LoadEnv() (Env, error) {
	var e Env
	if err := envconfig.Process("", &e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// Mock reports whether LED_MOCK_MODE is truthy.
func (e Env) Mock() bool {
	b, _ := strconv.ParseBool(e.MockMode)
	return b
}

// knownHardwareKeys lists the recognized hardware config file keys (§6), used to warn
// about unrecognized ones without failing to load.
var knownHardwareKeys = map[string]bool{
	"matrix_rows": true, "matrix_cols": true, "hardware_mapping": true,
	"gpio_slowdown": true, "pwm_bits": true, "brightness": true,
	"parallel_chains": true, "chain_length": true,
}

// LoadHardwareConfig reads the structured hardware config file at path. Unknown keys
// are ignored with a warning (§6); a missing file yields panel.DefaultConfig().
func LoadHardwareConfig(path string, logger zerolog.Logger) (panel.Config, error) {
	cfg := panel.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Str("path", path).Msg("no hardware config file, using defaults")
			return cfg, nil
		}
		return cfg, err
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}
	for key := range raw {
		if !knownHardwareKeys[key] {
			logger.Warn().Str("key", key).Str("path", path).Msg("unknown hardware config key, ignoring")
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
