// led-coordinatord is the LED Display Coordinator daemon: it owns the physical (or
// mock) HUB75E panel and arbitrates access to it on behalf of concurrent producers
// over a local IPC socket (spec §2, §4.5, §4.6).
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/helixml/led-coordinator/internal/config"
	"github.com/helixml/led-coordinator/internal/coordinator"
	"github.com/helixml/led-coordinator/internal/ipc"
	"github.com/helixml/led-coordinator/internal/panel"
	"github.com/helixml/led-coordinator/internal/queue"
)

// queueCapacity bounds the number of pending commands (§4.4); 0 would mean
// unbounded, which would make QueueFull unreachable, so the daemon picks a concrete
// bound.
const queueCapacity = 256

// hardwareConfigPath is the known path the hardware config file is loaded from (§6).
const hardwareConfigPath = "/etc/led-manager/hardware.yaml"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	env, err := config.LoadEnv()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load environment config")
		os.Exit(1)
	}

	hwCfg, err := config.LoadHardwareConfig(hardwareConfigPath, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load hardware config")
		os.Exit(1)
	}

	mock := env.Mock()
	logger.Info().
		Str("socket", env.SocketPath).
		Bool("mock", mock).
		Interface("hardware_config", hwCfg).
		Msg("starting led-coordinatord")

	driver, err := panel.New(hwCfg, mock, logger)
	if err != nil {
		logger.Error().Err(err).Msg("hardware init failed")
		os.Exit(1)
	}
	defer driver.Close()

	q := queue.New(queueCapacity)
	server := ipc.NewServer(env.SocketPath, q, logger)
	core := coordinator.New(driver, q, server, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The worker loop and the IPC listener are supervised together. When a client
	// submits a Shutdown command, core.Run returns ErrShutdown, which cancels gctx;
	// SIGINT/SIGTERM cancel it through ctx. Either way the single supervisor goroutine
	// below tears both the worker and the listener down, so a client-issued shutdown
	// actually stops the IPC server and lets main exit (§4.5, §6).
	group, gctx := errgroup.WithContext(ctx)
	group.Go(core.Run)
	group.Go(server.ListenAndServe)

	go func() {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		core.Stop()
		server.Close()
	}()

	if err := group.Wait(); err != nil && !errors.Is(err, coordinator.ErrShutdown) {
		logger.Error().Err(err).Msg("led-coordinatord failed")
		os.Exit(1)
	}

	logger.Info().Msg("led-coordinatord shutdown complete")
}
