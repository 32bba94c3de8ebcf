// ledctl is the operator-facing CLI wrapper around pkg/ledclient, mirroring
// cmd/helix's cobra-based command tree.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helixml/led-coordinator/internal/config"
	"github.com/helixml/led-coordinator/pkg/ledclient"
)

var (
	socketPath   string
	priorityFlag string
)

func main() {
	root := &cobra.Command{
		Use:   "ledctl",
		Short: "Control the LED Display Coordinator over its IPC socket",
	}
	root.PersistentFlags().StringVar(&socketPath, "socket", config.DefaultSocketPath, "coordinator IPC socket path")
	root.PersistentFlags().StringVar(&priorityFlag, "priority", "MEDIUM", "command priority: LOW, MEDIUM, or HIGH")

	root.AddCommand(
		newSymbolCmd(),
		newAnimationCmd(),
		newProgressCmd(),
		newLayoutCmd(),
		newStopAnimationCmd(),
		newClearCmd(),
		newTestCmd(),
		newShutdownCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func client() *ledclient.Client {
	return ledclient.New(socketPath)
}

func priority() ledclient.Priority {
	switch priorityFlag {
	case "LOW":
		return ledclient.Low
	case "HIGH":
		return ledclient.High
	default:
		return ledclient.Medium
	}
}

// printResult renders a Result the way a human-facing operator tool should: green
// for success, red for a typed error code.
func printResult(res ledclient.Result, err error) error {
	if err != nil {
		return err
	}
	if res.Success {
		fmt.Println(color.GreenString("ok: %s", res.Message))
	} else {
		fmt.Println(color.RedString("error [%s]: %s", res.Error, res.Message))
	}
	return nil
}
