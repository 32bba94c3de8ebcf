package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixml/led-coordinator/internal/render"
)

// newLayoutCmd submits a show_layout command. The LayoutPayload is read as JSON from
// a file (or stdin with "-"), since its shape is too rich for flags (§3).
func newLayoutCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show a hierarchical progress layout from a JSON LayoutPayload file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if file == "-" || file == "" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return err
			}

			var payload render.LayoutPayload
			if err := json.Unmarshal(data, &payload); err != nil {
				return fmt.Errorf("invalid layout payload: %w", err)
			}

			res, err := client().ShowLayout(payload, priority())
			return printResult(res, err)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "path to a JSON LayoutPayload, or - for stdin")
	return cmd
}
