package main

import (
	"github.com/spf13/cobra"

	"github.com/helixml/led-coordinator/internal/render"
)

func newSymbolCmd() *cobra.Command {
	var duration float64
	cmd := &cobra.Command{
		Use:   "symbol <name>",
		Short: "Show a named status symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().ShowSymbol(render.Symbol(args[0]), priority(), duration)
			return printResult(res, err)
		},
	}
	cmd.Flags().Float64Var(&duration, "duration", 0, "display duration in seconds (0 = symbol default)")
	return cmd
}
