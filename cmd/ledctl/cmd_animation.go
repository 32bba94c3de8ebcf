package main

import (
	"github.com/spf13/cobra"

	"github.com/helixml/led-coordinator/internal/render"
)

func newAnimationCmd() *cobra.Command {
	var duration, frameDelay float64
	cmd := &cobra.Command{
		Use:   "animation <name>",
		Short: "Start a named animation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().ShowAnimation(render.Animation(args[0]), priority(), duration, frameDelay)
			return printResult(res, err)
		},
	}
	cmd.Flags().Float64Var(&duration, "duration", 0, "finite duration cap in seconds (0 = uncapped)")
	cmd.Flags().Float64Var(&frameDelay, "frame-delay", 0, "per-frame delay in seconds (0 = animation default)")
	return cmd
}

func newStopAnimationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop-animation",
		Short: "Stop the currently running animation, if any",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().StopAnimation()
			return printResult(res, err)
		},
	}
}
