package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <percentage>",
		Short: "Show the legacy three-color progress bar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			res, err := client().ShowProgress(pct, priority())
			return printResult(res, err)
		},
	}
}
