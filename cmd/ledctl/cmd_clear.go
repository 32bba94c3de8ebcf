package main

import "github.com/spf13/cobra"

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Blank the panel immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().Clear()
			return printResult(res, err)
		},
	}
}
