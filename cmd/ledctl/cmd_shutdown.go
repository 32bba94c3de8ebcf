package main

import "github.com/spf13/cobra"

func newShutdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shutdown",
		Short: "Ask the coordinator daemon to clear the panel and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().Shutdown()
			return printResult(res, err)
		},
	}
}
