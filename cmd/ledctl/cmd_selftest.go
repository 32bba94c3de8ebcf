package main

import "github.com/spf13/cobra"

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-test",
		Short: "Run the built-in self-test sequence against the panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().Test()
			return printResult(res, err)
		},
	}
}
