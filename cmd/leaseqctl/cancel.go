package main

import "github.com/spf13/cobra"

var cancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Remove a job regardless of its current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		return store.Cancel(ctx, args[0])
	},
}
