package main

import (
	"time"

	"github.com/spf13/cobra"
)

var queuesCmd = &cobra.Command{
	Use:   "queues",
	Short: "Summarize every queue ever referenced",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		summaries, err := store.Queues(ctx, time.Now())
		if err != nil {
			return err
		}
		return printJSON(summaries)
	},
}
