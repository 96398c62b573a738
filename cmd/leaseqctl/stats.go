package main

import (
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <queue>",
	Short: "Show today's wait/run duration distributions for a queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		wait, run, err := store.Stats(ctx, args[0], time.Now())
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"wait": wait, "run": run})
	},
}
