package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var heartbeatWorker string

var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat <id>",
	Short: "Extend the lease on a running job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		expires, ok, err := store.Heartbeat(ctx, args[0], heartbeatWorker, time.Now(), nil)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("heartbeat precondition failed: job not running under worker %q", heartbeatWorker)
		}
		return printJSON(map[string]any{"expires": expires})
	},
}

func init() {
	heartbeatCmd.Flags().StringVar(&heartbeatWorker, "worker", "", "worker id holding the lease")
	heartbeatCmd.MarkFlagRequired("worker")
}
