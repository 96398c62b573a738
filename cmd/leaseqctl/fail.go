package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	failWorker  string
	failGroup   string
	failMessage string
)

var failCmd = &cobra.Command{
	Use:   "fail <id>",
	Short: "Report a running job as failed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		group, ok, err := store.Fail(ctx, args[0], failWorker, failGroup, failMessage, time.Now(), nil)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("fail precondition failed: job not running under worker %q", failWorker)
		}
		return printJSON(map[string]string{"group": group})
	},
}

func init() {
	failCmd.Flags().StringVar(&failWorker, "worker", "", "worker id holding the lease")
	failCmd.Flags().StringVar(&failGroup, "group", "", "failure group name")
	failCmd.Flags().StringVar(&failMessage, "message", "", "failure message")
	failCmd.MarkFlagRequired("worker")
	failCmd.MarkFlagRequired("group")
}
