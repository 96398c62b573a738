package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	popWorker string
	popCount  int
	popLease  time.Duration
)

var popCmd = &cobra.Command{
	Use:   "pop <queue>",
	Short: "Dispense up to --count jobs from a queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		now := time.Now()
		jobs, err := store.Pop(ctx, args[0], popWorker, popCount, now, now.Add(popLease))
		if err != nil {
			return err
		}
		return printJSON(jobs)
	},
}

func init() {
	popCmd.Flags().StringVar(&popWorker, "worker", "", "worker id claiming the lease")
	popCmd.Flags().IntVar(&popCount, "count", 1, "maximum jobs to dispense")
	popCmd.Flags().DurationVar(&popLease, "lease", 60*time.Second, "lease duration")
	popCmd.MarkFlagRequired("worker")
}
