package main

import (
	"fmt"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/spf13/cobra"
)

var (
	completeWorker string
	completeQueue  string
	completeNext   string
	completeDelay  time.Duration
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Finish (or advance) a running job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		state, ok, err := store.Complete(ctx, args[0], completeWorker, completeQueue, time.Now(), &leaseq.CompleteArgs{
			Next:  completeNext,
			Delay: completeDelay,
		})
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("complete precondition failed: job not running under worker %q in queue %q", completeWorker, completeQueue)
		}
		return printJSON(map[string]string{"state": state.String()})
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeWorker, "worker", "", "worker id holding the lease")
	completeCmd.Flags().StringVar(&completeQueue, "queue", "", "queue the job was popped from")
	completeCmd.Flags().StringVar(&completeNext, "next", "", "move the job into this queue instead of finishing it")
	completeCmd.Flags().DurationVar(&completeDelay, "delay", 0, "visibility delay in --next")
	completeCmd.MarkFlagRequired("worker")
	completeCmd.MarkFlagRequired("queue")
}
