package main

import (
	"time"

	"github.com/spf13/cobra"
)

var peekCount int

var peekCmd = &cobra.Command{
	Use:   "peek <queue>",
	Short: "Preview what Pop would dispense, without transitioning any job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		jobs, err := store.Peek(ctx, args[0], peekCount, time.Now())
		if err != nil {
			return err
		}
		return printJSON(jobs)
	},
}

func init() {
	peekCmd.Flags().IntVar(&peekCount, "count", 10, "maximum jobs to preview")
}
