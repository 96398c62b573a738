package main

import "github.com/spf13/cobra"

var (
	failedStart int
	failedLimit int
)

var failedCmd = &cobra.Command{
	Use:   "failed [group]",
	Short: "List failure groups, or jobs failed under one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			groups, err := store.FailedGroups(ctx)
			if err != nil {
				return err
			}
			return printJSON(groups)
		}
		total, jobs, err := store.FailedJobs(ctx, args[0], failedStart, failedLimit)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"total": total, "jobs": jobs})
	},
}

func init() {
	failedCmd.Flags().IntVar(&failedStart, "start", 0, "pagination offset")
	failedCmd.Flags().IntVar(&failedLimit, "limit", 0, "pagination limit (0 uses the default)")
}
