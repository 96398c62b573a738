package main

import "github.com/spf13/cobra"

var trackCmd = &cobra.Command{
	Use:   "track <id>",
	Short: "Opt a job id into observation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		return store.Track(ctx, args[0])
	},
}

var untrackCmd = &cobra.Command{
	Use:   "untrack <id>",
	Short: "Remove a job id from observation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		return store.Untrack(ctx, args[0])
	},
}

var trackedCmd = &cobra.Command{
	Use:   "tracked",
	Short: "List ids under observation, and ids expired while tracked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		tracked, err := store.Tracked(ctx)
		if err != nil {
			return err
		}
		return printJSON(tracked)
	},
}
