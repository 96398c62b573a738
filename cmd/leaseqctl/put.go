package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leaseq/leaseq"
	"github.com/spf13/cobra"
)

var (
	putData     string
	putPriority int
	putTags     []string
	putDelay    time.Duration
)

var putCmd = &cobra.Command{
	Use:   "put <queue> [id]",
	Short: "Create or move a job into a queue (id defaults to a generated uuid)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}

		id := ""
		if len(args) == 2 {
			id = args[1]
		}
		if id == "" {
			id = uuid.NewString()
		}

		data := map[string]any{}
		if putData != "" {
			if err := json.Unmarshal([]byte(putData), &data); err != nil {
				return fmt.Errorf("%w: %v", leaseq.ErrInvalidData, err)
			}
		}

		id, err = store.Put(ctx, args[0], id, data, time.Now(), &leaseq.PutArgs{
			Priority: putPriority,
			Tags:     putTags,
			Delay:    putDelay,
		})
		if err != nil {
			return err
		}
		return printJSON(map[string]string{"id": id})
	},
}

func init() {
	putCmd.Flags().StringVar(&putData, "data", "", "job payload as a JSON object")
	putCmd.Flags().IntVar(&putPriority, "priority", 0, "lower pops first")
	putCmd.Flags().StringSliceVar(&putTags, "tags", nil, "comma-separated tags")
	putCmd.Flags().DurationVar(&putDelay, "delay", 0, "visibility delay before the job becomes waiting")
}
