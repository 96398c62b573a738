package main

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change broker tunables (heartbeat, retention)",
}

var configGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print one explicitly set config value (empty, with explicit=false, if unset)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		value, ok, err := store.GetConfig(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"name": args[0], "value": value, "explicit": ok})
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every explicitly configured name/value pair",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		all, err := store.GetAllConfig(ctx)
		if err != nil {
			return err
		}
		return printJSON(all)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Set a config value (pass an empty value to clear it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		value := args[1]
		if value == "" {
			return store.SetConfig(ctx, args[0], nil)
		}
		return store.SetConfig(ctx, args[0], &value)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
}
