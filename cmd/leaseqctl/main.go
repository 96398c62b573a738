package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath   string
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "leaseqctl",
		Short: "Inspect and drive a leaseq broker from the command line",
		Long:  `leaseqctl is a CLI client for the leaseq lease-based job queue broker.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "leaseq.sqlite", "path to the SQLite database backing the broker (env: LEASEQ_DB)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level for long-running commands (trace, debug, info, warn, error)")

	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(popCmd)
	rootCmd.AddCommand(peekCmd)
	rootCmd.AddCommand(heartbeatCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(failCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(queuesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(failedCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(untrackCmd)
	rootCmd.AddCommand(trackedCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(workCmd)
}

func dbFlag() string {
	if rootCmd.PersistentFlags().Changed("db") {
		return dbPath
	}
	if env := os.Getenv("LEASEQ_DB"); env != "" {
		return env
	}
	return dbPath
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
