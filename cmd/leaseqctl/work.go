package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leaseq/leaseq/examples/worker"
	"github.com/leaseq/leaseq/internal/logging"
	"github.com/leaseq/leaseq/job"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"
)

var (
	workWorkerID     string
	workConcurrency  int
	workBatchSize    int
	workPollInterval time.Duration
	workLeaseTime    time.Duration
	workFailureGroup string
	workHandler      string
	workReapInterval time.Duration
	workReapWarn     int64
)

// errHandlerFailed is returned by the "fail" demo handler, which
// always errors so operators can exercise backoff/Fail from the CLI.
var errHandlerFailed = errors.New("leaseqctl: demo handler configured to fail")

var workCmd = &cobra.Command{
	Use:   "work <queue>",
	Short: "Run a demo worker against one queue until interrupted",
	Long: `work runs examples/worker.Worker against the given queue using a
built-in Handler, logging progress with --log-level. It is meant for
local development: driving real production workloads should use the
examples/worker package directly from Go code, with an
application-specific Handler.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}

		logger := logging.New(logLevel)

		handler, err := demoHandler(workHandler, logger)
		if err != nil {
			return err
		}

		w := worker.New(store, handler, worker.Config{
			Queue:        args[0],
			WorkerID:     workWorkerID,
			Concurrency:  workConcurrency,
			Buffer:       workConcurrency,
			BatchSize:    workBatchSize,
			PollInterval: workPollInterval,
			LeaseTime:    workLeaseTime,
			FailureGroup: workFailureGroup,
		}, logger)
		if err := w.Start(ctx); err != nil {
			return err
		}

		reaper := worker.NewStalledReaper(store, worker.ReaperConfig{
			Interval:    workReapInterval,
			StalledWarn: workReapWarn,
		}, logger)
		if err := reaper.Start(ctx); err != nil {
			return err
		}

		logger.Info().Str("queue", args[0]).Str("worker", workWorkerID).Msg("worker started, press ctrl-c to stop")
		<-ctx.Done()

		logger.Info().Msg("shutting down")
		if err := w.Stop(5 * time.Second); err != nil {
			logger.Warn().Err(err).Msg("worker stop did not complete cleanly")
		}
		return reaper.Stop(5 * time.Second)
	},
}

// demoHandler builds a worker.Handler for leaseqctl's built-in demo
// modes. Real applications should write their own Handler instead of
// going through the CLI.
func demoHandler(name string, logger *log.Logger) (worker.Handler, error) {
	switch name {
	case "echo":
		return func(ctx context.Context, j *job.Job) error {
			logger.Info().Str("id", j.Id).Interface("data", j.Data).Msg("handled job")
			return nil
		}, nil
	case "fail":
		return func(ctx context.Context, j *job.Job) error {
			return errHandlerFailed
		}, nil
	default:
		return nil, fmt.Errorf("leaseqctl: unknown handler %q (want \"echo\" or \"fail\")", name)
	}
}

func init() {
	workCmd.Flags().StringVar(&workWorkerID, "worker-id", hostnameOr("leaseqctl-worker"), "worker identity recorded on leases")
	workCmd.Flags().IntVar(&workConcurrency, "concurrency", 4, "number of jobs handled concurrently")
	workCmd.Flags().IntVar(&workBatchSize, "batch-size", 8, "max jobs claimed per poll")
	workCmd.Flags().DurationVar(&workPollInterval, "poll-interval", time.Second, "delay between empty polls")
	workCmd.Flags().DurationVar(&workLeaseTime, "lease", 30*time.Second, "lease duration granted per popped job")
	workCmd.Flags().StringVar(&workFailureGroup, "failure-group", "leaseqctl", "failure group recorded when the handler exhausts retries")
	workCmd.Flags().StringVar(&workHandler, "handler", "echo", `demo handler: "echo" logs and completes, "fail" always fails`)
	workCmd.Flags().DurationVar(&workReapInterval, "reap-interval", 10*time.Second, "how often to check for a growing stalled backlog")
	workCmd.Flags().Int64Var(&workReapWarn, "reap-warn", 10, "stalled count that triggers a warning log")
}

func hostnameOr(fallback string) string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return fallback
	}
	return fmt.Sprintf("%s-%d", h, os.Getpid())
}
