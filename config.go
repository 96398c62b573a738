package leaseq

import "time"

// Recognized configuration option names, per spec.md §3.
const (
	// ConfigHeartbeat is the lease duration, in seconds, that
	// Heartbeat grants from now. Pop does not read it: its caller
	// supplies the lease expiry.
	ConfigHeartbeat = "heartbeat"

	// ConfigJobsHistory is the maximum age, in seconds, of a completed
	// job record. A negative value makes every completed job record
	// eligible for deletion as soon as it is completed.
	ConfigJobsHistory = "jobs-history"

	// ConfigJobsHistoryCount is the maximum number of completed job
	// records retained globally, across all queues.
	ConfigJobsHistoryCount = "jobs-history-count"
)

// Defaults for the recognized configuration options.
const (
	DefaultHeartbeat       = 60 * time.Second
	DefaultJobsHistory     = 7 * 24 * time.Hour
	DefaultJobsHistoryCount = 50000
)

// StatsHistogramBuckets is the fixed bucket count of the wait/run
// duration histograms maintained by Inspector.Stats: one bucket per
// second, clamped at the last bucket for longer samples.
const StatsHistogramBuckets = 150
