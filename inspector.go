package leaseq

import (
	"context"
	"time"

	"github.com/leaseq/leaseq/job"
)

// QueueSummary reports the per-state job counts of one queue, taken
// at the instant of the call. Counts reflect the same reconciliation
// Pop would perform (due scheduled jobs counted as waiting, expired
// leases counted as stalled), whether computed by actually running
// that reconciliation or by range-querying the backend's sorted
// structures against now.
type QueueSummary struct {
	Name      string
	Waiting   int64
	Running   int64
	Scheduled int64
	Stalled   int64
}

// Distribution is a running summary of a set of duration samples
// (seconds), maintained incrementally: Count, Sum and SumSq are
// updated in O(1) per sample, and Histogram buckets the samples by
// integer-floored, last-bucket-clamped second.
//
// Std is undefined (reported as 0) when Count < 2. Histogram always
// sums to Count.
type Distribution struct {
	Count     int64
	Mean      float64
	Std       float64
	Histogram [StatsHistogramBuckets]int64
}

// Tracked is the result of Inspector.Tracked: the ids currently
// opted into observation, and the ids that were tracked at the time
// they were Cancelled or reaped by retention.
type Tracked struct {
	Jobs    []string
	Expired []string
}

// Inspector provides read-only access to jobs, queues, and statistics.
// Inspector methods never transition job state and return independent
// snapshots: mutating a returned Job or slice does not affect the
// underlying store.
type Inspector interface {

	// Get returns the job identified by id, or (nil, nil) if no such
	// job exists.
	Get(ctx context.Context, id string) (*job.Job, error)

	// Queues returns a summary for every queue ever referenced by Put
	// or Pop, even ones that are currently empty.
	Queues(ctx context.Context, now time.Time) ([]QueueSummary, error)

	// Stats returns the wait and run duration distributions recorded
	// for queue on date's calendar day (per spec.md §4.10, bucketed by
	// floor(now/86400)). Both distributions report Count == 0 when no
	// samples were recorded for that (queue, day) pair.
	Stats(ctx context.Context, queue string, date time.Time) (wait Distribution, run Distribution, err error)

	// FailedGroups returns, for every failure group with at least one
	// currently-failed job, the number of jobs failed under it.
	FailedGroups(ctx context.Context) (map[string]int64, error)

	// FailedJobs returns up to limit jobs failed under group, newest
	// first, starting at offset start, along with the total number of
	// jobs failed under group. An empty group is ErrMissingFailureGroup;
	// negative start or limit is ErrBadStatus.
	FailedJobs(ctx context.Context, group string, start int, limit int) (total int64, jobs []*job.Job, err error)

	// Tracked returns the ids under observation and the ids that were
	// tracked when they were Cancelled or reaped by retention.
	Tracked(ctx context.Context) (Tracked, error)
}
