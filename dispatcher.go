package leaseq

import (
	"context"
	"time"

	"github.com/leaseq/leaseq/job"
)

// CompleteArgs carries the optional arguments of Dispatcher.Complete.
// A nil *CompleteArgs behaves like &CompleteArgs{}: the job is
// finalized with no next queue.
type CompleteArgs struct {
	// Data, if non-nil, replaces the job's stored data.
	Data map[string]any

	// Next, if non-empty, is the queue the job is moved into instead
	// of being finalized.
	Next string

	// Delay postpones visibility in Next, exactly like PutArgs.Delay.
	Delay time.Duration
}

// Dispatcher manages the Pop/lease/completion half of a job's
// lifecycle: pulling jobs out of a queue, renewing or releasing the
// lease they carry, and retiring them (successfully or not).
//
// A worker's authority to act on a job is the pair (worker id, stored
// worker), validated fresh on every call; it is never a client-side
// token. Fail, Cancel, and a concurrent Pop/move invalidate an
// outstanding lease immediately.
type Dispatcher interface {

	// Peek returns up to count jobs from queue in the exact order Pop
	// would dispense them at now, without transitioning them and
	// without running stalled/scheduled promotion. The returned slice
	// may be shorter than count, including empty.
	Peek(ctx context.Context, queue string, count int, now time.Time) ([]*job.Job, error)

	// Pop runs the three-stage pipeline described in the package doc
	// (reclaim stalled, promote scheduled, dispense) and returns up to
	// count dispensed jobs, transitioned to Running under worker with
	// lease expiry expires. The returned slice may be empty; it is
	// never nil-vs-empty significant to callers.
	Pop(ctx context.Context, queue string, worker string, count int, now time.Time, expires time.Time) ([]*job.Job, error)

	// Heartbeat renews the lease on a Running job.
	//
	// It succeeds only if the job is Running and its stored worker
	// equals worker; on success it returns the new expiry (now plus
	// the configured heartbeat) and true, optionally replacing data.
	// On any precondition failure (wrong worker, not running, unknown
	// id, cancelled, or completed) it returns the zero time and false,
	// never an error. Heartbeat never changes State.
	Heartbeat(ctx context.Context, id string, worker string, now time.Time, data map[string]any) (time.Time, bool, error)

	// Complete finalizes or advances a Running job.
	//
	// It succeeds only if the job is Running, its stored worker equals
	// worker, AND its stored queue equals queue. Without args.Next the
	// job becomes Complete and is recorded in the retention-tracked
	// completed set (subject to the retention sweep described in
	// spec.md §4.6, run in the same atomic envelope). With args.Next
	// the job becomes Waiting or Scheduled in that queue instead, per
	// args.Delay.
	//
	// On success, Complete returns the resulting State (Complete,
	// Waiting, or Scheduled) and true. On any precondition failure it
	// returns the zero State and false, never an error.
	Complete(ctx context.Context, id string, worker string, queue string, now time.Time, args *CompleteArgs) (job.State, bool, error)

	// Fail transitions a Running job to Failed, recording group,
	// message, now, and worker as its Failure, visible afterward via
	// Inspector.FailedGroups/FailedJobs. An empty group is
	// ErrMissingFailureGroup.
	//
	// It succeeds only if the job is Running and its stored worker
	// equals worker. On success it returns group and true; a
	// subsequent Put of the same id clears the Failed state. On any
	// other precondition failure it returns "" and false, never an
	// error.
	Fail(ctx context.Context, id string, worker string, group string, message string, now time.Time, data map[string]any) (string, bool, error)

	// Cancel removes the job identified by id from whichever structure
	// holds it and deletes its record, and (if tracked) moves its id
	// into the tracked "expired" sub-collection. After Cancel,
	// Heartbeat and Complete against id report the precondition-failure
	// sentinel. Cancelling an unknown id is a no-op.
	Cancel(ctx context.Context, id string) error
}
