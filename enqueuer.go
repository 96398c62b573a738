package leaseq

import (
	"context"
	"time"
)

// PutArgs carries the optional arguments of Put. For a new job, a nil
// *PutArgs is equivalent to &PutArgs{} (priority 0, no tags, zero
// delay). For an existing job, a nil *PutArgs keeps its stored
// priority and tags, with zero delay.
type PutArgs struct {
	// Priority ranks jobs within a queue's waiting set; lower values
	// pop first.
	Priority int

	// Tags is an ordered, caller-opaque sequence of labels.
	Tags []string

	// Delay postpones visibility: a job put with Delay > 0 enters the
	// Scheduled state and becomes Waiting once now+Delay has passed.
	Delay time.Duration
}

// Enqueuer is the write-side entry point of a queue.
//
// Enqueuer.Put doubles as "move": putting an id that already exists
// transitions it into queue regardless of its current state, clearing
// any held lease and appending a fresh history event, while carrying
// data/priority/tags over unless the caller supplies new ones.
type Enqueuer interface {

	// Put creates or moves the job identified by id into queue.
	//
	// If the job does not exist, it is created: Waiting when delay is
	// zero, Scheduled when delay is positive. If it already exists, it
	// is removed from whichever structure (waiting/scheduled/running/
	// stalled) currently holds it, its worker is cleared, and a new put
	// Event is appended. A non-nil data replaces the stored data and a
	// non-nil args replaces the stored priority and tags; a nil data
	// keeps the stored data, and a nil args keeps the stored priority
	// and tags (spec.md §3 invariant 4).
	//
	// An empty queue is ErrMissingQueue; an empty id is ErrMissingID; a
	// negative delay is ErrInvalidDelay.
	//
	// Put returns id on success.
	Put(ctx context.Context, queue string, id string, data map[string]any, now time.Time, args *PutArgs) (string, error)
}
