// Package leaseq provides a storage-agnostic lease-based job queue
// broker: named queues of opaque jobs, handed out to workers under a
// renewable visibility lease, with priority/FIFO ordering, scheduled
// delays, per-queue timing statistics, and bounded completed-job
// retention.
//
// # Overview
//
// leaseq models jobs as explicit state machines rather than bare
// messages. A Job moves through Waiting/Scheduled -> Running ->
// Complete/Failed, with Stalled as an intermediate state for leases
// that expired before completion. Every mutating transition is
// expressed as one atomic Store operation; see the Store interface and
// its store/sql implementation for how atomicity is realized.
//
// # Delivery Semantics
//
// leaseq provides at-least-once processing guarantees. A job may be
// delivered more than once if a worker crashes, its lease expires, or
// another worker reclaims a stalled job before the original worker
// completes it. Handlers built on top of leaseq must be idempotent.
//
// # Visibility Timeout (Lease Model)
//
// When Dispatcher.Pop returns a job, it transitions Waiting/Stalled ->
// Running and receives an Expires timestamp (the lease). While the
// lease is valid, the job is invisible to other workers. If the lease
// expires before Complete/Fail, the job becomes Stalled and is
// preferred over Waiting jobs on the next Pop.
//
// Dispatcher.Heartbeat extends the lease; it only succeeds while the
// caller still holds it (the job is Running AND the stored worker
// matches). Expiry alone does not end the lease: a lease past its
// expiry can still be renewed until a Pop reclaims the job as Stalled.
//
// # State Machine
//
//	waiting/scheduled -> running           (Pop)
//	running           -> stalled           (lease expiry, reclaimed by Pop)
//	stalled           -> running           (re-Pop by any worker)
//	running           -> complete          (Complete, no next queue)
//	running           -> waiting/scheduled (Complete, with next queue)
//	running           -> failed            (Fail)
//	*                 -> waiting/scheduled (Put / move)
//	*                 -> (deleted)         (Cancel)
//
// Terminal states (Complete, Failed) are not retried unless explicitly
// re-queued via Put.
//
// # Three-Stage Pop
//
// Pop is a fixed three-stage pipeline executed in one atomic envelope:
// reclaim stalled leases, promote due scheduled jobs, then dispense up
// to count ids, preferring stalled over waiting. The stages never
// interleave: callers depend on "stalled preferred over waiting" and
// on scheduled promotion completing before dispense runs.
//
// # Interfaces
//
// leaseq defines four interfaces that together form the Store
// contract a backend must satisfy:
//
//	Enqueuer      — Put (also implements "move": putting an existing id)
//	Dispatcher    — Peek, Pop, Heartbeat, Complete, Fail, Cancel
//	Inspector     — Get, Queues, Stats, FailedGroups, FailedJobs, Tracked
//	Administrator — GetConfig, GetAllConfig, SetConfig, Track, Untrack
//
// These interfaces allow storage implementations to be plugged in
// without coupling queue semantics to a specific database. The
// store/sql package provides a bun/SQL-backed implementation.
//
// # Concurrency Model
//
// Every Store operation commits atomically against whatever keys it
// touches, in a single round trip. There is no in-process locking in
// this package: atomicity is delegated entirely to the backend. A
// worker's authority over a job is the pair (worker id, stored
// worker/queue), never a client-side token; Fail/Cancel/move/re-Pop
// invalidate outstanding leases immediately, and the broker never
// preempts a lease except inside Pop's reclaim stage, once
// now >= expires.
//
// # Time Injection
//
// Every time-sensitive method takes now as an explicit parameter.
// Implementations must not read a clock internally; this keeps
// behavior deterministic under test and immune to clock skew between
// the broker process and its callers.
package leaseq
