// Package sql provides a bun-based SQL storage implementation of
// leaseq.Store.
//
// # Overview
//
// This package implements every leaseq interface (Enqueuer,
// Dispatcher, Inspector, Administrator) against a relational database
// via github.com/uptrace/bun. It realizes spec.md's "key-value store
// with atomic multi-key script execution" as SQL tables plus a single
// *bun.Tx per operation: the "atomic script invocation" of spec.md §4.1
// becomes one transaction that commits or rolls back as a unit.
//
// It is compatible with SQLite, PostgreSQL and other bun-supported
// dialects, subject to their transactional guarantees.
//
// # Concurrency Model
//
// Pop's three-stage pipeline (reclaim stalled, promote scheduled,
// dispense) executes as one transaction: the stages run as a fixed
// sequence of statements against the same *bun.Tx, never interleaved
// with another caller's transaction.
//
// SQLite users are strongly encouraged to enable WAL mode, configure
// an appropriate busy_timeout, and cap the connection pool at one
// connection (modernc.org/sqlite serializes writers regardless; a
// single connection avoids SQLITE_BUSY under contention).
//
// # Schema
//
// InitDB (or MustInitDB) creates the jobs, queues, queue_seq,
// completed, tracked, stats, and config tables, plus the indexes
// Pop/Peek/Queues/Stats/Failed rely on. InitDB is idempotent and runs
// inside a transaction; it performs no destructive migrations.
//
// # Limitations
//
// This backend does not use lease tokens or optimistic locking
// versions; lease ownership is the (state, worker) pair stored on
// the row, re-validated on every call. Heartbeat, Complete and Fail do
// not compare now against expires. Exactly-once processing is not
// guaranteed; delivery semantics remain at-least-once, per spec.md §1.
package sql
