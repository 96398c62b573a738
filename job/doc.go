// Package job defines the data types shared by leaseq's broker and
// storage layers: the Job record, its lifecycle State, and the
// append-only history Event it accumulates as it moves between
// queues.
//
// Package job has no storage dependency. Store implementations
// (see leaseq.Store and store/sql) translate between their
// persisted representation and these types; callers never construct
// Job values directly except in tests.
package job
