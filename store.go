package leaseq

// Store is the full contract a storage backend must satisfy to back
// a leaseq broker. It is the "key-value store with atomic multi-key
// script execution" of spec.md §2: every method commits as a single
// atomic unit, and implementations must not split one method across
// two round trips or two transactions (spec.md §9, "atomicity
// delegation").
//
// store/sql provides a bun/SQL-backed implementation, realizing each
// atomic envelope as one *bun.Tx.
type Store interface {
	Enqueuer
	Dispatcher
	Inspector
	Administrator
}
