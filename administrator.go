package leaseq

import "context"

// Administrator manages process-wide tunables and the opt-in
// tracking set. Unlike Enqueuer/Dispatcher, Administrator operations
// are not part of the per-job hot path; they are still executed
// atomically against the same backend.
type Administrator interface {

	// GetConfig returns the value configured for name and true, or ""
	// and false if name has no explicit value (and thus uses its
	// built-in default, if any; see DefaultHeartbeat and friends).
	GetConfig(ctx context.Context, name string) (string, bool, error)

	// GetAllConfig returns every explicitly configured name/value
	// pair. Unset options are omitted; callers fall back to the
	// package Default constants for those.
	GetAllConfig(ctx context.Context) (map[string]string, error)

	// SetConfig sets name to value. A nil value deletes the option,
	// reverting name to its built-in default. An empty name is
	// ErrMissingConfigName.
	SetConfig(ctx context.Context, name string, value *string) error

	// Track opts id into observation. Track on an id with no job
	// record is not an error: the id becomes tracked for whenever a
	// matching job is later Put.
	Track(ctx context.Context, id string) error

	// Untrack removes id from observation, including any entry for id
	// in the "expired" sub-collection populated by past
	// Cancel/retention events.
	Untrack(ctx context.Context, id string) error
}
