package sql

import (
	"context"

	"github.com/leaseq/leaseq"
	"github.com/uptrace/bun"
)

// Cancel implements leaseq.Dispatcher.Cancel (spec.md §4.8): it
// deletes the job unconditionally, from whatever state it is in, and
// invalidates any lease or tracking a later Heartbeat/Complete/Fail
// call could try to use. Cancelling an id that does not exist is a
// no-op, not an error.
func (s *Store) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return leaseq.ErrMissingID
	}
	return s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*jobModel)(nil)).Where("id = ?", id).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().Model((*completedModel)(nil)).Where("job_id = ?", id).Exec(ctx); err != nil {
			return err
		}
		return expireTracking(ctx, tx, id)
	})
}
