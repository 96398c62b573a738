package sql

import (
	"context"

	"github.com/leaseq/leaseq"
	"github.com/uptrace/bun"
)

// Track implements leaseq.Administrator.Track: it starts (or
// restarts) tracking id, clearing any prior "expired" mark (spec.md
// §4.12).
func (s *Store) Track(ctx context.Context, id string) error {
	if id == "" {
		return leaseq.ErrMissingID
	}
	return s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&trackedModel{JobID: id, Expired: false}).
			On("CONFLICT (job_id) DO UPDATE SET expired = ?", false).
			Exec(ctx)
		return err
	})
}

// Untrack implements leaseq.Administrator.Untrack: it removes id from
// tracking entirely, including any "expired" mark.
func (s *Store) Untrack(ctx context.Context, id string) error {
	if id == "" {
		return leaseq.ErrMissingID
	}
	return s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*trackedModel)(nil)).Where("job_id = ?", id).Exec(ctx)
		return err
	})
}

// Tracked implements leaseq.Inspector.Tracked: the currently tracked
// ids, and the subset that expired (cancelled or reaped by retention)
// while still tracked.
func (s *Store) Tracked(ctx context.Context) (leaseq.Tracked, error) {
	var rows []*trackedModel
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&rows).OrderExpr("job_id ASC").Scan(ctx)
	})
	if err != nil {
		return leaseq.Tracked{}, err
	}
	out := leaseq.Tracked{Jobs: []string{}, Expired: []string{}}
	for _, r := range rows {
		if r.Expired {
			out.Expired = append(out.Expired, r.JobID)
		} else {
			out.Jobs = append(out.Jobs, r.JobID)
		}
	}
	return out, nil
}
