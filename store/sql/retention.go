package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/uptrace/bun"
)

// sweepRetention deletes completed jobs that fall outside either
// retention bound (spec.md §4.6): jobs-history is a max age, applied
// uniformly as age > threshold so a negative threshold reaps
// everything; jobs-history-count is a max population, oldest first.
// Both bounds run every Complete so the completed set never grows
// past either limit between calls.
func sweepRetention(ctx context.Context, tx bun.Tx, now time.Time) error {
	maxAge, err := configDuration(ctx, tx, leaseq.ConfigJobsHistory, leaseq.DefaultJobsHistory)
	if err != nil {
		return err
	}
	cutoff := now.Add(-maxAge)

	var expired []string
	if err := tx.NewSelect().
		Model((*completedModel)(nil)).
		Column("job_id").
		Where("completed_at < ?", cutoff).
		Scan(ctx, &expired); err != nil {
		return err
	}
	if err := deleteCompletedIDs(ctx, tx, expired); err != nil {
		return err
	}

	maxCount, err := configInt(ctx, tx, leaseq.ConfigJobsHistoryCount, leaseq.DefaultJobsHistoryCount)
	if err != nil {
		return err
	}
	if maxCount < 0 {
		maxCount = 0
	}

	var total int
	total, err = tx.NewSelect().Model((*completedModel)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if int64(total) <= maxCount {
		return nil
	}

	var overflow []string
	if err := tx.NewSelect().
		Model((*completedModel)(nil)).
		Column("job_id").
		OrderExpr("completed_at ASC").
		Limit(total - int(maxCount)).
		Scan(ctx, &overflow); err != nil {
		return err
	}
	return deleteCompletedIDs(ctx, tx, overflow)
}

func deleteCompletedIDs(ctx context.Context, tx bun.Tx, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := tx.NewDelete().
		Model((*completedModel)(nil)).
		Where("job_id IN (?)", bun.In(ids)).
		Exec(ctx); err != nil {
		return err
	}
	if _, err := tx.NewDelete().
		Model((*jobModel)(nil)).
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx); err != nil {
		return err
	}
	for _, id := range ids {
		if err := expireTracking(ctx, tx, id); err != nil {
			return err
		}
	}
	return nil
}
