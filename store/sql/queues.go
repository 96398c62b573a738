package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// Queues implements leaseq.Inspector.Queues: one summary per queue
// ever referenced by Put or Pop, counted as they would read after a
// Pop at now reconciled their stalled/scheduled state, without
// actually performing that reconciliation (spec.md §4.11).
func (s *Store) Queues(ctx context.Context, now time.Time) ([]leaseq.QueueSummary, error) {
	var names []string
	var summaries []leaseq.QueueSummary
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().
			Model((*queueModel)(nil)).
			Column("name").
			OrderExpr("name ASC").
			Scan(ctx, &names); err != nil {
			return err
		}

		summaries = make([]leaseq.QueueSummary, len(names))
		for i, name := range names {
			summary, err := queueSummary(ctx, tx, name, now)
			if err != nil {
				return err
			}
			summaries[i] = summary
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func queueSummary(ctx context.Context, tx bun.Tx, queue string, now time.Time) (leaseq.QueueSummary, error) {
	summary := leaseq.QueueSummary{Name: queue}

	type row struct {
		State   job.State
		Due     *time.Time
		Expires *time.Time
	}
	var rows []row
	if err := tx.NewSelect().
		Model((*jobModel)(nil)).
		Column("state", "due", "expires").
		Where("queue = ?", queue).
		Scan(ctx, &rows); err != nil {
		return summary, err
	}

	for _, r := range rows {
		switch {
		case r.State == job.Waiting:
			summary.Waiting++
		case r.State == job.Scheduled:
			if r.Due != nil && !r.Due.After(now) {
				summary.Waiting++
			} else {
				summary.Scheduled++
			}
		case r.State == job.Running:
			if r.Expires != nil && !r.Expires.After(now) {
				summary.Stalled++
			} else {
				summary.Running++
			}
		case r.State == job.Stalled:
			summary.Stalled++
		case r.State.Terminal():
			// Complete/Failed rows linger until retention reaps them;
			// they contribute to no queue bucket.
		}
	}
	return summary, nil
}
