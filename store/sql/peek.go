package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// dispenseRankExpr orders stalled-or-would-be-stalled jobs ahead of
// waiting-or-would-be-promoted jobs (spec.md §9 open question,
// resolved in favor of preserving stalled-first preference), and
// within each group, lower priority pops first, ties broken by
// insertion order.
const dispenseRankExpr = "(CASE WHEN state = ? OR (state = ? AND expires <= ?) THEN 0 ELSE 1 END)"

// dispenseQuery selects every job eligible for dispense at now: truly
// stalled, a running lease that would be reclaimed as stalled,
// waiting, or a scheduled job whose due time has passed. Peek uses
// this directly to preview Pop's output without performing stage
// 1/2's promotion writes; Pop's dispense stage runs it after having
// already performed those writes, at which point the rank expression
// and the plain state checks agree.
func dispenseQuery(tx bun.Tx, queue string, now time.Time) *bun.SelectQuery {
	return tx.NewSelect().
		Model((*jobModel)(nil)).
		Where("queue = ?", queue).
		WhereGroup("AND", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("state = ?", job.Stalled).
				WhereOr("state = ? AND expires <= ?", job.Running, now).
				WhereOr("state = ?", job.Waiting).
				WhereOr("state = ? AND due <= ?", job.Scheduled, now)
		}).
		OrderExpr(dispenseRankExpr+" ASC, priority ASC, seq ASC", job.Stalled, job.Running, now)
}

// Peek implements leaseq.Dispatcher.Peek: it previews Pop's output at
// now without transitioning any job or running promotion writes
// (spec.md §4.3).
func (s *Store) Peek(ctx context.Context, queue string, count int, now time.Time) ([]*job.Job, error) {
	if queue == "" {
		return nil, leaseq.ErrMissingQueue
	}
	if count < 0 {
		return nil, leaseq.ErrInvalidCount
	}
	if count == 0 {
		return nil, nil
	}
	var rows []*jobModel
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		return dispenseQuery(tx, queue, now).
			Limit(count).
			Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	jobs := make([]*job.Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, r.toJob())
	}
	return jobs, nil
}
