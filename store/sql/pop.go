package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// Pop implements leaseq.Dispatcher.Pop's three-stage pipeline
// (spec.md §4.4), executed as one transaction:
//
//  1. reclaim: running leases with expires <= now become stalled.
//  2. promote: scheduled jobs with due <= now become waiting.
//  3. dispense: the lowest-ranked up-to-count ids (stalled preferred
//     over waiting, then priority, then insertion order) become
//     running under worker, with expires as their new lease and a
//     wait-duration sample recorded.
//
// The stages never interleave with each other or with another
// caller's Pop/Put/Complete/Fail/Cancel.
func (s *Store) Pop(ctx context.Context, queue string, worker string, count int, now time.Time, expires time.Time) ([]*job.Job, error) {
	if queue == "" {
		return nil, leaseq.ErrMissingQueue
	}
	if worker == "" {
		return nil, leaseq.ErrMissingWorker
	}
	if count < 0 {
		return nil, leaseq.ErrInvalidCount
	}
	if count == 0 {
		return nil, nil
	}

	var dispensed []*job.Job
	err := s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := ensureQueue(ctx, tx, queue, now); err != nil {
			return err
		}

		// Stage 1: reclaim stalled leases.
		if _, err := tx.NewUpdate().
			Model((*jobModel)(nil)).
			Set("state = ?", job.Stalled).
			Where("queue = ?", queue).
			Where("state = ?", job.Running).
			Where("expires <= ?", now).
			Exec(ctx); err != nil {
			return err
		}

		// Stage 2: promote due scheduled jobs.
		if _, err := tx.NewUpdate().
			Model((*jobModel)(nil)).
			Set("state = ?", job.Waiting).
			Set("due = NULL").
			Where("queue = ?", queue).
			Where("state = ?", job.Scheduled).
			Where("due <= ?", now).
			Exec(ctx); err != nil {
			return err
		}

		// Stage 3: dispense. After stages 1/2, every eligible job is
		// plainly Stalled or Waiting; the rank expression and the
		// plain states now agree.
		var candidates []*jobModel
		if err := tx.NewSelect().
			Model(&candidates).
			Where("queue = ?", queue).
			WhereGroup("AND", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Where("state = ?", job.Stalled).WhereOr("state = ?", job.Waiting)
			}).
			OrderExpr("(CASE WHEN state = ? THEN 0 ELSE 1 END) ASC, priority ASC, seq ASC", job.Stalled).
			Limit(count).
			Scan(ctx); err != nil {
			return err
		}

		day := dayBucket(now)
		for _, c := range candidates {
			last := job.LastEvent(c.History)
			waitSeconds := now.Sub(last.Put).Seconds()
			if err := addSample(ctx, tx, queue, day, "wait", waitSeconds); err != nil {
				return err
			}

			poppedAt := now
			last.Popped = &poppedAt
			c.State = job.Running
			c.Worker = worker
			expiresCopy := expires
			c.Expires = &expiresCopy
			c.Due = nil

			if _, err := tx.NewUpdate().Model(c).WherePK().Exec(ctx); err != nil {
				return err
			}
			dispensed = append(dispensed, c.toJob())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dispensed, nil
}
