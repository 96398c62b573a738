package sql

import (
	"context"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

const defaultFailedLimit = 25

// FailedGroups implements leaseq.Inspector.FailedGroups: the distinct
// failure groups currently holding at least one failed job, with
// their counts (spec.md §4.9). Failed jobs are ordinary rows in the
// jobs table with State == Failed, so no separate index is needed.
func (s *Store) FailedGroups(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Group string `bun:"failure_group"`
		Count int64  `bun:"count"`
	}
	var rows []row
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model((*jobModel)(nil)).
			ColumnExpr("failure_group").
			ColumnExpr("count(*) AS count").
			Where("state = ?", job.Failed).
			GroupExpr("failure_group").
			Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Group] = r.Count
	}
	return out, nil
}

// FailedJobs implements leaseq.Inspector.FailedJobs: jobs currently
// failed in group, most recent failure first, paginated by start and
// limit (limit defaults to 25 when 0), alongside the total number
// failed under group regardless of pagination.
func (s *Store) FailedJobs(ctx context.Context, group string, start int, limit int) (int64, []*job.Job, error) {
	if group == "" {
		return 0, nil, leaseq.ErrMissingFailureGroup
	}
	if start < 0 || limit < 0 {
		return 0, nil, leaseq.ErrBadStatus
	}
	if limit == 0 {
		limit = defaultFailedLimit
	}

	var total int64
	var rows []*jobModel
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		count, err := tx.NewSelect().
			Model((*jobModel)(nil)).
			Where("state = ?", job.Failed).
			Where("failure_group = ?", group).
			Count(ctx)
		if err != nil {
			return err
		}
		total = int64(count)

		return tx.NewSelect().
			Model(&rows).
			Where("state = ?", job.Failed).
			Where("failure_group = ?", group).
			OrderExpr("failure_when DESC").
			Offset(start).
			Limit(limit).
			Scan(ctx)
	})
	if err != nil {
		return 0, nil, err
	}
	jobs := make([]*job.Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, r.toJob())
	}
	return total, jobs, nil
}
