package sql

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/uptrace/bun"
)

// addSample folds one observation of seconds into the (queue, day,
// kind) running distribution: count, sum, sum-of-squares for mean/std,
// and a bucketed histogram (spec.md §4.13).
func addSample(ctx context.Context, tx bun.Tx, queue string, day int64, kind string, seconds float64) error {
	var m statsModel
	err := tx.NewSelect().
		Model(&m).
		Where("queue = ?", queue).
		Where("day = ?", day).
		Where("kind = ?", kind).
		Scan(ctx)
	switch {
	case err == nil:
		// existing row, fall through to update below
	case errors.Is(err, sql.ErrNoRows):
		m = statsModel{
			Queue:     queue,
			Day:       day,
			Kind:      kind,
			Histogram: make([]int64, histogramBuckets),
		}
	default:
		return err
	}

	if len(m.Histogram) != histogramBuckets {
		h := make([]int64, histogramBuckets)
		copy(h, m.Histogram)
		m.Histogram = h
	}

	m.Count++
	m.Sum += seconds
	m.SumSq += seconds * seconds
	m.Histogram[clampBucket(seconds)]++

	_, err = tx.NewInsert().
		Model(&m).
		On("CONFLICT (queue, day, kind) DO UPDATE").
		Set("count = EXCLUDED.count").
		Set("sum = EXCLUDED.sum").
		Set("sum_sq = EXCLUDED.sum_sq").
		Set("histogram = EXCLUDED.histogram").
		Exec(ctx)
	return err
}

// Stats implements leaseq.Inspector.Stats: the wait and run
// distributions recorded for queue on date's calendar day bucket.
func (s *Store) Stats(ctx context.Context, queue string, date time.Time) (leaseq.Distribution, leaseq.Distribution, error) {
	if queue == "" {
		return leaseq.Distribution{}, leaseq.Distribution{}, leaseq.ErrMissingQueue
	}
	day := dayBucket(date)

	var rows []*statsModel
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Where("queue = ?", queue).
			Where("day = ?", day).
			Scan(ctx)
	})
	if err != nil {
		return leaseq.Distribution{}, leaseq.Distribution{}, err
	}

	var wait, run leaseq.Distribution
	for _, r := range rows {
		switch r.Kind {
		case "wait":
			fillDistribution(&wait, r)
		case "run":
			fillDistribution(&run, r)
		}
	}
	return wait, run, nil
}

func fillDistribution(d *leaseq.Distribution, r *statsModel) {
	d.Count = r.Count
	for i, v := range r.Histogram {
		if i < len(d.Histogram) {
			d.Histogram[i] = v
		}
	}
	if r.Count > 0 {
		n := float64(r.Count)
		d.Mean = r.Sum / n
	}
	if r.Count > 1 {
		n := float64(r.Count)
		variance := (r.SumSq - r.Sum*r.Sum/n) / (n - 1)
		if variance < 0 {
			variance = 0
		}
		d.Std = math.Sqrt(variance)
	}
}
