package sql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/uptrace/bun"
)

const histogramBuckets = leaseq.StatsHistogramBuckets

// Store implements leaseq.Store over a *bun.DB.
//
// Every exported method opens exactly one *bun.Tx and commits or
// rolls it back before returning, so the operation is atomic against
// everything it reads or writes (spec.md §5).
type Store struct {
	db *bun.DB
}

// New creates a Store backed by db. Schema initialization (InitDB)
// must be completed before using it.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

var _ leaseq.Store = (*Store)(nil)

func (s *Store) runAtomic(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}

// ensureQueue registers queue in the "ever referenced" registry the
// first time it is seen, so Inspector.Queues reports it even once
// empty (spec.md §4.11).
func ensureQueue(ctx context.Context, tx bun.Tx, queue string, now time.Time) error {
	_, err := tx.NewInsert().
		Model(&queueModel{Name: queue, FirstSeen: now}).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx)
	return err
}

// nextSeq returns the next monotonically increasing insertion counter
// for queue, used to break priority ties in FIFO order.
func nextSeq(ctx context.Context, tx bun.Tx, queue string) (int64, error) {
	var next int64
	err := tx.NewInsert().
		Model(&queueSeqModel{Queue: queue, Next: 1}).
		On("CONFLICT (queue) DO UPDATE SET next = queue_seq.next + 1").
		Returning("next").
		Scan(ctx, &next)
	return next, err
}

func selectJob(ctx context.Context, tx bun.Tx, id string) (*jobModel, error) {
	var m jobModel
	err := tx.NewSelect().Model(&m).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func configString(ctx context.Context, tx bun.Tx, name string, fallback string) (string, error) {
	var m configModel
	err := tx.NewSelect().Model(&m).Where("name = ?", name).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fallback, nil
		}
		return "", err
	}
	return m.Value, nil
}

func configDuration(ctx context.Context, tx bun.Tx, name string, fallback time.Duration) (time.Duration, error) {
	raw, err := configString(ctx, tx, name, "")
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return fallback, nil
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func configInt(ctx context.Context, tx bun.Tx, name string, fallback int64) (int64, error) {
	raw, err := configString(ctx, tx, name, "")
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// expireTracking marks id as an "expired" tracked entry if it is
// currently tracked, used by Cancel and the retention sweep so
// tracking survives the underlying job record's deletion (spec.md
// §4.12).
func expireTracking(ctx context.Context, tx bun.Tx, id string) error {
	res, err := tx.NewUpdate().
		Model((*trackedModel)(nil)).
		Set("expired = ?", true).
		Where("job_id = ?", id).
		Where("expired = ?", false).
		Exec(ctx)
	if err != nil {
		return err
	}
	_ = isAffected(res)
	return nil
}
