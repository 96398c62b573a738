package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// Heartbeat implements leaseq.Dispatcher.Heartbeat: it extends a held
// lease. The id is only touched if it is Running and held by worker;
// otherwise the lease has already moved on (timed out and reclaimed,
// completed, failed or cancelled) and the second return is false
// (spec.md §4.5).
func (s *Store) Heartbeat(ctx context.Context, id string, worker string, now time.Time, data map[string]any) (time.Time, bool, error) {
	if id == "" {
		return time.Time{}, false, leaseq.ErrMissingID
	}
	if worker == "" {
		return time.Time{}, false, leaseq.ErrMissingWorker
	}

	var expires time.Time
	var ok bool
	err := s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		m, err := selectJob(ctx, tx, id)
		if err != nil {
			return err
		}
		if m == nil || m.State != job.Running || m.Worker != worker {
			return nil
		}

		heartbeat, err := configDuration(ctx, tx, leaseq.ConfigHeartbeat, leaseq.DefaultHeartbeat)
		if err != nil {
			return err
		}
		expires = now.Add(heartbeat)

		if data != nil {
			m.Data = data
		}
		m.Expires = &expires

		res, err := tx.NewUpdate().Model(m).WherePK().Exec(ctx)
		if err != nil {
			return err
		}
		ok = isAffected(res)
		return nil
	})
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok {
		return time.Time{}, false, nil
	}
	return expires, true, nil
}
