package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// Fail implements leaseq.Dispatcher.Fail (spec.md §4.7). The id is
// only touched if it is Running and held by worker; otherwise the
// lease has moved on and the second return is false. A failed job
// clears its queue and lease and records group/message/worker for
// Inspector.FailedGroups/FailedJobs until a later Put clears it.
func (s *Store) Fail(ctx context.Context, id string, worker string, group string, message string, now time.Time, data map[string]any) (string, bool, error) {
	if id == "" {
		return "", false, leaseq.ErrMissingID
	}
	if worker == "" {
		return "", false, leaseq.ErrMissingWorker
	}
	if group == "" {
		return "", false, leaseq.ErrMissingFailureGroup
	}

	var ok bool
	err := s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		m, err := selectJob(ctx, tx, id)
		if err != nil {
			return err
		}
		if m == nil || m.State != job.Running || m.Worker != worker {
			return nil
		}
		ok = true

		if data != nil {
			m.Data = data
		}
		if last := job.LastEvent(m.History); last != nil {
			last.Done = &now
		}

		m.State = job.Failed
		m.Queue = ""
		m.Worker = ""
		m.Expires = nil
		m.Due = nil
		m.FailureGroup = &group
		m.FailureMessage = &message
		m.FailureWhen = &now
		m.FailureWorker = &worker

		_, err = tx.NewUpdate().Model(m).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return group, true, nil
}
