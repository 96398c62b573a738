package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// Complete implements leaseq.Dispatcher.Complete (spec.md §4.6). The
// id is only touched if it is Running, held by worker, and still in
// queue; otherwise the lease has moved on and the second return is
// false. Without args.Next the job finishes: it is recorded in the
// completed set, a run-duration sample is taken, and retention is
// swept in the same transaction. With args.Next it is moved to that
// queue instead, exactly as Put would move it, after the same
// run-duration sample.
func (s *Store) Complete(ctx context.Context, id string, worker string, queue string, now time.Time, args *leaseq.CompleteArgs) (job.State, bool, error) {
	if id == "" {
		return job.Unknown, false, leaseq.ErrMissingID
	}
	if worker == "" {
		return job.Unknown, false, leaseq.ErrMissingWorker
	}
	if queue == "" {
		return job.Unknown, false, leaseq.ErrMissingQueue
	}

	var data map[string]any
	var next string
	var delay time.Duration
	if args != nil {
		data, next, delay = args.Data, args.Next, args.Delay
	}
	if delay < 0 {
		return job.Unknown, false, leaseq.ErrInvalidDelay
	}

	var finalState job.State
	var ok bool
	err := s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		m, err := selectJob(ctx, tx, id)
		if err != nil {
			return err
		}
		if m == nil || m.State != job.Running || m.Worker != worker || m.Queue != queue {
			return nil
		}
		ok = true

		if last := job.LastEvent(m.History); last != nil {
			if last.Popped != nil {
				runSeconds := now.Sub(*last.Popped).Seconds()
				if err := addSample(ctx, tx, queue, dayBucket(now), "run", runSeconds); err != nil {
					return err
				}
			}
			last.Done = &now
		}
		if data != nil {
			m.Data = data
		}

		if next == "" {
			finalState = job.Complete
			m.State = job.Complete
			m.Queue = ""
			m.Worker = ""
			m.Expires = nil
			m.Due = nil

			if _, err := tx.NewInsert().
				Model(&completedModel{JobID: id, CompletedAt: now}).
				On("CONFLICT (job_id) DO UPDATE SET completed_at = EXCLUDED.completed_at").
				Exec(ctx); err != nil {
				return err
			}
			if _, err := tx.NewUpdate().Model(m).WherePK().Exec(ctx); err != nil {
				return err
			}
			return sweepRetention(ctx, tx, now)
		}

		if err := ensureQueue(ctx, tx, next, now); err != nil {
			return err
		}
		seq, err := nextSeq(ctx, tx, next)
		if err != nil {
			return err
		}

		state := job.Waiting
		var due *time.Time
		if delay > 0 {
			state = job.Scheduled
			d := now.Add(delay)
			due = &d
		}
		finalState = state

		m.Queue = next
		m.State = state
		m.Worker = ""
		m.Expires = nil
		m.Due = due
		m.Seq = seq
		m.FailureGroup, m.FailureMessage, m.FailureWhen, m.FailureWorker = nil, nil, nil, nil
		m.History = append(m.History, job.Event{Queue: next, Put: now})

		_, err = tx.NewUpdate().Model(m).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return job.Unknown, false, err
	}
	if !ok {
		return job.Unknown, false, nil
	}
	return finalState, true, nil
}
