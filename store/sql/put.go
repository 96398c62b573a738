package sql

import (
	"context"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// Put implements leaseq.Enqueuer. See spec.md §4.2: creating a new id
// waits/schedules it; putting an id that already exists moves it,
// clearing any held lease and failure state and appending a fresh
// history event, regardless of its prior state. A moved job keeps its
// stored data when data is nil, and its stored priority and tags when
// args is nil.
func (s *Store) Put(ctx context.Context, queue string, id string, data map[string]any, now time.Time, args *leaseq.PutArgs) (string, error) {
	if queue == "" {
		return "", leaseq.ErrMissingQueue
	}
	if id == "" {
		return "", leaseq.ErrMissingID
	}
	priority, tags, delay := 0, []string{}, time.Duration(0)
	if args != nil {
		priority, tags, delay = args.Priority, args.Tags, args.Delay
		if tags == nil {
			tags = []string{}
		}
	}
	if delay < 0 {
		return "", leaseq.ErrInvalidDelay
	}

	err := s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := ensureQueue(ctx, tx, queue, now); err != nil {
			return err
		}
		existing, err := selectJob(ctx, tx, id)
		if err != nil {
			return err
		}
		seq, err := nextSeq(ctx, tx, queue)
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

		var history []job.Event
		if existing != nil {
			history = existing.History
			if data == nil {
				data = existing.Data
			}
			if args == nil {
				priority, tags = existing.Priority, existing.Tags
			}
		}
		history = append(history, job.Event{Queue: queue, Put: now})

		model := &jobModel{
			Id:       id,
			Queue:    queue,
			State:    state,
			Worker:   "",
			Priority: priority,
			Seq:      seq,
			Due:      due,
			Expires:  nil,
			Data:     data,
			Tags:     tags,
			History:  history,
		}
		if existing != nil {
			_, err = tx.NewUpdate().Model(model).WherePK().Exec(ctx)
		} else {
			_, err = tx.NewInsert().Model(model).Exec(ctx)
		}
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
