package sql

import (
	"context"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// Get implements leaseq.Inspector.Get.
func (s *Store) Get(ctx context.Context, id string) (*job.Job, error) {
	if id == "" {
		return nil, leaseq.ErrMissingID
	}
	var m *jobModel
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		var err error
		m, err = selectJob(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return m.toJob(), nil
}
