package sql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leaseq/leaseq"
	"github.com/uptrace/bun"
)

// GetConfig implements leaseq.Administrator.GetConfig.
func (s *Store) GetConfig(ctx context.Context, name string) (string, bool, error) {
	var m configModel
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&m).Where("name = ?", name).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return m.Value, true, nil
}

// GetAllConfig implements leaseq.Administrator.GetAllConfig.
func (s *Store) GetAllConfig(ctx context.Context) (map[string]string, error) {
	var rows []*configModel
	err := s.db.RunInTx(ctx, &sqlReadOnly, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&rows).OrderExpr("name ASC").Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Value
	}
	return out, nil
}

// SetConfig implements leaseq.Administrator.SetConfig: value == nil
// deletes name, reverting it to its built-in default.
func (s *Store) SetConfig(ctx context.Context, name string, value *string) error {
	if name == "" {
		return leaseq.ErrMissingConfigName
	}
	return s.runAtomic(ctx, func(ctx context.Context, tx bun.Tx) error {
		if value == nil {
			_, err := tx.NewDelete().Model((*configModel)(nil)).Where("name = ?", name).Exec(ctx)
			return err
		}
		_, err := tx.NewInsert().
			Model(&configModel{Name: name, Value: *value}).
			On("CONFLICT (name) DO UPDATE SET value = EXCLUDED.value").
			Exec(ctx)
		return err
	})
}
