package sql

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

func createTable(ctx context.Context, db bun.IDB, model any) error {
	_, err := db.NewCreateTable().
		Model(model).
		IfNotExists().
		Exec(ctx)
	return err
}

func createIndex(ctx context.Context, db bun.IDB, model any, name string, columns ...string) error {
	_, err := db.NewCreateIndex().
		Model(model).
		Index(name).
		Column(columns...).
		IfNotExists().
		Exec(ctx)
	return err
}

func initDB(ctx context.Context, db *bun.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	tables := []any{
		(*jobModel)(nil),
		(*queueModel)(nil),
		(*queueSeqModel)(nil),
		(*completedModel)(nil),
		(*trackedModel)(nil),
		(*statsModel)(nil),
		(*configModel)(nil),
	}
	for _, model := range tables {
		if err := createTable(ctx, tx, model); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	indexes := []struct {
		model   any
		name    string
		columns []string
	}{
		{(*jobModel)(nil), "idx_jobs_queue_state_priority_seq", []string{"queue", "state", "priority", "seq"}},
		{(*jobModel)(nil), "idx_jobs_queue_state_due", []string{"queue", "state", "due"}},
		{(*jobModel)(nil), "idx_jobs_queue_state_expires", []string{"queue", "state", "expires"}},
		{(*jobModel)(nil), "idx_jobs_state_failure_group", []string{"state", "failure_group", "failure_when"}},
		{(*completedModel)(nil), "idx_completed_completed_at", []string{"completed_at"}},
	}
	for _, idx := range indexes {
		if err := createIndex(ctx, tx, idx.model, idx.name, idx.columns...); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

// InitDB initializes the database schema required by the SQL backend.
//
// It creates every table and index used by Store inside a single
// transaction. If any step fails, the transaction is rolled back.
//
// InitDB is idempotent and may be safely called multiple times. It
// does not drop or modify existing tables beyond creating missing
// objects.
func InitDB(ctx context.Context, db *bun.DB) error {
	return initDB(ctx, db)
}

// MustInitDB behaves like InitDB but panics if initialization fails.
//
// This helper is intended for application bootstrap code where
// failure to initialize schema is considered unrecoverable.
func MustInitDB(ctx context.Context, db *bun.DB) {
	if err := initDB(ctx, db); err != nil {
		panic(err)
	}
}
