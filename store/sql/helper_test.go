package sql_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	gsql "github.com/leaseq/leaseq/store/sql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) *gsql.Store {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", "file::memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1) // important for sqlite
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	ctx := context.Background()
	if err := gsql.InitDB(ctx, db); err != nil {
		t.Fatal(err)
	}
	return gsql.New(db)
}

var baseTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
