package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/leaseq/leaseq"
	gsql "github.com/leaseq/leaseq/store/sql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

// openStore opens (and, if needed, initializes) the SQLite-backed
// leaseq.Store at dbFlag(). The underlying *bun.DB is never closed
// explicitly; it lives until the process exits.
func openStore(ctx context.Context) (leaseq.Store, error) {
	path := dbFlag()
	sqlDB, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path))
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if err := gsql.InitDB(ctx, db); err != nil {
		return nil, err
	}
	return gsql.New(db), nil
}
