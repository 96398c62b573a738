package sql

import (
	"database/sql"
	"time"
)

// sqlReadOnly marks a transaction as read-only for backends (such as
// PostgreSQL) that use this as a hint; SQLite ignores it.
var sqlReadOnly = sql.TxOptions{ReadOnly: true}

func isAffected(res sql.Result) bool {
	rows, err := res.RowsAffected()
	if err != nil {
		return true
	}
	return rows != 0
}

func getAffected(res sql.Result) int64 {
	ret, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return ret
}

func dayBucket(t time.Time) int64 {
	return t.Unix() / 86400
}

func clampBucket(seconds float64) int {
	if seconds < 0 {
		return 0
	}
	b := int(seconds)
	if b >= histogramBuckets {
		return histogramBuckets - 1
	}
	return b
}
