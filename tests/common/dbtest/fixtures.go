//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// ResetDB empties every collection between tests. The schema stays in place.
func ResetDB(db DBLike) error {
	_, err := db.Exec(context.Background(), "TRUNCATE kv_entries")
	return err
}

// StoredValue returns the raw JSON kept under key, or nil when the key is absent.
func StoredValue(t *testing.T, db DBLike, key string) []byte {
	t.Helper()

	var value []byte
	err := db.QueryRow(context.Background(), "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return value
}
