package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return db
}

func newStore(t *testing.T) *SQLiteStore {
	t.Helper()
	return NewSQLiteStore(setupDB(t), common.GenerateRandByteArray(32))
}

func TestSetThenGetReturnsToken(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "tok-123"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-123", got)
}

func TestGetWithoutSetReturnsAbsent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClearThenGetReturnsAbsent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "tok-123"))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClearOfAbsentCredentialIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
}

func TestSetOverwritesPreviousToken(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "old"))
	require.NoError(t, s.Set(ctx, "new"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestValueIsSealedAtRest(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLiteStore(db, common.GenerateRandByteArray(32))

	require.NoError(t, s.Set(ctx, "tok-123"))

	var raw []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, common.CredentialStorageKey).Scan(&raw)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "tok-123")
}

func TestUnsealableValueIsTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)

	s1 := NewSQLiteStore(db, common.GenerateRandByteArray(32))
	require.NoError(t, s1.Set(ctx, "tok-123"))

	// A rotated secret file means the old blob cannot be opened.
	s2 := NewSQLiteStore(db, common.GenerateRandByteArray(32))
	got, err := s2.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
