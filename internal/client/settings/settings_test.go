package settings

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/dmitrijs2005/econdash/internal/timex"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:settingsstore?mode=memory&cache=shared")
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

func TestLoadWithoutSaveReturnsDefaults(t *testing.T) {
	s := NewStore(setupDB(t))

	st, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, Default(), st)
	require.Equal(t, 5*time.Minute, st.RefreshInterval.Duration)
	require.False(t, st.OnboardingSeen)
}

func TestSaveThenLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(setupDB(t))

	in := Settings{
		RefreshInterval: timex.Duration{Duration: 90 * time.Second},
		ShownSections:   []string{"indicators", "bookmarks"},
		OnboardingSeen:  true,
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestSaveStampsUpdateTime(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewStore(db)

	require.NoError(t, s.Save(ctx, Default()))

	var raw []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`,
		common.SettingsStorageKey+"_updated_at").Scan(&raw)
	require.NoError(t, err)

	stamp, err := time.Parse(time.RFC3339, string(raw))
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), stamp, time.Minute)
}

func TestCorruptValueFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewStore(db)

	_, err := db.Exec(`INSERT INTO metadata (key, value) VALUES (?, ?)`,
		common.SettingsStorageKey, []byte("{bad json"))
	require.NoError(t, err)

	st, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, Default(), st)
}

func TestNonPositiveIntervalIsRepaired(t *testing.T) {
	ctx := context.Background()
	s := NewStore(setupDB(t))

	in := Default()
	in.RefreshInterval = timex.Duration{}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, out.RefreshInterval.Duration)
}
