// Package settings persists user display preferences in the client
// database. Absent or unreadable values fall back to defaults, never to an
// error the UI has to handle.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/dmitrijs2005/econdash/internal/dbx"
	"github.com/dmitrijs2005/econdash/internal/timex"
)

// Settings are the user's display preferences.
type Settings struct {
	RefreshInterval timex.Duration `json:"refresh_interval"`
	ShownSections   []string       `json:"shown_sections"`
	OnboardingSeen  bool           `json:"onboarding_seen"`
}

// Default returns the preferences applied when nothing is stored yet.
func Default() Settings {
	return Settings{
		RefreshInterval: timex.Duration{Duration: 5 * time.Minute},
		ShownSections:   []string{"indicators", "news", "newsletters", "bookmarks"},
		OnboardingSeen:  false,
	}
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the stored preferences, or defaults when absent or corrupt.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, common.SettingsStorageKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("load settings: %w", err)
	}

	var st Settings
	if err := json.Unmarshal(raw, &st); err != nil {
		// Corrupt previous write; start over from defaults.
		return Default(), nil
	}
	if st.RefreshInterval.Duration <= 0 {
		st.RefreshInterval = Default().RefreshInterval
	}
	return st, nil
}

// Save writes the preferences and the write timestamp in one transaction.
func (s *Store) Save(ctx context.Context, st Settings) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		upsert := `
			INSERT INTO metadata (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`
		if _, err := tx.ExecContext(ctx, upsert, common.SettingsStorageKey, raw); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		stamp := []byte(time.Now().UTC().Format(time.RFC3339))
		if _, err := tx.ExecContext(ctx, upsert, common.SettingsStorageKey+"_updated_at", stamp); err != nil {
			return fmt.Errorf("save settings timestamp: %w", err)
		}
		return nil
	})
}
