package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/dmitrijs2005/econdash/internal/cryptox"
	"github.com/dmitrijs2005/econdash/internal/dbx"
)

// SQLiteStore keeps the token in the metadata table of the client database,
// sealed at rest with the per-install key.
type SQLiteStore struct {
	db  dbx.DBTX
	key []byte
}

func NewSQLiteStore(db dbx.DBTX, key []byte) *SQLiteStore {
	return &SQLiteStore{db: db, key: key}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE key = ?`, common.CredentialStorageKey).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get credential: %w", err)
	}

	token, err := cryptox.Open(sealed, s.key)
	if err != nil {
		// A value we cannot unseal (e.g. rotated secret file) is as good
		// as absent; the caller will have to log in again.
		return "", nil
	}
	return string(token), nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	sealed, err := cryptox.Seal([]byte(token), s.key)
	if err != nil {
		return fmt.Errorf("seal credential: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, common.CredentialStorageKey, sealed)
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM metadata WHERE key = ?`, common.CredentialStorageKey)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
