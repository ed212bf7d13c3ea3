package session

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	keyAccessToken = "accessToken"
	keyUser        = "user"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load reads both keys. If only one of the pair is present the stored state
// is invalid; it is wiped and reported as absent.
func (r *SQLiteRepository) Load(ctx context.Context) (*Artifacts, error) {
	token, tokenOK, err := r.get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	user, userOK, err := r.get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	if !tokenOK || !userOK {
		if tokenOK != userOK {
			if err := r.Clear(ctx); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	return &Artifacts{AccessToken: string(token), User: user}, nil
}

// Save upserts both keys in a single transaction so the pairing invariant
// holds even if the process dies mid-write.
func (r *SQLiteRepository) Save(ctx context.Context, accessToken string, user []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin session save: %w", err)
	}
	defer tx.Rollback()

	for _, kv := range []struct {
		key   string
		value []byte
	}{
		{keyAccessToken, []byte(accessToken)},
		{keyUser, user},
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO session (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, kv.key, kv.value); err != nil {
			return fmt.Errorf("failed to set session[%s]: %w", kv.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session save: %w", err)
	}
	return nil
}

// Clear removes the whole pair. Clearing an already-empty store is a no-op.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, true, nil
}
