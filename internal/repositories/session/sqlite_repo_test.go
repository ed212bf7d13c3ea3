package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionrepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func insertKV(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO session(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	return n
}

// ---- TESTS ----

func TestLoad_Empty_ReturnsNil(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	artifacts, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, artifacts)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-123", []byte(`{"id":1}`)))

	artifacts, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, artifacts)
	require.Equal(t, "tok-123", artifacts.AccessToken)
	require.Equal(t, []byte(`{"id":1}`), artifacts.User)
}

func TestSave_OverwritesExistingPair(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok-1", []byte(`one`)))
	require.NoError(t, repo.Save(ctx, "tok-2", []byte(`two`)))

	artifacts, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", artifacts.AccessToken)
	require.Equal(t, []byte(`two`), artifacts.User)
	require.Equal(t, 2, countRows(t, db))
}

func TestClear_RemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok", []byte(`u`)))
	require.NoError(t, repo.Clear(ctx))

	artifacts, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, artifacts)
	require.Equal(t, 0, countRows(t, db))
}

func TestClear_EmptyStore_NoError(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))
}

func TestLoad_TokenWithoutUser_HealedToAbsent(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	insertKV(t, db, "accessToken", []byte("stale-token"))

	artifacts, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, artifacts)
	require.Equal(t, 0, countRows(t, db), "half-present pair must be wiped")
}

func TestLoad_UserWithoutToken_HealedToAbsent(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	insertKV(t, db, "user", []byte(`{"id":1}`))

	artifacts, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, artifacts)
	require.Equal(t, 0, countRows(t, db))
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:sessioninit?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Save(ctx, "tok", []byte(`u`)))

	artifacts, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", artifacts.AccessToken)
}
