package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "paycal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteGetMissing(t *testing.T) {
	db := openTestDB(t)

	v, ok, err := db.Get("transactions")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLiteSetOverwrites(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Set("transactions", `{"a":1}`))
	require.NoError(t, db.Set("transactions", `{"b":2}`))

	v, ok, err := db.Get("transactions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"b":2}`, v)

	at, err := db.UpdatedAt("transactions")
	require.NoError(t, err)
	assert.False(t, at.IsZero())
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paycal.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Set("k", "v"))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	v, ok, err := db.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMemoryZeroValue(t *testing.T) {
	var m Memory
	require.NoError(t, m.Set("b", "2"))
	require.NoError(t, m.Set("a", "1"))

	v, ok, err := m.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestSQLiteUpdatedAtMissingIsZero(t *testing.T) {
	db := openTestDB(t)

	at, err := db.UpdatedAt("transactions")
	require.NoError(t, err)
	assert.True(t, at.IsZero())
}

func TestSQLiteUpdatedAtRejectsBadTimestamp(t *testing.T) {
	db := openTestDB(t)
	_, err := db.db.Exec(`INSERT INTO blobs (key, value, updated_at) VALUES ('k', 'v', 'yesterday')`)
	require.NoError(t, err)

	_, err = db.UpdatedAt("k")
	assert.Error(t, err)
}
