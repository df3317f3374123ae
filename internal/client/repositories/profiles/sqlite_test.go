package profiles

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/client/migrations"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

func ada() timeline.Profile {
	return timeline.Profile{
		ID:        "u1",
		Email:     "ada@example.com",
		FullName:  "Ada Lovelace",
		Birthdate: time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2023, time.January, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestUpsertAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	synced := time.Date(2024, time.March, 1, 12, 0, 0, 500, time.UTC)

	require.NoError(t, r.Upsert(ctx, ada(), synced))
	p, at, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, ada(), p)
	assert.True(t, synced.Equal(at))
}

func TestUpsert_Overwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, ada(), time.Unix(0, 0)))
	renamed := ada()
	renamed.FullName = "Augusta Ada King"
	later := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Upsert(ctx, renamed, later))

	p, at, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Augusta Ada King", p.FullName)
	assert.True(t, later.Equal(at))
}

func TestGet_NotCached(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, _, err := r.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, ada(), time.Now()))
	require.NoError(t, r.Clear(ctx))
	_, _, err := r.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestGet_ClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, _, err := r.Get(context.Background(), "u1")
	assert.ErrorContains(t, err, "failed to get profile u1")
}
