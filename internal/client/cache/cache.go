// Package cache keeps the last timeline fetched from the server in a local
// SQLite file, so read-only views keep working while the server is down.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/client/migrations"
	"github.com/dmitrijs2005/lifeweeks/internal/client/repositories/events"
	"github.com/dmitrijs2005/lifeweeks/internal/client/repositories/profiles"
	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"

	_ "modernc.org/sqlite"
)

// ErrNoSnapshot means nothing has been cached for the user yet.
var ErrNoSnapshot = errors.New("no cached timeline")

// Snapshot is one user's timeline as last seen online.
type Snapshot struct {
	Profile  timeline.Profile
	Events   []timeline.Event
	SyncedAt time.Time
}

type Cache struct {
	db *sql.DB
}

// Open creates the cache file when missing and migrates it.
func Open(ctx context.Context, path string) (*Cache, error) {
	if path != ":memory:" {
		if err := filex.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Save replaces the user's snapshot atomically.
func (c *Cache) Save(ctx context.Context, s Snapshot) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := profiles.NewSQLiteRepository(tx).Upsert(ctx, s.Profile, s.SyncedAt); err != nil {
			return err
		}
		return events.NewSQLiteRepository(tx).ReplaceAll(ctx, s.Profile.ID, s.Events)
	})
}

// Load returns ErrNoSnapshot when the user was never cached.
func (c *Cache) Load(ctx context.Context, userID string) (Snapshot, error) {
	var (
		s   Snapshot
		err error
	)
	s.Profile, s.SyncedAt, err = profiles.NewSQLiteRepository(c.db).Get(ctx, userID)
	if errors.Is(err, profiles.ErrNotCached) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, err
	}

	if s.Events, err = events.NewSQLiteRepository(c.db).ListByUser(ctx, userID); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Clear forgets every cached timeline.
func (c *Cache) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := profiles.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return events.NewSQLiteRepository(tx).Clear(ctx)
	})
}
