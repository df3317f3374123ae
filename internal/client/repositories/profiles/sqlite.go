package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

var ErrNotCached = errors.New("profile not cached")

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, p timeline.Profile, syncedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, email, full_name, birthdate, created_at, synced_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			email = excluded.email,
			full_name = excluded.full_name,
			birthdate = excluded.birthdate,
			created_at = excluded.created_at,
			synced_at = excluded.synced_at
	`, p.ID, p.Email, p.FullName, p.Birthdate.Format(time.DateOnly),
		p.CreatedAt.UTC().Format(time.RFC3339Nano), syncedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to store profile %s: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID string) (timeline.Profile, time.Time, error) {
	var (
		p                       timeline.Profile
		birth, created, syncStr string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, email, full_name, birthdate, created_at, synced_at
		FROM profiles WHERE user_id = ?`, userID).
		Scan(&p.ID, &p.Email, &p.FullName, &birth, &created, &syncStr)
	if errors.Is(err, sql.ErrNoRows) {
		return timeline.Profile{}, time.Time{}, ErrNotCached
	}
	if err != nil {
		return timeline.Profile{}, time.Time{}, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}

	if p.Birthdate, err = time.Parse(time.DateOnly, birth); err != nil {
		return timeline.Profile{}, time.Time{}, fmt.Errorf("profile %s: %w", userID, err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return timeline.Profile{}, time.Time{}, fmt.Errorf("profile %s: %w", userID, err)
	}
	syncedAt, err := time.Parse(time.RFC3339Nano, syncStr)
	if err != nil {
		return timeline.Profile{}, time.Time{}, fmt.Errorf("profile %s: %w", userID, err)
	}
	return p, syncedAt, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}
	return nil
}
