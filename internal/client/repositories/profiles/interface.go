// Package profiles stores the cached profile of each signed-in user along
// with the time it was fetched.
package profiles

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

type Repository interface {
	Upsert(ctx context.Context, p timeline.Profile, syncedAt time.Time) error
	// Get returns ErrNotCached when the user has no row.
	Get(ctx context.Context, userID string) (timeline.Profile, time.Time, error)
	Clear(ctx context.Context) error
}
