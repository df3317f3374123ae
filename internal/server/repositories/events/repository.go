// Package events declares the repository contract for user timeline events.
package events

import (
	"context"

	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
)

// Repository persists events. Every call except ListByAnniversary is scoped
// to the owning user; a row of another user is reported as not found.
type Repository interface {
	// List returns the owner's events ordered by date, then creation time.
	List(ctx context.Context, userID string) ([]*models.Event, error)
	Get(ctx context.Context, userID, id string) (*models.Event, error)
	// Create inserts e and fills in ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, e *models.Event) (*models.Event, error)
	// Update writes every mutable column of e.
	Update(ctx context.Context, e *models.Event) error
	UpdateWeekNumber(ctx context.Context, userID, id string, week int) error
	Delete(ctx context.Context, userID, id string) error
	// ListByAnniversary returns events of all users flagged for anniversary
	// reminders whose date falls on the given month and day.
	ListByAnniversary(ctx context.Context, month, day int) ([]*models.Event, error)
}
