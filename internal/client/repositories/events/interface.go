// Package events keeps the last synced copy of a user's events in the local cache.
package events

import (
	"context"

	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

type Repository interface {
	// ReplaceAll swaps the cached events of userID for the given list.
	ReplaceAll(ctx context.Context, userID string, events []timeline.Event) error
	// ListByUser returns the cached events ordered by date.
	ListByUser(ctx context.Context, userID string) ([]timeline.Event, error)
	// Clear drops every cached event.
	Clear(ctx context.Context) error
}
