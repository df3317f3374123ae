// Package profiles declares the repository contract for user profiles.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
)

// Repository persists the single profile each user owns.
type Repository interface {
	Create(ctx context.Context, p *models.Profile) error
	// Get returns common.ErrorNotFound when userID has no profile.
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Update overwrites name, email and birthdate; common.ErrorNotFound when absent.
	Update(ctx context.Context, p *models.Profile) error
}
