// Package attachments declares the repository contract for attachment metadata rows.
package attachments

import (
	"context"

	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
)

// Repository persists attachment metadata. Blob bytes live in object storage
// and are never touched here.
type Repository interface {
	// ListByOwner returns every attachment of userID ordered by upload date.
	ListByOwner(ctx context.Context, userID string) ([]*models.Attachment, error)
	ListByEvent(ctx context.Context, userID, eventID string) ([]*models.Attachment, error)
	Get(ctx context.Context, userID, id string) (*models.Attachment, error)
	// Create inserts a and fills in ID and UploadDate.
	Create(ctx context.Context, a *models.Attachment) (*models.Attachment, error)
	Delete(ctx context.Context, userID, id string) error
}
