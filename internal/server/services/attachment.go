package services

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server/blob"
	"github.com/dmitrijs2005/lifeweeks/internal/server/config"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/repomanager"
)

// Upload is a file bound for an event.
type Upload struct {
	EventID     string
	FileName    string
	MimeType    string
	Description string
	Data        []byte
}

// AttachmentService keeps attachment rows and blobs consistent: a row is
// only written after its blob, and only removed after its blob is gone.
type AttachmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	logger      logging.Logger
	signedTTL   time.Duration
	now         func() time.Time
}

func NewAttachmentService(db *sql.DB, m repomanager.RepositoryManager, blobs blob.Store, cfg *config.Config, logger logging.Logger) *AttachmentService {
	return &AttachmentService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		logger:      logger,
		signedTTL:   cfg.SignedURLTTL,
		now:         time.Now,
	}
}

func (s *AttachmentService) Upload(ctx context.Context, userID string, in Upload) (*models.Attachment, error) {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(in.FileName), `\`, "/"))
	if name == "" || name == "." || name == "/" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrorValidation)
	}
	mimeType := strings.ToLower(strings.TrimSpace(in.MimeType))
	if err := filex.Validate(int64(len(in.Data)), mimeType); err != nil {
		return nil, err
	}
	if _, err := s.repomanager.Events(s.db).Get(ctx, userID, in.EventID); err != nil {
		return nil, err
	}

	key := blob.StorageKey(userID, in.EventID, name, s.now())
	if err := s.blobs.Upload(ctx, key, mimeType, in.Data); err != nil {
		return nil, err
	}

	a, err := s.repomanager.Attachments(s.db).Create(ctx, &models.Attachment{
		EventID:     in.EventID,
		UserID:      userID,
		FileName:    name,
		FileSize:    int64(len(in.Data)),
		FileType:    mimeType,
		StoragePath: key,
		Description: strings.TrimSpace(in.Description),
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Warn(ctx, "orphaned attachment blob", "key", key, "error", delErr)
		}
		return nil, err
	}
	return a, nil
}

// Delete removes the blob, then the row. The row stays when the blob delete fails.
func (s *AttachmentService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Attachments(s.db)
	a, err := repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, a.StoragePath); err != nil {
		return err
	}
	return repo.Delete(ctx, userID, id)
}

// SignedURL returns a download URL and its expiry. ttl <= 0 means the configured default.
func (s *AttachmentService) SignedURL(ctx context.Context, userID, id string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.signedTTL
	}
	a, err := s.repomanager.Attachments(s.db).Get(ctx, userID, id)
	if err != nil {
		return "", time.Time{}, err
	}
	expires := s.now().Add(ttl)
	url, err := s.blobs.SignedURL(ctx, a.StoragePath, ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	return url, expires, nil
}
