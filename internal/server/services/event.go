package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server/blob"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"github.com/lucasb-eyer/go-colorful"
)

const maxTitleLength = 200

// EventInput is a new event as submitted by the user. An empty Color means
// the category's default colour.
type EventInput struct {
	Title               string
	Description         string
	Date                time.Time
	Category            timeline.Category
	Color               string
	NotifyOnAnniversary bool
}

// EventService owns the event lifecycle including the attachment cascade on delete.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blob.Store
	logger      logging.Logger
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager, blobs blob.Store, logger logging.Logger) *EventService {
	return &EventService{db: db, repomanager: m, blobs: blobs, logger: logger}
}

// List returns the user's events by date with their attachments attached.
func (s *EventService) List(ctx context.Context, userID string) ([]*models.Event, error) {
	events, err := s.repomanager.Events(s.db).List(ctx, userID)
	if err != nil {
		return nil, err
	}
	atts, err := s.repomanager.Attachments(s.db).ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	byEvent := make(map[string][]*models.Attachment, len(events))
	for _, a := range atts {
		byEvent[a.EventID] = append(byEvent[a.EventID], a)
	}
	for _, e := range events {
		e.Attachments = byEvent[e.ID]
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, userID, id string) (*models.Event, error) {
	e, err := s.repomanager.Events(s.db).Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	e.Attachments, err = s.repomanager.Attachments(s.db).ListByEvent(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create stores a new event; its week number is derived from the owner's birthdate.
func (s *EventService) Create(ctx context.Context, userID string, in EventInput) (*models.Event, error) {
	profile, err := getProfile(ctx, s.repomanager, s.db, userID)
	if err != nil {
		return nil, err
	}

	e := &models.Event{
		UserID:              userID,
		Title:               strings.TrimSpace(in.Title),
		Description:         strings.TrimSpace(in.Description),
		Date:                timeline.Date(in.Date),
		Category:            in.Category,
		Color:               in.Color,
		NotifyOnAnniversary: in.NotifyOnAnniversary,
	}
	if e.Color == "" {
		e.Color = e.Category.Color()
	}
	if err := validateEvent(e, profile.Birthdate); err != nil {
		return nil, err
	}
	e.WeekNumber = timeline.WeeksBetween(profile.Birthdate, e.Date)

	return s.repomanager.Events(s.db).Create(ctx, e)
}

// Update applies a partial patch. The week number is recomputed when the date moves.
func (s *EventService) Update(ctx context.Context, userID, id string, patch models.EventPatch) (*models.Event, error) {
	var out *models.Event
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Events(tx)
		e, err := repo.Get(ctx, userID, id)
		if err != nil {
			return err
		}
		profile, err := getProfile(ctx, s.repomanager, tx, userID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			t := strings.TrimSpace(*patch.Title)
			patch.Title = &t
		}
		patch.Apply(e)
		e.WeekNumber = timeline.WeeksBetween(profile.Birthdate, e.Date)
		if err := validateEvent(e, profile.Birthdate); err != nil {
			return err
		}
		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the event after every attachment is gone. Each attachment's
// blob is deleted before its row; a failed blob delete keeps that row and
// the event, while siblings already removed stay removed.
func (s *EventService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repomanager.Events(s.db).Get(ctx, userID, id); err != nil {
		return err
	}

	attRepo := s.repomanager.Attachments(s.db)
	atts, err := attRepo.ListByEvent(ctx, userID, id)
	if err != nil {
		return err
	}

	var errs []error
	for _, a := range atts {
		if err := s.blobs.Delete(ctx, a.StoragePath); err != nil {
			s.logger.Warn(ctx, "attachment blob delete failed", "attachment_id", a.ID, "error", err)
			errs = append(errs, fmt.Errorf("attachment %s: %w", a.ID, err))
			continue
		}
		if err := attRepo.Delete(ctx, userID, a.ID); err != nil && !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "attachment row delete failed", "attachment_id", a.ID, "error", err)
			errs = append(errs, fmt.Errorf("attachment %s: %w", a.ID, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("event %s kept: %w", id, errors.Join(errs...))
	}

	return s.repomanager.Events(s.db).Delete(ctx, userID, id)
}

func validateEvent(e *models.Event, birthdate time.Time) error {
	switch {
	case e.Title == "":
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	case len(e.Title) > maxTitleLength:
		return fmt.Errorf("%w: title longer than %d characters", common.ErrorValidation, maxTitleLength)
	case !e.Category.Valid():
		return fmt.Errorf("%w: %w", common.ErrorValidation, timeline.ErrUnknownCategory)
	case e.Date.IsZero():
		return fmt.Errorf("%w: date is required", common.ErrorValidation)
	case e.Date.Before(timeline.Date(birthdate)):
		return fmt.Errorf("%w: event date is before birthdate", common.ErrorValidation)
	}
	c, err := colorful.Hex(e.Color)
	if err != nil {
		return fmt.Errorf("%w: invalid colour %q", common.ErrorValidation, e.Color)
	}
	e.Color = strings.ToUpper(c.Hex())
	return nil
}
