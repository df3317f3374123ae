package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// Anniversary is an event whose date recurs today.
type Anniversary struct {
	Event *models.Event
	Years int
}

// Notifier delivers one anniversary reminder.
type Notifier interface {
	Notify(ctx context.Context, a Anniversary) error
}

// LogNotifier writes reminders to the structured log.
type LogNotifier struct {
	Logger logging.Logger
}

func (n LogNotifier) Notify(ctx context.Context, a Anniversary) error {
	n.Logger.Info(ctx, "anniversary",
		"user_id", a.Event.UserID,
		"event_id", a.Event.ID,
		"title", a.Event.Title,
		"years", a.Years,
	)
	return nil
}

type AnniversaryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	notifier    Notifier
}

func NewAnniversaryService(db *sql.DB, m repomanager.RepositoryManager, n Notifier) *AnniversaryService {
	return &AnniversaryService{db: db, repomanager: m, notifier: n}
}

// Due lists the flagged events whose anniversary is today. Events dated
// Feb 29 are due on Feb 28 in common years. Events dated today or later
// have no anniversary yet.
func (s *AnniversaryService) Due(ctx context.Context, today time.Time) ([]Anniversary, error) {
	today = timeline.Date(today)
	repo := s.repomanager.Events(s.db)

	events, err := repo.ListByAnniversary(ctx, int(today.Month()), today.Day())
	if err != nil {
		return nil, err
	}
	if today.Month() == time.February && today.Day() == 28 && !isLeap(today.Year()) {
		leapDay, err := repo.ListByAnniversary(ctx, int(time.February), 29)
		if err != nil {
			return nil, err
		}
		events = append(events, leapDay...)
	}

	var out []Anniversary
	for _, e := range events {
		years := today.Year() - e.Date.Year()
		if years <= 0 {
			continue
		}
		out = append(out, Anniversary{Event: e, Years: years})
	}
	return out, nil
}

// Run notifies every anniversary due today and returns how many were delivered.
func (s *AnniversaryService) Run(ctx context.Context, today time.Time) (int, error) {
	due, err := s.Due(ctx, today)
	if err != nil {
		return 0, err
	}
	sent := 0
	var errs []error
	for _, a := range due {
		if err := s.notifier.Notify(ctx, a); err != nil {
			errs = append(errs, fmt.Errorf("event %s: %w", a.Event.ID, err))
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}

func isLeap(year int) bool {
	return time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC).Month() == time.February
}
