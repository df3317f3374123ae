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
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// ProfileUpdate is a partial profile change; nil fields are kept.
type ProfileUpdate struct {
	FullName  *string
	Email     *string
	Birthdate *time.Time
}

// ProfileService reads and edits the profile that anchors week arithmetic.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m, now: time.Now}
}

// Get returns common.ErrorNoProfile when the user has none.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return getProfile(ctx, s.repomanager, s.db, userID)
}

// Update applies u. A birthdate change rewrites the week number of every
// event of the user inside the same transaction, and is refused when it
// would place an existing event before birth.
func (s *ProfileService) Update(ctx context.Context, userID string, u ProfileUpdate) (*models.Profile, error) {
	var out *models.Profile
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := getProfile(ctx, s.repomanager, tx, userID)
		if err != nil {
			return err
		}

		if u.FullName != nil {
			name := strings.TrimSpace(*u.FullName)
			if name == "" {
				return fmt.Errorf("%w: full name is required", common.ErrorValidation)
			}
			p.FullName = name
		}
		if u.Email != nil {
			email, err := normalizeEmail(*u.Email)
			if err != nil {
				return err
			}
			p.Email = email
		}

		birthChanged := false
		if u.Birthdate != nil {
			b, err := validateBirthdate(*u.Birthdate, s.now())
			if err != nil {
				return err
			}
			birthChanged = !b.Equal(timeline.Date(p.Birthdate))
			p.Birthdate = b
		}

		if err := s.repomanager.Profiles(tx).Update(ctx, p); err != nil {
			return err
		}
		if birthChanged {
			if err := s.reindexWeeks(ctx, tx, userID, p.Birthdate); err != nil {
				return err
			}
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProfileService) reindexWeeks(ctx context.Context, tx dbx.DBTX, userID string, birthdate time.Time) error {
	repo := s.repomanager.Events(tx)
	events, err := repo.List(ctx, userID)
	if err != nil {
		return err
	}
	for _, e := range events {
		if timeline.Date(e.Date).Before(birthdate) {
			return fmt.Errorf("%w: event %q on %s predates the new birthdate",
				common.ErrorValidation, e.Title, e.Date.Format(time.DateOnly))
		}
		week := timeline.WeeksBetween(birthdate, e.Date)
		if week == e.WeekNumber {
			continue
		}
		if err := repo.UpdateWeekNumber(ctx, userID, e.ID, week); err != nil {
			return err
		}
	}
	return nil
}

func getProfile(ctx context.Context, rm repomanager.RepositoryManager, db dbx.DBTX, userID string) (*models.Profile, error) {
	p, err := rm.Profiles(db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNoProfile
		}
		return nil, err
	}
	return p, nil
}
