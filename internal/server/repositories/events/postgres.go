// Package events provides the PostgreSQL-backed event repository.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `id, user_id, title, description, date, week_number, category, color,
		notify_on_anniversary, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*models.Event, error) {
	var (
		e   models.Event
		cat string
	)
	if err := s.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.Date, &e.WeekNumber, &cat, &e.Color,
		&e.NotifyOnAnniversary, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	c, err := timeline.ParseCategory(cat)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", e.ID, err)
	}
	e.Category = c
	return &e, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE user_id = $1
		ORDER BY date ASC, created_at ASC
	`
	return r.query(ctx, query, userID)
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1 AND user_id = $2
	`
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (user_id, title, description, date, week_number, category, color, notify_on_anniversary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		e.UserID, e.Title, e.Description, e.Date, e.WeekNumber, e.Category.String(), e.Color, e.NotifyOnAnniversary,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Event) error {
	query := `
		UPDATE events
		SET title = $3, description = $4, date = $5, week_number = $6, category = $7, color = $8,
			notify_on_anniversary = $9, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.UserID, e.Title, e.Description, e.Date, e.WeekNumber, e.Category.String(), e.Color, e.NotifyOnAnniversary,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateWeekNumber(ctx context.Context, userID, id string, week int) error {
	query := `
		UPDATE events
		SET week_number = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID, week)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM events
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) ListByAnniversary(ctx context.Context, month, day int) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events
		WHERE notify_on_anniversary
		  AND EXTRACT(MONTH FROM date) = $1
		  AND EXTRACT(DAY FROM date) = $2
		ORDER BY user_id, date
	`
	return r.query(ctx, query, month, day)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
