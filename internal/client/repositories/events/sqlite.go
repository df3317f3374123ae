package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll is not atomic on its own; run it inside dbx.WithTx.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, userID string, events []timeline.Event) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	query := `INSERT INTO events (id, user_id, title, description, event_date, week_number,
			category, color, notify_on_anniversary, created_at, attachments)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, e := range events {
		atts, err := json.Marshal(e.Attachments)
		if err != nil {
			return fmt.Errorf("failed to encode attachments of %s: %w", e.ID, err)
		}
		_, err = r.db.ExecContext(ctx, query,
			e.ID, userID, e.Title, e.Description, e.Date.Format(time.DateOnly), e.WeekNumber,
			e.Category.String(), e.Color, e.NotifyOnAnniversary, e.CreatedAt.UTC().Format(time.RFC3339Nano), atts)
		if err != nil {
			return fmt.Errorf("failed to insert event %s: %w", e.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]timeline.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, event_date, week_number, category, color,
			notify_on_anniversary, created_at, attachments
		FROM events WHERE user_id = ?
		ORDER BY event_date, created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	var result []timeline.Event
	for rows.Next() {
		var (
			e                      timeline.Event
			date, category, create string
			atts                   []byte
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &date, &e.WeekNumber, &category, &e.Color,
			&e.NotifyOnAnniversary, &create, &atts); err != nil {
			return nil, err
		}
		if e.Date, err = time.Parse(time.DateOnly, date); err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339Nano, create); err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
		if e.Category, err = timeline.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("event %s: %w", e.ID, err)
		}
		if len(atts) > 0 {
			if err := json.Unmarshal(atts, &e.Attachments); err != nil {
				return nil, fmt.Errorf("event %s: %w", e.ID, err)
			}
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	return nil
}
