// Package attachments provides the PostgreSQL-backed attachment metadata repository.
package attachments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const attachmentColumns = `id, event_id, user_id, file_name, file_size, file_type, storage_path, upload_date, description`

type scanner interface {
	Scan(dest ...any) error
}

func scanAttachment(s scanner) (*models.Attachment, error) {
	var a models.Attachment
	err := s.Scan(&a.ID, &a.EventID, &a.UserID, &a.FileName, &a.FileSize, &a.FileType, &a.StoragePath,
		&a.UploadDate, &a.Description)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Attachment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select attachments: %w", err)
	}
	defer rows.Close()

	var result []*models.Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Attachment, error) {
	query := `SELECT ` + attachmentColumns + `
		FROM event_attachments
		WHERE user_id = $1
		ORDER BY upload_date ASC
	`
	return r.query(ctx, query, userID)
}

func (r *PostgresRepository) ListByEvent(ctx context.Context, userID, eventID string) ([]*models.Attachment, error) {
	query := `SELECT ` + attachmentColumns + `
		FROM event_attachments
		WHERE user_id = $1 AND event_id = $2
		ORDER BY upload_date ASC
	`
	return r.query(ctx, query, userID, eventID)
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Attachment, error) {
	query := `SELECT ` + attachmentColumns + `
		FROM event_attachments
		WHERE id = $1 AND user_id = $2
	`
	a, err := scanAttachment(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Attachment) (*models.Attachment, error) {
	query := `
		INSERT INTO event_attachments (event_id, user_id, file_name, file_size, file_type, storage_path, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, upload_date
	`
	err := r.db.QueryRowContext(ctx, query,
		a.EventID, a.UserID, a.FileName, a.FileSize, a.FileType, a.StoragePath, a.Description,
	).Scan(&a.ID, &a.UploadDate)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM event_attachments
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
