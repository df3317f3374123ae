package attachments

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var columns = []string{"id", "event_id", "user_id", "file_name", "file_size", "file_type", "storage_path", "upload_date", "description"}

func TestListByOwnerAndEvent(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	t1 := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	mock.ExpectQuery(`(?s)FROM event_attachments\s+WHERE user_id = \$1\s+ORDER BY upload_date ASC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a1", "e1", "u1", "photo.jpg", int64(2048), "image/jpeg", "u1/e1/1-x.jpg", t1, "").
			AddRow("a2", "e2", "u1", "cv.pdf", int64(4096), "application/pdf", "u1/e2/2-y.pdf", t2, "resume"))

	got, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(4096), got[1].FileSize)
	assert.Equal(t, "resume", got[1].Description)

	mock.ExpectQuery(`WHERE user_id = \$1 AND event_id = \$2`).
		WithArgs("u1", "e1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a1", "e1", "u1", "photo.jpg", int64(2048), "image/jpeg", "u1/e1/1-x.jpg", t1, ""))
	got, err = repo.ListByEvent(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	mock.ExpectQuery(`FROM event_attachments`).WillReturnError(errors.New("boom"))
	_, err = repo.ListByOwner(context.Background(), "u1")
	assert.ErrorContains(t, err, "failed to select attachments: boom")
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE id = \$1 AND user_id = \$2`).
		WithArgs("a1", "u1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a1", "e1", "u1", "photo.jpg", int64(2048), "image/jpeg", "u1/e1/1-x.jpg", time.Now(), ""))
	got, err := repo.Get(context.Background(), "u1", "a1")
	require.NoError(t, err)
	assert.Equal(t, "u1/e1/1-x.jpg", got.StoragePath)

	mock.ExpectQuery(`FROM event_attachments`).WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "u1", "zz")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	a := &models.Attachment{
		EventID: "e1", UserID: "u1", FileName: "photo.jpg", FileSize: 2048,
		FileType: "image/jpeg", StoragePath: "u1/e1/1-x.jpg",
	}

	mock.ExpectQuery(`INSERT INTO event_attachments`).
		WithArgs("e1", "u1", "photo.jpg", int64(2048), "image/jpeg", "u1/e1/1-x.jpg", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "upload_date"}).AddRow("a1", now))
	got, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	mock.ExpectQuery(`INSERT INTO event_attachments`).WillReturnError(errors.New("fk violation"))
	_, err = repo.Create(context.Background(), a)
	assert.ErrorContains(t, err, "db error: fk violation")
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM event_attachments`).WithArgs("a1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), "u1", "a1"))

	mock.ExpectExec(`DELETE FROM event_attachments`).WithArgs("a1", "u1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "u1", "a1"), common.ErrorNotFound)

	mock.ExpectExec(`DELETE FROM event_attachments`).WillReturnError(errors.New("boom"))
	assert.ErrorContains(t, repo.Delete(context.Background(), "u1", "a1"), "db error")

	assert.NoError(t, mock.ExpectationsWereMet())
}
