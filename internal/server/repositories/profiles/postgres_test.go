package profiles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
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

var birth = time.Date(1990, time.March, 4, 0, 0, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	p := &models.Profile{UserID: "u1", FullName: "Ada", Email: "ada@example.com", Birthdate: birth}

	mock.ExpectQuery(`INSERT INTO user_profiles`).
		WithArgs("u1", "Ada", "ada@example.com", birth).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	require.NoError(t, repo.Create(context.Background(), p))
	assert.True(t, p.CreatedAt.Equal(now))

	mock.ExpectQuery(`INSERT INTO user_profiles`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Create(context.Background(), p), common.ErrorAlreadyExists)

	mock.ExpectQuery(`INSERT INTO user_profiles`).WillReturnError(errors.New("boom"))
	assert.ErrorContains(t, repo.Create(context.Background(), p), "db error: boom")
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`(?s)SELECT .* FROM user_profiles\s+WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name", "email", "birthdate", "created_at", "updated_at"}).
			AddRow("u1", "Ada", "ada@example.com", birth, now, now))

	got, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &models.Profile{
		UserID: "u1", FullName: "Ada", Email: "ada@example.com", Birthdate: birth, CreatedAt: now, UpdatedAt: now,
	}, got)

	mock.ExpectQuery(`FROM user_profiles`).WithArgs("u2").WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "u2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	p := &models.Profile{UserID: "u1", FullName: "Ada L", Email: "ada@example.com", Birthdate: birth}

	mock.ExpectQuery(`UPDATE user_profiles`).
		WithArgs("u1", "Ada L", "ada@example.com", birth).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	require.NoError(t, repo.Update(context.Background(), p))
	assert.True(t, p.UpdatedAt.Equal(now))

	mock.ExpectQuery(`UPDATE user_profiles`).WillReturnError(sql.ErrNoRows)
	assert.ErrorIs(t, repo.Update(context.Background(), p), common.ErrorNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
