package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/dbx"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/events"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- users ---

type memUsers struct {
	byEmail   map[string]*models.User
	n         int
	createErr error
	getErr    error
}

func (f *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.n++
	u.ID = fmt.Sprintf("u%d", f.n)
	cp := *u
	f.byEmail[u.Email] = &cp
	return u, nil
}

func (f *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

// --- refresh tokens ---

type memTokens struct {
	tokens    map[string]*models.RefreshToken
	createErr error
	deleteErr error
}

func (f *memTokens) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (f *memTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *memTokens) Delete(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *memTokens) DeleteByUser(_ context.Context, userID string) error {
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

func (f *memTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for k, t := range f.tokens {
		if t.Expired(now) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

// --- profiles ---

type memProfiles struct {
	m         map[string]*models.Profile
	createErr error
}

func (f *memProfiles) Create(_ context.Context, p *models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *p
	f.m[p.UserID] = &cp
	return nil
}

func (f *memProfiles) Get(_ context.Context, userID string) (*models.Profile, error) {
	p, ok := f.m[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *memProfiles) Update(_ context.Context, p *models.Profile) error {
	if _, ok := f.m[p.UserID]; !ok {
		return common.ErrorNotFound
	}
	cp := *p
	f.m[p.UserID] = &cp
	return nil
}

// --- events ---

type memEvents struct {
	m         map[string]*models.Event
	n         int
	listErr   error
	updateErr error
}

func (f *memEvents) put(e *models.Event) {
	if e.ID == "" {
		f.n++
		e.ID = fmt.Sprintf("e%d", f.n)
	}
	cp := *e
	cp.Attachments = nil
	f.m[e.ID] = &cp
}

func (f *memEvents) List(_ context.Context, userID string) ([]*models.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Event
	for _, e := range f.m {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *memEvents) Get(_ context.Context, userID, id string) (*models.Event, error) {
	e, ok := f.m[id]
	if !ok || e.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *memEvents) Create(_ context.Context, e *models.Event) (*models.Event, error) {
	e.CreatedAt = time.Now()
	f.put(e)
	return e, nil
}

func (f *memEvents) Update(_ context.Context, e *models.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, err := f.Get(context.Background(), e.UserID, e.ID); err != nil {
		return err
	}
	f.put(e)
	return nil
}

func (f *memEvents) UpdateWeekNumber(_ context.Context, userID, id string, week int) error {
	e, ok := f.m[id]
	if !ok || e.UserID != userID {
		return common.ErrorNotFound
	}
	e.WeekNumber = week
	return nil
}

func (f *memEvents) Delete(_ context.Context, userID, id string) error {
	e, ok := f.m[id]
	if !ok || e.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.m, id)
	return nil
}

func (f *memEvents) ListByAnniversary(_ context.Context, month, d int) ([]*models.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Event
	for _, e := range f.m {
		if e.NotifyOnAnniversary && int(e.Date.Month()) == month && e.Date.Day() == d {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- attachments ---

type memAttachments struct {
	m         map[string]*models.Attachment
	n         int
	createErr error
}

func (f *memAttachments) filter(keep func(*models.Attachment) bool) []*models.Attachment {
	var out []*models.Attachment
	for _, a := range f.m {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.Before(out[j].UploadDate) })
	return out
}

func (f *memAttachments) ListByOwner(_ context.Context, userID string) ([]*models.Attachment, error) {
	return f.filter(func(a *models.Attachment) bool { return a.UserID == userID }), nil
}

func (f *memAttachments) ListByEvent(_ context.Context, userID, eventID string) ([]*models.Attachment, error) {
	return f.filter(func(a *models.Attachment) bool { return a.UserID == userID && a.EventID == eventID }), nil
}

func (f *memAttachments) Get(_ context.Context, userID, id string) (*models.Attachment, error) {
	a, ok := f.m[id]
	if !ok || a.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *memAttachments) Create(_ context.Context, a *models.Attachment) (*models.Attachment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.n++
	a.ID = fmt.Sprintf("a%d", f.n)
	if a.UploadDate.IsZero() {
		a.UploadDate = time.Date(2024, 1, 1, 0, 0, f.n, 0, time.UTC)
	}
	cp := *a
	f.m[a.ID] = &cp
	return a, nil
}

func (f *memAttachments) Delete(_ context.Context, userID, id string) error {
	a, ok := f.m[id]
	if !ok || a.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.m, id)
	return nil
}

// --- blobs ---

type memBlobs struct {
	objects    map[string][]byte
	uploadErr  error
	failDelete map[string]bool
}

func (f *memBlobs) Upload(_ context.Context, key, _ string, data []byte) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[key] = data
	return nil
}

func (f *memBlobs) Delete(_ context.Context, key string) error {
	if f.failDelete[key] {
		return fmt.Errorf("%w: delete %s: denied", common.ErrBlobStore, key)
	}
	delete(f.objects, key)
	return nil
}

func (f *memBlobs) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	return fmt.Sprintf("https://blobs.test/%s?ttl=%d", key, int(ttl.Seconds())), nil
}

// --- manager ---

type fakeRepoManager struct {
	users       *memUsers
	tokens      *memTokens
	profiles    *memProfiles
	events      *memEvents
	attachments *memAttachments
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:       &memUsers{byEmail: map[string]*models.User{}},
		tokens:      &memTokens{tokens: map[string]*models.RefreshToken{}},
		profiles:    &memProfiles{m: map[string]*models.Profile{}},
		events:      &memEvents{m: map[string]*models.Event{}},
		attachments: &memAttachments{m: map[string]*models.Attachment{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.tokens }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository           { return m.profiles }
func (m *fakeRepoManager) Events(dbx.DBTX) events.Repository               { return m.events }
func (m *fakeRepoManager) Attachments(dbx.DBTX) attachments.Repository     { return m.attachments }

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}, failDelete: map[string]bool{}}
}
