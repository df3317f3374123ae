package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/api"
	"github.com/dmitrijs2005/lifeweeks/internal/catalog"
	"github.com/dmitrijs2005/lifeweeks/internal/client/cache"
	"github.com/dmitrijs2005/lifeweeks/internal/client/client"
	"github.com/dmitrijs2005/lifeweeks/internal/client/config"
	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/dmitrijs2005/lifeweeks/internal/client/session"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
)

// Remote is the server surface the commands use. *client.Client implements it.
type Remote interface {
	Register(ctx context.Context, email string, password []byte, fullName string, birthdate time.Time) error
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (timeline.Profile, error)
	UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (timeline.Profile, error)
	Events(ctx context.Context) ([]timeline.Event, error)
	CreateEvent(ctx context.Context, d catalog.EventDraft) (timeline.Event, error)
	UpdateEvent(ctx context.Context, req *api.UpdateEventRequest) (timeline.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	UploadAttachment(ctx context.Context, eventID, path, description string) (timeline.Attachment, error)
	DeleteAttachment(ctx context.Context, id string) error
	AttachmentURL(ctx context.Context, id string, ttl time.Duration) (string, time.Time, error)
	DownloadAttachment(ctx context.Context, id string, w io.Writer) (int64, error)
	CurrentUserID() (string, bool)
	Close() error
}

// Snapshots is the offline copy of the timeline. *cache.Cache implements it.
type Snapshots interface {
	Save(ctx context.Context, s cache.Snapshot) error
	Load(ctx context.Context, userID string) (cache.Snapshot, error)
	Clear(ctx context.Context) error
	Close() error
}

// errReported marks an error already printed as a status line.
var errReported = errors.New("reported")

type App struct {
	remote    Remote
	connect   func(cfg *config.Config) (Remote, error)
	cache     Snapshots
	openCache func(ctx context.Context, path string) (Snapshots, error)
	catalog   *catalog.Catalog
	reader    *bufio.Reader
	out       io.Writer
	errOut    io.Writer
	now       func() time.Time
}

func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		connect:   dial,
		openCache: openCache,
		catalog:   catalog.Default(),
		reader:    bufio.NewReader(in),
		out:       out,
		errOut:    errOut,
		now:       time.Now,
	}
}

func dial(cfg *config.Config) (Remote, error) {
	return client.New(cfg.ServerEndpointAddr, session.NewStore(cfg.SessionFile), cfg.RequestTimeout)
}

func openCache(ctx context.Context, path string) (Snapshots, error) {
	return cache.Open(ctx, path)
}

func (a *App) open(ctx context.Context, cfg *config.Config) error {
	if a.remote == nil {
		r, err := a.connect(cfg)
		if err != nil {
			return fmt.Errorf("connect to %s: %w", cfg.ServerEndpointAddr, err)
		}
		a.remote = r
	}

	// The cache is optional; the CLI works without it.
	if a.cache == nil && cfg.CacheFile != "" {
		c, err := a.openCache(ctx, cfg.CacheFile)
		if err != nil {
			render.Warning(a.errOut, "offline cache disabled: %v", err)
			return nil
		}
		a.cache = c
	}
	return nil
}

func (a *App) close() {
	if a.remote != nil {
		_ = a.remote.Close()
	}
	if a.cache != nil {
		_ = a.cache.Close()
	}
}

// fail prints the status line for a failed action.
func (a *App) fail(action string, err error) error {
	render.Failed(a.errOut, action, hint(err))
	return errReported
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// hint replaces errors that need a next step with one.
func hint(err error) error {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return fmt.Errorf("%w, run 'lifeweeks login' first", err)
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Errorf("%w, is the server running?", err)
	}
	return err
}

// snapshot loads the profile and every event, the input of most views.
// A fresh copy goes to the cache; when the server is unreachable the cached
// copy is served instead.
func (a *App) snapshot(ctx context.Context) (timeline.Profile, []timeline.Event, error) {
	p, events, err := a.fetch(ctx)
	if errors.Is(err, client.ErrUnavailable) {
		if s, ok := a.cached(ctx); ok {
			render.Warning(a.errOut, "server unavailable, showing timeline cached at %s",
				s.SyncedAt.Local().Format(time.DateTime))
			return s.Profile, s.Events, nil
		}
	}
	if err != nil {
		return timeline.Profile{}, nil, err
	}

	if a.cache != nil {
		s := cache.Snapshot{Profile: p, Events: events, SyncedAt: a.now()}
		if err := a.cache.Save(ctx, s); err != nil {
			render.Warning(a.errOut, "offline cache not updated: %v", err)
		}
	}
	return p, events, nil
}

func (a *App) fetch(ctx context.Context) (timeline.Profile, []timeline.Event, error) {
	p, err := a.remote.Profile(ctx)
	if err != nil {
		return timeline.Profile{}, nil, err
	}
	events, err := a.remote.Events(ctx)
	if err != nil {
		return timeline.Profile{}, nil, err
	}
	return p, events, nil
}

func (a *App) cached(ctx context.Context) (cache.Snapshot, bool) {
	if a.cache == nil {
		return cache.Snapshot{}, false
	}
	userID, ok := a.remote.CurrentUserID()
	if !ok {
		return cache.Snapshot{}, false
	}
	s, err := a.cache.Load(ctx, userID)
	if err != nil {
		if !errors.Is(err, cache.ErrNoSnapshot) {
			render.Warning(a.errOut, "offline cache unreadable: %v", err)
		}
		return cache.Snapshot{}, false
	}
	return s, true
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func (a *App) promptDate(text string) (time.Time, error) {
	s, err := a.prompt(text + " (YYYY-MM-DD)")
	if err != nil {
		return time.Time{}, err
	}
	return parseDate(s)
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}
