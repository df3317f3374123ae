// Package server wires the lifeweeks server: Postgres record store, S3 blob
// store, services, the gRPC API, the HTTP gateway and the scheduler.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server/blob"
	"github.com/dmitrijs2005/lifeweeks/internal/server/config"
	"github.com/dmitrijs2005/lifeweeks/internal/server/httpapi"
	"github.com/dmitrijs2005/lifeweeks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lifeweeks/internal/server/scheduler"
	"github.com/dmitrijs2005/lifeweeks/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/lifeweeks/internal/server/grpc"
)

type App struct {
	config             *config.Config
	logger             logging.Logger
	db                 *sql.DB
	userService        *services.UserService
	profileService     *services.ProfileService
	eventService       *services.EventService
	attachmentService  *services.AttachmentService
	anniversaryService *services.AnniversaryService
}

// NewApp opens the database, applies migrations, prepares the bucket and
// builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	store, err := blob.NewS3Store(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		config:             c,
		logger:             logger,
		db:                 db,
		userService:        services.NewUserService(db, rm, c),
		profileService:     services.NewProfileService(db, rm),
		eventService:       services.NewEventService(db, rm, store, logger.With("module", "events")),
		attachmentService:  services.NewAttachmentService(db, rm, store, c, logger.With("module", "attachments")),
		anniversaryService: services.NewAnniversaryService(db, rm, services.LogNotifier{Logger: logger.With("module", "anniversaries")}),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runComponent runs fn and cancels the whole app when it fails.
func (app *App) runComponent(ctx context.Context, cancelFunc context.CancelFunc, name string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		app.logger.Error(ctx, "component failed", "component", name, "error", err)
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, gs.Services{
		Users:       app.userService,
		Profiles:    app.profileService,
		Events:      app.eventService,
		Attachments: app.attachmentService,
	}, app.config.SecretKey)

	httpServer := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.attachmentService, app.config.SecretKey)

	sched, err := scheduler.New(app.config.AnniversarySchedule, app.logger, app.anniversaryService, app.userService)
	if err != nil {
		return err
	}

	components := map[string]func(context.Context) error{
		"grpc":      grpcServer.Run,
		"http":      httpServer.Run,
		"scheduler": sched.Run,
	}

	var wg sync.WaitGroup
	for name, fn := range components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.runComponent(ctx, cancelFunc, name, fn)
		}()
	}
	wg.Wait()

	app.logger.Info(ctx, "App stopped")
	return nil
}
