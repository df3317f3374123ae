// Package scheduler runs the server's periodic jobs on robfig/cron: the
// daily anniversary reminders and the refresh-token purge.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/robfig/cron/v3"
)

const purgeSpec = "@hourly"

type AnniversaryRunner interface {
	Run(ctx context.Context, today time.Time) (int, error)
}

type TokenPurger interface {
	PurgeExpiredTokens(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron          *cron.Cron
	logger        logging.Logger
	anniversaries AnniversaryRunner
	tokens        TokenPurger
	now           func() time.Time
	ctx           context.Context
}

// New registers the jobs. anniversarySpec is a standard five-field cron
// expression or a descriptor such as "@daily".
func New(anniversarySpec string, l logging.Logger, a AnniversaryRunner, t TokenPurger) (*Scheduler, error) {
	s := &Scheduler{
		cron:          cron.New(),
		logger:        l.With("module", "scheduler"),
		anniversaries: a,
		tokens:        t,
		now:           time.Now,
		ctx:           context.Background(),
	}
	if _, err := s.cron.AddFunc(anniversarySpec, func() { s.runAnniversaries(s.ctx) }); err != nil {
		return nil, fmt.Errorf("anniversary schedule %q: %w", anniversarySpec, err)
	}
	if _, err := s.cron.AddFunc(purgeSpec, func() { s.purgeTokens(s.ctx) }); err != nil {
		return nil, fmt.Errorf("purge schedule: %w", err)
	}
	return s, nil
}

// Run starts the cron loop and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.ctx = ctx
	s.cron.Start()
	s.logger.Info(ctx, "Scheduler started", "jobs", len(s.cron.Entries()))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info(ctx, "Scheduler stopped")
	return nil
}

func (s *Scheduler) runAnniversaries(ctx context.Context) {
	sent, err := s.anniversaries.Run(ctx, s.now())
	if err != nil {
		s.logger.Error(ctx, "anniversary job", "sent", sent, "error", err)
		return
	}
	s.logger.Info(ctx, "anniversary job", "sent", sent)
}

func (s *Scheduler) purgeTokens(ctx context.Context) {
	n, err := s.tokens.PurgeExpiredTokens(ctx)
	if err != nil {
		s.logger.Error(ctx, "token purge", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info(ctx, "token purge", "deleted", n)
	}
}
