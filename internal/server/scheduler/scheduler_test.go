package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnniversaries struct {
	mu   sync.Mutex
	days []time.Time
	err  error
}

func (f *fakeAnniversaries) Run(_ context.Context, today time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days = append(f.days, today)
	return len(f.days), f.err
}

type fakePurger struct {
	calls int
	err   error
}

func (f *fakePurger) PurgeExpiredTokens(context.Context) (int64, error) {
	f.calls++
	return 3, f.err
}

func TestNew_RejectsBadSpec(t *testing.T) {
	_, err := New("every morning", logging.Nop{}, &fakeAnniversaries{}, &fakePurger{})
	assert.Error(t, err)
}

func TestNew_RegistersJobs(t *testing.T) {
	s, err := New("0 9 * * *", logging.Nop{}, &fakeAnniversaries{}, &fakePurger{})
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestJobs(t *testing.T) {
	fa := &fakeAnniversaries{}
	fp := &fakePurger{}
	s, err := New("@daily", logging.Nop{}, fa, fp)
	require.NoError(t, err)

	today := time.Date(2024, time.June, 6, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return today }

	s.runAnniversaries(context.Background())
	require.Len(t, fa.days, 1)
	assert.Equal(t, today, fa.days[0])

	fa.err = errors.New("notifier down")
	assert.NotPanics(t, func() { s.runAnniversaries(context.Background()) })

	s.purgeTokens(context.Background())
	fp.err = errors.New("db down")
	s.purgeTokens(context.Background())
	assert.Equal(t, 2, fp.calls)
}

func TestRun_StopsOnCancel(t *testing.T) {
	s, err := New("@daily", logging.Nop{}, &fakeAnniversaries{}, &fakePurger{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
