package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_InvalidCron(t *testing.T) {
	_, err := New(Config{Cron: "not a crontab"}, func(context.Context) error { return nil }, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reload job")
}

func TestNew_DisabledRegistersNothing(t *testing.T) {
	cfg := Config{}
	assert.False(t, cfg.Enabled())

	s, err := New(cfg, func(context.Context) error { return nil }, quietLogger())
	require.NoError(t, err)
	assert.Empty(t, s.s.Jobs())
	require.NoError(t, s.s.Shutdown())
}

func TestNew_CronRegistersReloadJob(t *testing.T) {
	cfg := Config{Cron: "0 6 * * *", Location: time.UTC}
	assert.True(t, cfg.Enabled())

	s, err := New(cfg, func(context.Context) error { return nil }, quietLogger())
	require.NoError(t, err)
	jobs := s.s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "reload", jobs[0].Name())
	require.NoError(t, s.s.Shutdown())
}

func TestRun_ReloadsOnInterval(t *testing.T) {
	var calls atomic.Int32
	reload := func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			return errors.New("transient")
		}
		return ctx.Err()
	}

	s, err := New(Config{Interval: 10 * time.Millisecond}, reload, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// A failed reload does not stop later runs.
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
