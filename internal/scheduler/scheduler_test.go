package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/afiaWhiteprints/esosa/internal/domain"
	"github.com/afiaWhiteprints/esosa/internal/scheduler"
)

type countingResearcher struct {
	calls atomic.Int32
	err   error
}

func (c *countingResearcher) Research(ctx context.Context, req domain.ResearchRequest) (*domain.SessionRecord, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return &domain.SessionRecord{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSchedulerRunsImmediatelyThenOnInterval(t *testing.T) {
	researcher := &countingResearcher{}
	s := scheduler.NewScheduler(researcher, domain.ResearchRequest{}, 20*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, researcher.calls.Load(), int32(3), "one immediate run plus ticker runs")
}

func TestSchedulerKeepsRunningAfterFailure(t *testing.T) {
	researcher := &countingResearcher{err: errors.New("all platforms down")}
	s := scheduler.NewScheduler(researcher, domain.ResearchRequest{}, 15*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)

	assert.GreaterOrEqual(t, researcher.calls.Load(), int32(2), "failures must not stop the loop")
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	researcher := &countingResearcher{}
	s := scheduler.NewScheduler(researcher, domain.ResearchRequest{}, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
	assert.EqualValues(t, 1, researcher.calls.Load())
}
