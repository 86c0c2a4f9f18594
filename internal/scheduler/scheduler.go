// Package scheduler drives watch mode: the same research request rerun
// on a fixed interval until the context is cancelled.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/afiaWhiteprints/esosa/internal/domain"
)

// Each run gets its own deadline so a stuck platform call cannot stall
// the ticker forever.
const runTimeout = 10 * time.Minute

// Researcher runs one research session.
type Researcher interface {
	Research(ctx context.Context, req domain.ResearchRequest) (*domain.SessionRecord, error)
}

type Scheduler struct {
	researcher Researcher
	request    domain.ResearchRequest
	interval   time.Duration
	logger     *slog.Logger
}

func NewScheduler(researcher Researcher, request domain.ResearchRequest, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		researcher: researcher,
		request:    request,
		interval:   interval,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs one session immediately, then one per interval, until ctx
// is cancelled. A failed run is logged and the loop continues.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("watch mode started", "interval", s.interval)

	s.runResearch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("watch mode stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runResearch(ctx)
		}
	}
}

func (s *Scheduler) runResearch(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	record, err := s.researcher.Research(runCtx, s.request)
	if err != nil {
		s.logger.Error("scheduled research failed", "error", err)
		return
	}
	s.logger.Info("scheduled research completed",
		"topics", len(record.RankedTopics),
		"platforms_succeeded", len(record.PlatformsSucceeded),
	)
}
