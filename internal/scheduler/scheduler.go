// Package scheduler runs the periodic embedding refresh that backfills
// vectors for records written while the embedding providers were down.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/domain"
)

// Scheduler wraps robfig/cron around the embedding refresh command.
type Scheduler struct {
	RefreshCmd command.Command[command.RefreshEmbeddingsRequest, command.Empty]

	// Spec is a cron spec, e.g. "@every 15m".
	Spec string

	// RunOnStart triggers one refresh immediately so records written during
	// downtime don't wait for the first tick.
	RunOnStart bool
}

// Run blocks until ctx is cancelled, firing the refresh on every tick.
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New()

	if _, err := c.AddFunc(s.Spec, func() {
		s.refresh(ctx)
	}); err != nil {
		return fmt.Errorf("registering embedding refresh job: %w", err)
	}

	c.Start()

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "embedding refresh scheduler started", "spec", s.Spec)

	var startupRun sync.WaitGroup
	if s.RunOnStart {
		startupRun.Add(1)
		go func() {
			defer startupRun.Done()
			s.refresh(ctx)
		}()
	}

	<-ctx.Done()

	// Wait for any in-flight run to finish before reporting shutdown. The
	// startup refresh is not a cron entry, so it needs its own tracking.
	<-c.Stop().Done()
	startupRun.Wait()
	return nil
}

func (s *Scheduler) refresh(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	if _, err := s.RefreshCmd.Execute(ctx, command.RefreshEmbeddingsRequest{}); err != nil {
		logger.ErrorContext(ctx, "embedding refresh run failed", "error", err)
	}
}
