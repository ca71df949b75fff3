package command

import (
	"context"
	"fmt"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// SetJobStatus performs a job lifecycle transition. Transitions are free among
// the valid statuses; validity of the target status is the only precondition.
type SetJobStatus struct {
	Jobs datasources.JobStatusUpdater
}

func (c *SetJobStatus) Execute(ctx context.Context, jobID string, status domain.JobStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown job status [%s]: %w", status, domain.ErrInvalidTransition)
	}

	if err := c.Jobs.UpdateJobStatus(ctx, jobID, status); err != nil {
		return fmt.Errorf("updating job status: %w", err)
	}

	return nil
}
