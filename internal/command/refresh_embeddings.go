package command

import (
	"context"
	"fmt"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// RefreshEmbeddingsRequest is the request for the RefreshEmbeddings command.
// This command takes no parameters beyond context.
type RefreshEmbeddingsRequest struct{}

// RefreshEmbeddingsConfig holds configuration for background embedding refresh.
type RefreshEmbeddingsConfig struct {
	// BatchLimit bounds how many records of each kind are embedded per run.
	BatchLimit int
}

// RefreshEmbeddings backfills vectors for candidates and jobs that have none
// yet, typically because every embedding provider was down when the record
// was written. Driven periodically by the scheduler.
type RefreshEmbeddings struct {
	Missing           datasources.MissingVectorLister
	EmbedCandidateCmd *EmbedCandidate
	EmbedJobCmd       *EmbedJob
	Config            RefreshEmbeddingsConfig
}

// Execute embeds every record missing a vector, continuing past per-record
// failures so one bad record cannot starve the rest of the batch.
func (c *RefreshEmbeddings) Execute(ctx context.Context, _ RefreshEmbeddingsRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	candidateIDs, err := c.Missing.ListCandidateIDsMissingVectors(ctx, c.Config.BatchLimit)
	if err != nil {
		return Empty{}, fmt.Errorf("listing candidates missing vectors: %w", err)
	}
	for _, id := range candidateIDs {
		if err := c.EmbedCandidateCmd.Execute(ctx, id); err != nil {
			logger.WarnContext(ctx, "failed to refresh candidate embedding",
				"candidate_id", id,
				"error", err,
			)
		}
	}

	jobIDs, err := c.Missing.ListJobIDsMissingVectors(ctx, c.Config.BatchLimit)
	if err != nil {
		return Empty{}, fmt.Errorf("listing jobs missing vectors: %w", err)
	}
	for _, id := range jobIDs {
		if err := c.EmbedJobCmd.Execute(ctx, id); err != nil {
			logger.WarnContext(ctx, "failed to refresh job embedding",
				"job_id", id,
				"error", err,
			)
		}
	}

	logger.InfoContext(ctx, "embedding refresh complete",
		"candidates", len(candidateIDs),
		"jobs", len(jobIDs),
	)
	return Empty{}, nil
}
