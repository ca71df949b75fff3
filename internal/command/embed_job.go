package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// EmbedJob regenerates the derived embedding vector for a job posting and
// writes it to both the record store and the vector index.
type EmbedJob struct {
	Jobs         datasources.JobFetcher
	Embedder     datasources.Embedder
	StoreVectors datasources.JobVectorUpdater
	IndexVectors datasources.JobVectorUpserter
}

func (c *EmbedJob) Execute(ctx context.Context, jobID string) error {
	logger := domain.LoggerFromContext(ctx)

	job, err := c.Jobs.FetchJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("fetching job: %w", err)
	}

	text := domain.AssembleJobText(job)
	if text == "" {
		logger.DebugContext(ctx, "job posting has no embeddable text, skipping", "job_id", jobID)
		return nil
	}

	vector, err := c.Embedder.EmbedText(ctx, text)
	if err != nil {
		if errors.Is(err, domain.ErrEmbeddingUnavailable) {
			logger.WarnContext(ctx, "embedding unavailable, leaving job without vector", "job_id", jobID)
			return nil
		}
		return fmt.Errorf("embedding job text: %w", err)
	}

	now := time.Now().UTC()
	if err := c.StoreVectors.UpdateJobVector(ctx, jobID, vector, now); err != nil {
		return fmt.Errorf("storing job vector: %w", err)
	}

	if err := c.IndexVectors.UpsertJobVector(ctx, jobID, vector); err != nil {
		return fmt.Errorf("indexing job vector: %w", err)
	}

	logger.DebugContext(ctx, "job vector refreshed", "job_id", jobID)
	return nil
}
