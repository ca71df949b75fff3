package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// EmbedCandidate regenerates the derived embedding vector for a candidate
// profile and writes it to both the record store and the vector index.
type EmbedCandidate struct {
	Candidates   datasources.CandidateFetcher
	Embedder     datasources.Embedder
	StoreVectors datasources.CandidateVectorUpdater
	IndexVectors datasources.CandidateVectorUpserter
}

// Execute embeds the candidate's profile text. An exhausted provider chain is
// non-fatal: the profile stays without a vector and matching degrades to
// attribute-only scoring.
func (c *EmbedCandidate) Execute(ctx context.Context, candidateID string) error {
	logger := domain.LoggerFromContext(ctx)

	candidate, err := c.Candidates.FetchCandidate(ctx, candidateID)
	if err != nil {
		return fmt.Errorf("fetching candidate: %w", err)
	}

	text := domain.AssembleCandidateText(candidate)
	if text == "" {
		logger.DebugContext(ctx, "candidate profile has no embeddable text, skipping",
			"candidate_id", candidateID)
		return nil
	}

	vector, err := c.Embedder.EmbedText(ctx, text)
	if err != nil {
		if errors.Is(err, domain.ErrEmbeddingUnavailable) {
			logger.WarnContext(ctx, "embedding unavailable, leaving candidate without vector",
				"candidate_id", candidateID)
			return nil
		}
		return fmt.Errorf("embedding candidate text: %w", err)
	}

	now := time.Now().UTC()
	if err := c.StoreVectors.UpdateCandidateVector(ctx, candidateID, vector, now); err != nil {
		return fmt.Errorf("storing candidate vector: %w", err)
	}

	if err := c.IndexVectors.UpsertCandidateVector(ctx, candidateID, vector); err != nil {
		return fmt.Errorf("indexing candidate vector: %w", err)
	}

	logger.DebugContext(ctx, "candidate vector refreshed", "candidate_id", candidateID)
	return nil
}
