package command

import (
	"context"
	"fmt"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// JobRecommendation is one entry in a candidate's ranked deck: the posting,
// the index's similarity score, and the attribute-based match explanation.
// Match is nil when the pair shares no comparable attributes.
type JobRecommendation struct {
	Job        domain.JobPosting `json:"job"`
	Similarity float64           `json:"similarity"`
	Match      *int              `json:"match"`
}

// RecommendJobs serves the candidate-side deck. Ranking happens in the vector
// index; this command validates the result shape and re-scores each pair for
// explanation.
type RecommendJobs struct {
	Candidates datasources.CandidateFetcher
	Ranker     datasources.JobRanker
	Jobs       datasources.JobFetcher
}

// Execute returns up to limit ranked jobs for the candidate, in the index's
// order. Ranking failures degrade to an empty deck rather than an error, so
// the UI always has a renderable state; an unknown candidate is still
// surfaced as domain.ErrNotFound.
func (c *RecommendJobs) Execute(
	ctx context.Context, candidateID string, limit int,
) ([]JobRecommendation, error) {
	logger := domain.LoggerFromContext(ctx)

	candidate, err := c.Candidates.FetchCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate: %w", err)
	}

	if len(candidate.Vector) == 0 {
		// No embedding yet; nothing to rank against.
		return []JobRecommendation{}, nil
	}

	ranked, err := c.Ranker.ListRankedJobs(ctx, candidate.Vector, limit)
	if err != nil {
		logger.WarnContext(ctx, "job ranking failed, serving empty deck",
			"candidate_id", candidateID,
			"error", err,
		)
		return []JobRecommendation{}, nil
	}

	ids := make([]string, 0, len(ranked))
	similarities := make(map[string]float64, len(ranked))
	for _, r := range ranked {
		// Entries without an ID cannot be resolved; drop them rather than
		// fail the whole deck. A missing similarity is already zero.
		if r.JobID == "" {
			continue
		}
		ids = append(ids, r.JobID)
		similarities[r.JobID] = r.Similarity
	}

	jobs, err := c.Jobs.FetchJobsByID(ctx, ids)
	if err != nil {
		logger.WarnContext(ctx, "fetching ranked jobs failed, serving empty deck",
			"candidate_id", candidateID,
			"error", err,
		)
		return []JobRecommendation{}, nil
	}

	recommendations := make([]JobRecommendation, 0, len(jobs))
	for _, job := range jobs {
		recommendations = append(recommendations, JobRecommendation{
			Job:        job,
			Similarity: similarities[job.ID],
			Match:      domain.OverallMatch(candidate, job),
		})
	}

	return recommendations, nil
}
