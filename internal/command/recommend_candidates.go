package command

import (
	"context"
	"fmt"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// CandidateRecommendation is one entry in a recruiter's ranked deck for a job.
type CandidateRecommendation struct {
	Candidate  domain.CandidateProfile `json:"candidate"`
	Similarity float64                 `json:"similarity"`
	Match      *int                    `json:"match"`
}

// RecommendCandidates serves the recruiter-side deck for one posting,
// honouring the recruiter's anonymous-candidate exclusion set.
type RecommendCandidates struct {
	Jobs       datasources.JobFetcher
	Exclusions datasources.ExclusionLister
	Ranker     datasources.CandidateRanker
	Candidates datasources.CandidateFetcher
}

// Execute returns up to limit ranked candidates for the job, excluding the
// recruiter's hidden candidates. Like the candidate-side deck, ranking
// failures degrade to empty results. A failure reading the exclusion set also
// degrades to empty rather than risking serving a hidden candidate.
func (c *RecommendCandidates) Execute(
	ctx context.Context, jobID, recruiterID string, limit int,
) ([]CandidateRecommendation, error) {
	logger := domain.LoggerFromContext(ctx)

	job, err := c.Jobs.FetchJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("fetching job: %w", err)
	}

	if len(job.Vector) == 0 {
		return []CandidateRecommendation{}, nil
	}

	excluded, err := c.Exclusions.ListAnonymousCandidates(ctx, recruiterID)
	if err != nil {
		logger.WarnContext(ctx, "reading exclusion set failed, serving empty deck",
			"recruiter_id", recruiterID,
			"error", err,
		)
		return []CandidateRecommendation{}, nil
	}

	ranked, err := c.Ranker.ListRankedCandidates(ctx, job.Vector, excluded, limit)
	if err != nil {
		logger.WarnContext(ctx, "candidate ranking failed, serving empty deck",
			"job_id", jobID,
			"error", err,
		)
		return []CandidateRecommendation{}, nil
	}

	recommendations := make([]CandidateRecommendation, 0, len(ranked))
	for _, r := range ranked {
		if r.CandidateID == "" {
			continue
		}

		candidate, err := c.Candidates.FetchCandidate(ctx, r.CandidateID)
		if err != nil {
			logger.WarnContext(ctx, "skipping unresolvable ranked candidate",
				"candidate_id", r.CandidateID,
				"error", err,
			)
			continue
		}

		recommendations = append(recommendations, CandidateRecommendation{
			Candidate:  candidate,
			Similarity: r.Similarity,
			Match:      domain.OverallMatch(candidate, job),
		})
	}

	return recommendations, nil
}
