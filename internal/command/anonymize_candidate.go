package command

import (
	"context"
	"fmt"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// AnonymizeCandidate adds a candidate to a recruiter's exclusion set so they
// stop appearing in the recruiter's ranked decks.
type AnonymizeCandidate struct {
	Candidates datasources.CandidateFetcher
	Exclusions datasources.ExclusionAdder
}

// Execute hides the candidate. A duplicate add means the desired end state
// already holds and is treated as success with no change.
func (c *AnonymizeCandidate) Execute(ctx context.Context, recruiterID, candidateID string) error {
	logger := domain.LoggerFromContext(ctx)

	if _, err := c.Candidates.FetchCandidate(ctx, candidateID); err != nil {
		return fmt.Errorf("fetching candidate: %w", err)
	}

	result, err := c.Exclusions.AddAnonymousCandidate(ctx, recruiterID, candidateID)
	if err != nil {
		return fmt.Errorf("adding anonymous candidate: %w", err)
	}

	if result == datasources.AddResultAlreadyPresent {
		logger.DebugContext(ctx, "candidate already anonymous for recruiter",
			"recruiter_id", recruiterID,
			"candidate_id", candidateID,
		)
	}

	return nil
}
