package command

import (
	"context"
	"fmt"
	"time"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// SwipeJobRequest is a candidate's swipe on a job card.
type SwipeJobRequest struct {
	CandidateID string
	JobID       string
	Direction   domain.SwipeDirection
	CoverNote   string
	Source      domain.SwipeSource
}

// SwipeJobResult reports the swipe outcome. Created is false both for reject
// swipes and for idempotent replays of an earlier like.
type SwipeJobResult struct {
	Decision    domain.SwipeDecision `json:"decision"`
	Application *domain.Application  `json:"application,omitempty"`
	Created     bool                 `json:"created"`
}

// SwipeJob records a candidate's swipe. A like creates the pending
// application for the pair; a duplicate like is a success no-op against the
// existing record, never a duplicate or an error.
type SwipeJob struct {
	Jobs         datasources.JobFetcher
	Applications datasources.ApplicationCreator
}

func (c *SwipeJob) Execute(ctx context.Context, req SwipeJobRequest) (SwipeJobResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if !req.Direction.Valid() {
		return SwipeJobResult{}, fmt.Errorf("unknown swipe direction [%s]", req.Direction)
	}

	if _, err := c.Jobs.FetchJob(ctx, req.JobID); err != nil {
		return SwipeJobResult{}, fmt.Errorf("fetching job: %w", err)
	}

	source := req.Source
	if source == "" {
		source = domain.SwipeSourceDeck
	}

	decision := domain.SwipeDecision{
		SubjectID: req.CandidateID,
		TargetID:  req.JobID,
		Direction: req.Direction,
		Source:    source,
		Timestamp: time.Now().UTC(),
	}

	if req.Direction == domain.SwipeDirectionReject {
		// A left swipe is recorded client-side only; no application exists
		// until the candidate likes the job.
		return SwipeJobResult{Decision: decision}, nil
	}

	application, result, err := c.Applications.CreateApplication(
		ctx, req.CandidateID, req.JobID, req.CoverNote, source)
	if err != nil {
		return SwipeJobResult{}, fmt.Errorf("creating application: %w", err)
	}

	if result == datasources.CreateResultAlreadyExists {
		logger.DebugContext(ctx, "duplicate like, application already exists",
			"candidate_id", req.CandidateID,
			"job_id", req.JobID,
		)
	}

	return SwipeJobResult{
		Decision:    decision,
		Application: &application,
		Created:     result == datasources.CreateResultCreated,
	}, nil
}
