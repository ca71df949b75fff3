package datasources

import (
	"context"

	"github.com/hireloop/swipematch/internal/domain"
)

// VectorIndex combines the vector index interfaces.
type VectorIndex interface {
	JobRanker
	CandidateRanker
	CandidateVectorUpserter
	JobVectorUpserter
}

type JobRanker interface {
	// ListRankedJobs returns jobs ordered by similarity to the given vector.
	// Ranking order is the index's; callers do not re-sort.
	ListRankedJobs(ctx context.Context, vector []float32, limit int) ([]domain.RankedJob, error)
}

type CandidateRanker interface {
	// ListRankedCandidates returns candidates ordered by similarity to the
	// given vector, excluding the given candidate IDs.
	ListRankedCandidates(
		ctx context.Context,
		vector []float32,
		excludeCandidateIDs []string,
		limit int,
	) ([]domain.RankedCandidate, error)
}

type CandidateVectorUpserter interface {
	UpsertCandidateVector(ctx context.Context, candidateID string, vector []float32) error
}

type JobVectorUpserter interface {
	UpsertJobVector(ctx context.Context, jobID string, vector []float32) error
}

// NullVectorIndex is a null implementation of VectorIndex.
type NullVectorIndex struct{}

var _ VectorIndex = NullVectorIndex{}

func (NullVectorIndex) ListRankedJobs(_ context.Context, _ []float32, _ int) ([]domain.RankedJob, error) {
	return nil, nil
}

func (NullVectorIndex) ListRankedCandidates(
	_ context.Context,
	_ []float32,
	_ []string,
	_ int,
) ([]domain.RankedCandidate, error) {
	return nil, nil
}

func (NullVectorIndex) UpsertCandidateVector(_ context.Context, _ string, _ []float32) error {
	return nil
}

func (NullVectorIndex) UpsertJobVector(_ context.Context, _ string, _ []float32) error {
	return nil
}
