package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestRecommendJobs_Execute_ReturnsRankedDeck(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	ranker := mocks.NewMockJobRanker(t)
	jobs := mocks.NewMockJobFetcher(t)

	vector := []float32{0.1, 0.2, 0.3}
	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{
			ID:     "cand1",
			Skills: []string{"Go"},
			Vector: vector,
		}, nil)

	ranker.EXPECT().
		ListRankedJobs(mock.Anything, vector, 2).
		Return([]domain.RankedJob{
			{JobID: "job2", Similarity: 0.91},
			{JobID: "job1", Similarity: 0.74},
		}, nil)

	jobs.EXPECT().
		FetchJobsByID(mock.Anything, []string{"job2", "job1"}).
		Return([]domain.JobPosting{
			{ID: "job2", RequiredSkills: []string{"Go"}},
			{ID: "job1", RequiredSkills: []string{"Rust"}},
		}, nil)

	cmd := &RecommendJobs{Candidates: candidates, Ranker: ranker, Jobs: jobs}

	deck, err := cmd.Execute(testContext(), "cand1", 2)

	require.NoError(t, err)
	require.Len(t, deck, 2)
	assert.Equal(t, "job2", deck[0].Job.ID)
	assert.Equal(t, 0.91, deck[0].Similarity)
	require.NotNil(t, deck[0].Match)
	assert.Equal(t, 100, *deck[0].Match)
	assert.Equal(t, "job1", deck[1].Job.ID)
	require.NotNil(t, deck[1].Match)
	assert.Equal(t, 0, *deck[1].Match)
}

func TestRecommendJobs_Execute_UnknownCandidateSurfacesError(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	candidates.EXPECT().
		FetchCandidate(mock.Anything, "missing").
		Return(domain.CandidateProfile{}, domain.ErrNotFound)

	cmd := &RecommendJobs{
		Candidates: candidates,
		Ranker:     mocks.NewMockJobRanker(t),
		Jobs:       mocks.NewMockJobFetcher(t),
	}

	_, err := cmd.Execute(testContext(), "missing", 10)

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecommendJobs_Execute_NoVectorServesEmptyDeck(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1"}, nil)

	cmd := &RecommendJobs{
		Candidates: candidates,
		Ranker:     mocks.NewMockJobRanker(t),
		Jobs:       mocks.NewMockJobFetcher(t),
	}

	deck, err := cmd.Execute(testContext(), "cand1", 10)

	require.NoError(t, err)
	assert.Empty(t, deck)
	assert.NotNil(t, deck, "empty deck, not nil, so it serializes as []")
}

func TestRecommendJobs_Execute_RankerFailureDegradesToEmpty(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	ranker := mocks.NewMockJobRanker(t)

	vector := []float32{0.5}
	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1", Vector: vector}, nil)
	ranker.EXPECT().
		ListRankedJobs(mock.Anything, vector, 10).
		Return(nil, errors.New("index unreachable"))

	cmd := &RecommendJobs{
		Candidates: candidates,
		Ranker:     ranker,
		Jobs:       mocks.NewMockJobFetcher(t),
	}

	deck, err := cmd.Execute(testContext(), "cand1", 10)

	require.NoError(t, err)
	assert.Empty(t, deck)
}

func TestRecommendJobs_Execute_DropsEntriesWithoutIDs(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	ranker := mocks.NewMockJobRanker(t)
	jobs := mocks.NewMockJobFetcher(t)

	vector := []float32{0.5}
	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1", Vector: vector}, nil)
	ranker.EXPECT().
		ListRankedJobs(mock.Anything, vector, 10).
		Return([]domain.RankedJob{
			{JobID: "", Similarity: 0.99},
			{JobID: "job1", Similarity: 0.8},
		}, nil)
	jobs.EXPECT().
		FetchJobsByID(mock.Anything, []string{"job1"}).
		Return([]domain.JobPosting{{ID: "job1"}}, nil)

	cmd := &RecommendJobs{Candidates: candidates, Ranker: ranker, Jobs: jobs}

	deck, err := cmd.Execute(testContext(), "cand1", 10)

	require.NoError(t, err)
	require.Len(t, deck, 1)
	assert.Equal(t, "job1", deck[0].Job.ID)
}
