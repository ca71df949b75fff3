package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestEmbedCandidate_Execute_StoresAndIndexesVector(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	embedder := mocks.NewMockEmbedder(t)
	store := mocks.NewMockCandidateVectorUpdater(t)
	index := mocks.NewMockCandidateVectorUpserter(t)

	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{
			ID:     "cand1",
			Bio:    "Backend engineer",
			Skills: []string{"Go", "MySQL"},
		}, nil)

	vector := []float32{0.1, 0.2}
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, text string) {
			assert.Contains(t, text, "Bio: Backend engineer")
			assert.Contains(t, text, "Skills: Go, MySQL")
		}).
		Return(vector, nil)

	store.EXPECT().
		UpdateCandidateVector(mock.Anything, "cand1", vector, mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, id string, v []float32, updatedAt time.Time) {
			assert.WithinDuration(t, time.Now().UTC(), updatedAt, time.Minute)
		}).
		Return(nil)
	index.EXPECT().
		UpsertCandidateVector(mock.Anything, "cand1", vector).
		Return(nil)

	cmd := &EmbedCandidate{
		Candidates:   candidates,
		Embedder:     embedder,
		StoreVectors: store,
		IndexVectors: index,
	}

	err := cmd.Execute(testContext(), "cand1")

	require.NoError(t, err)
}

func TestEmbedCandidate_Execute_EmbeddingUnavailableIsNonFatal(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	embedder := mocks.NewMockEmbedder(t)

	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1", Bio: "Engineer"}, nil)
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.AnythingOfType("string")).
		Return(nil, domain.ErrEmbeddingUnavailable)

	cmd := &EmbedCandidate{
		Candidates:   candidates,
		Embedder:     embedder,
		StoreVectors: mocks.NewMockCandidateVectorUpdater(t),
		IndexVectors: mocks.NewMockCandidateVectorUpserter(t),
	}

	err := cmd.Execute(testContext(), "cand1")

	require.NoError(t, err, "an exhausted provider chain leaves the record as-is")
}

func TestEmbedCandidate_Execute_EmptyProfileSkipsEmbedding(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1"}, nil)

	cmd := &EmbedCandidate{
		Candidates:   candidates,
		Embedder:     mocks.NewMockEmbedder(t),
		StoreVectors: mocks.NewMockCandidateVectorUpdater(t),
		IndexVectors: mocks.NewMockCandidateVectorUpserter(t),
	}

	err := cmd.Execute(testContext(), "cand1")

	require.NoError(t, err)
}

func TestEmbedCandidate_Execute_StoreFailureSurfaced(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	embedder := mocks.NewMockEmbedder(t)
	store := mocks.NewMockCandidateVectorUpdater(t)

	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1", Bio: "Engineer"}, nil)
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.AnythingOfType("string")).
		Return([]float32{0.1}, nil)
	store.EXPECT().
		UpdateCandidateVector(mock.Anything, "cand1", []float32{0.1}, mock.AnythingOfType("time.Time")).
		Return(errors.New("db down"))

	cmd := &EmbedCandidate{
		Candidates:   candidates,
		Embedder:     embedder,
		StoreVectors: store,
		IndexVectors: mocks.NewMockCandidateVectorUpserter(t),
	}

	err := cmd.Execute(testContext(), "cand1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "storing candidate vector")
}
