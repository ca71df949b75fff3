package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestAnonymizeCandidate_Execute_AddsToExclusionSet(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	exclusions := mocks.NewMockExclusionAdder(t)

	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1"}, nil)
	exclusions.EXPECT().
		AddAnonymousCandidate(mock.Anything, "rec1", "cand1").
		Return(datasources.AddResultAdded, nil)

	cmd := &AnonymizeCandidate{Candidates: candidates, Exclusions: exclusions}

	err := cmd.Execute(testContext(), "rec1", "cand1")

	require.NoError(t, err)
}

func TestAnonymizeCandidate_Execute_DuplicateAddIsSuccess(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	exclusions := mocks.NewMockExclusionAdder(t)

	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1"}, nil)
	exclusions.EXPECT().
		AddAnonymousCandidate(mock.Anything, "rec1", "cand1").
		Return(datasources.AddResultAlreadyPresent, nil)

	cmd := &AnonymizeCandidate{Candidates: candidates, Exclusions: exclusions}

	err := cmd.Execute(testContext(), "rec1", "cand1")

	require.NoError(t, err, "re-hiding an already hidden candidate is a no-op")
}

func TestAnonymizeCandidate_Execute_UnknownCandidate(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	candidates.EXPECT().
		FetchCandidate(mock.Anything, "missing").
		Return(domain.CandidateProfile{}, domain.ErrNotFound)

	cmd := &AnonymizeCandidate{
		Candidates: candidates,
		Exclusions: mocks.NewMockExclusionAdder(t),
	}

	err := cmd.Execute(testContext(), "rec1", "missing")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnonymizeCandidate_Execute_AddFailureSurfaced(t *testing.T) {
	candidates := mocks.NewMockCandidateFetcher(t)
	exclusions := mocks.NewMockExclusionAdder(t)

	candidates.EXPECT().
		FetchCandidate(mock.Anything, "cand1").
		Return(domain.CandidateProfile{ID: "cand1"}, nil)
	exclusions.EXPECT().
		AddAnonymousCandidate(mock.Anything, "rec1", "cand1").
		Return(datasources.AddResultAdded, errors.New("redis down"))

	cmd := &AnonymizeCandidate{Candidates: candidates, Exclusions: exclusions}

	err := cmd.Execute(testContext(), "rec1", "cand1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "adding anonymous candidate")
}
