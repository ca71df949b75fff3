package datasources

import "context"

// AddResult distinguishes a fresh insertion into an exclusion set from a
// duplicate add, which is a soft "already present" condition rather than an
// error.
type AddResult int

const (
	AddResultAdded AddResult = iota
	AddResultAlreadyPresent
)

// ExclusionList holds the candidate IDs a recruiter has chosen to hide from
// their future ranked results.
type ExclusionList interface {
	ExclusionAdder
	ExclusionLister
}

type ExclusionAdder interface {
	AddAnonymousCandidate(ctx context.Context, recruiterID, candidateID string) (AddResult, error)
}

type ExclusionLister interface {
	ListAnonymousCandidates(ctx context.Context, recruiterID string) ([]string, error)
}

// NullExclusionList is a null implementation of ExclusionList.
type NullExclusionList struct{}

var _ ExclusionList = NullExclusionList{}

func (NullExclusionList) AddAnonymousCandidate(_ context.Context, _, _ string) (AddResult, error) {
	return AddResultAdded, nil
}

func (NullExclusionList) ListAnonymousCandidates(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}
