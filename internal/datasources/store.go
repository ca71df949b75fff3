package datasources

import (
	"context"
	"time"

	"github.com/hireloop/swipematch/internal/domain"
)

// RecordStore combines the read-write record store interfaces.
type RecordStore interface {
	CandidateFetcher
	JobFetcher
	JobLister
	CandidateVectorUpdater
	JobVectorUpdater
	MissingVectorLister
}

type CandidateFetcher interface {
	FetchCandidate(ctx context.Context, candidateID string) (domain.CandidateProfile, error)
}

type JobFetcher interface {
	FetchJob(ctx context.Context, jobID string) (domain.JobPosting, error)
	FetchJobsByID(ctx context.Context, jobIDs []string) ([]domain.JobPosting, error)
}

type JobLister interface {
	ListLatestJobs(
		ctx context.Context,
		filters domain.JobFilters,
		options domain.JobListOptions,
	) ([]domain.JobPosting, error)
}

type CandidateVectorUpdater interface {
	UpdateCandidateVector(ctx context.Context, candidateID string, vector []float32, updatedAt time.Time) error
}

type JobVectorUpdater interface {
	UpdateJobVector(ctx context.Context, jobID string, vector []float32, updatedAt time.Time) error
}

// MissingVectorLister lists records that have no stored embedding yet, for
// background refresh.
type MissingVectorLister interface {
	ListCandidateIDsMissingVectors(ctx context.Context, limit int) ([]string, error)
	ListJobIDsMissingVectors(ctx context.Context, limit int) ([]string, error)
}

// NullRecordStore is a null implementation of RecordStore.
type NullRecordStore struct{}

var _ RecordStore = NullRecordStore{}

func (NullRecordStore) FetchCandidate(_ context.Context, _ string) (domain.CandidateProfile, error) {
	return domain.CandidateProfile{}, domain.ErrNotFound
}

func (NullRecordStore) FetchJob(_ context.Context, _ string) (domain.JobPosting, error) {
	return domain.JobPosting{}, domain.ErrNotFound
}

func (NullRecordStore) FetchJobsByID(_ context.Context, _ []string) ([]domain.JobPosting, error) {
	return nil, nil
}

func (NullRecordStore) ListLatestJobs(
	_ context.Context,
	_ domain.JobFilters,
	_ domain.JobListOptions,
) ([]domain.JobPosting, error) {
	return nil, nil
}

func (NullRecordStore) UpdateCandidateVector(_ context.Context, _ string, _ []float32, _ time.Time) error {
	return nil
}

func (NullRecordStore) UpdateJobVector(_ context.Context, _ string, _ []float32, _ time.Time) error {
	return nil
}

func (NullRecordStore) ListCandidateIDsMissingVectors(_ context.Context, _ int) ([]string, error) {
	return nil, nil
}

func (NullRecordStore) ListJobIDsMissingVectors(_ context.Context, _ int) ([]string, error) {
	return nil, nil
}
