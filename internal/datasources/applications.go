package datasources

import (
	"context"

	"github.com/hireloop/swipematch/internal/domain"
)

// CreateResult distinguishes a fresh application from an idempotent replay.
// The backend reports duplicates as a typed variant rather than an error,
// since the desired end state already holds.
type CreateResult int

const (
	CreateResultCreated CreateResult = iota
	CreateResultAlreadyExists
)

// ApplicationStore combines all application lifecycle interfaces.
type ApplicationStore interface {
	ApplicationCreator
	ApplicationGetter
	ApplicationDecider
	JobStatusUpdater
}

type ApplicationCreator interface {
	// CreateApplication creates the pending application for the pair, or
	// returns the existing one with CreateResultAlreadyExists.
	CreateApplication(
		ctx context.Context,
		candidateID, jobID, coverNote string,
		source domain.SwipeSource,
	) (domain.Application, CreateResult, error)
}

type ApplicationGetter interface {
	GetApplication(ctx context.Context, applicationID string) (domain.Application, error)
}

type ApplicationDecider interface {
	// DecideApplication moves a pending application to accepted or rejected.
	// Returns domain.ErrNotFound for unknown IDs and
	// domain.ErrInvalidTransition when the application is already terminal.
	DecideApplication(
		ctx context.Context,
		applicationID string,
		status domain.ApplicationStatus,
	) (domain.Application, error)
}

type JobStatusUpdater interface {
	UpdateJobStatus(ctx context.Context, jobID string, status domain.JobStatus) error
}

// NullApplicationStore is a null implementation of ApplicationStore.
type NullApplicationStore struct{}

var _ ApplicationStore = NullApplicationStore{}

func (NullApplicationStore) CreateApplication(
	_ context.Context,
	_, _, _ string,
	_ domain.SwipeSource,
) (domain.Application, CreateResult, error) {
	return domain.Application{}, CreateResultCreated, nil
}

func (NullApplicationStore) GetApplication(_ context.Context, _ string) (domain.Application, error) {
	return domain.Application{}, domain.ErrNotFound
}

func (NullApplicationStore) DecideApplication(
	_ context.Context,
	_ string,
	_ domain.ApplicationStatus,
) (domain.Application, error) {
	return domain.Application{}, domain.ErrNotFound
}

func (NullApplicationStore) UpdateJobStatus(_ context.Context, _ string, _ domain.JobStatus) error {
	return nil
}
