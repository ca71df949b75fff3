package command

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestSetJobStatus_Execute(t *testing.T) {
	jobs := mocks.NewMockJobStatusUpdater(t)
	jobs.EXPECT().
		UpdateJobStatus(mock.Anything, "job1", domain.JobStatusFilled).
		Return(nil)

	cmd := &SetJobStatus{Jobs: jobs}

	err := cmd.Execute(testContext(), "job1", domain.JobStatusFilled)

	require.NoError(t, err)
}

func TestSetJobStatus_Execute_UnknownStatus(t *testing.T) {
	cmd := &SetJobStatus{Jobs: mocks.NewMockJobStatusUpdater(t)}

	err := cmd.Execute(testContext(), "job1", domain.JobStatus("archived"))

	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSetJobStatus_Execute_UnknownJob(t *testing.T) {
	jobs := mocks.NewMockJobStatusUpdater(t)
	jobs.EXPECT().
		UpdateJobStatus(mock.Anything, "missing", domain.JobStatusClosed).
		Return(domain.ErrNotFound)

	cmd := &SetJobStatus{Jobs: jobs}

	err := cmd.Execute(testContext(), "missing", domain.JobStatusClosed)

	require.ErrorIs(t, err, domain.ErrNotFound)
}
