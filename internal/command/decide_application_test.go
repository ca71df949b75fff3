package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestDecideApplication_Execute(t *testing.T) {
	for _, tc := range []struct {
		name       string
		accept     bool
		wantStatus domain.ApplicationStatus
	}{
		{name: "accept_moves_pending_to_accepted", accept: true, wantStatus: domain.ApplicationStatusAccepted},
		{name: "reject_moves_pending_to_rejected", accept: false, wantStatus: domain.ApplicationStatusRejected},
	} {
		t.Run(tc.name, func(t *testing.T) {
			applications := mocks.NewMockApplicationDecider(t)
			applications.EXPECT().
				DecideApplication(mock.Anything, "app1", tc.wantStatus).
				Return(domain.Application{ID: "app1", Status: tc.wantStatus}, nil)

			cmd := &DecideApplication{Applications: applications}

			application, err := cmd.Execute(testContext(), "app1", tc.accept)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, application.Status)
		})
	}
}

func TestDecideApplication_Execute_TerminalApplicationIsInvalidTransition(t *testing.T) {
	applications := mocks.NewMockApplicationDecider(t)
	applications.EXPECT().
		DecideApplication(mock.Anything, "app1", domain.ApplicationStatusAccepted).
		Return(domain.Application{}, domain.ErrInvalidTransition)

	cmd := &DecideApplication{Applications: applications}

	_, err := cmd.Execute(testContext(), "app1", true)

	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDecideApplication_Execute_UnknownApplication(t *testing.T) {
	applications := mocks.NewMockApplicationDecider(t)
	applications.EXPECT().
		DecideApplication(mock.Anything, "missing", domain.ApplicationStatusRejected).
		Return(domain.Application{}, domain.ErrNotFound)

	cmd := &DecideApplication{Applications: applications}

	_, err := cmd.Execute(testContext(), "missing", false)

	require.ErrorIs(t, err, domain.ErrNotFound)
}
