package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestApplicationDecide_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		decision   string
		wantTarget domain.ApplicationStatus
		decideErr  error
		wantStatus int
		skipDecide bool
	}{
		{
			name:       "accept",
			decision:   "accept",
			wantTarget: domain.ApplicationStatusAccepted,
			wantStatus: http.StatusOK,
		},
		{
			name:       "reject",
			decision:   "reject",
			wantTarget: domain.ApplicationStatusRejected,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid_decision",
			decision:   "maybe",
			wantStatus: http.StatusBadRequest,
			skipDecide: true,
		},
		{
			name:       "already_decided_is_conflict",
			decision:   "accept",
			wantTarget: domain.ApplicationStatusAccepted,
			decideErr:  domain.ErrInvalidTransition,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown_application",
			decision:   "reject",
			wantTarget: domain.ApplicationStatusRejected,
			decideErr:  domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store_error",
			decision:   "accept",
			wantTarget: domain.ApplicationStatusAccepted,
			decideErr:  errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			applications := mocks.NewMockApplicationDecider(t)

			if !tc.skipDecide {
				applications.EXPECT().
					DecideApplication(mock.Anything, "app1", tc.wantTarget).
					Return(domain.Application{ID: "app1", Status: tc.wantTarget}, tc.decideErr)
			}

			ctrl := ApplicationDecide{
				DecideCmd: &command.DecideApplication{Applications: applications},
			}

			req := httptest.NewRequest(http.MethodPost,
				"/v1/applications/app1/decision/"+tc.decision, nil)
			req = testContextWithUserID("rec1")(req)
			req = mux.SetURLVars(req, map[string]string{
				"application_id": "app1",
				"decision":       tc.decision,
			})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var application domain.Application
				err := json.NewDecoder(rec.Body).Decode(&application)
				require.NoError(t, err)
				assert.Equal(t, tc.wantTarget, application.Status)
			}
		})
	}
}
