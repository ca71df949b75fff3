package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestApplicationGet_ServeHTTP(t *testing.T) {
	applications := mocks.NewMockApplicationGetter(t)
	applications.EXPECT().
		GetApplication(mock.Anything, "app1").
		Return(domain.Application{
			ID:          "app1",
			CandidateID: "cand1",
			JobID:       "job1",
			Status:      domain.ApplicationStatusPending,
		}, nil)

	ctrl := ApplicationGet{Applications: applications}

	req := httptest.NewRequest(http.MethodGet, "/v1/applications/app1", nil)
	req = testContextWithUserID("cand1")(req)
	req = mux.SetURLVars(req, map[string]string{"application_id": "app1"})
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var application domain.Application
	err := json.NewDecoder(rec.Body).Decode(&application)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, application.Status)
}

func TestApplicationGet_ServeHTTP_NotFound(t *testing.T) {
	applications := mocks.NewMockApplicationGetter(t)
	applications.EXPECT().
		GetApplication(mock.Anything, "missing").
		Return(domain.Application{}, domain.ErrNotFound)

	ctrl := ApplicationGet{Applications: applications}

	req := httptest.NewRequest(http.MethodGet, "/v1/applications/missing", nil)
	req = testContextWithUserID("cand1")(req)
	req = mux.SetURLVars(req, map[string]string{"application_id": "missing"})
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
