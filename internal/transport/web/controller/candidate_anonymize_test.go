package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestCandidateAnonymize_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		fetchErr   error
		addResult  datasources.AddResult
		wantStatus int
		skipAdd    bool
	}{
		{
			name:       "hides_candidate",
			addResult:  datasources.AddResultAdded,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "already_hidden_is_success",
			addResult:  datasources.AddResultAlreadyPresent,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown_candidate",
			fetchErr:   domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			skipAdd:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates := mocks.NewMockCandidateFetcher(t)
			exclusions := mocks.NewMockExclusionAdder(t)

			candidates.EXPECT().
				FetchCandidate(mock.Anything, "cand1").
				Return(domain.CandidateProfile{ID: "cand1"}, tc.fetchErr)

			if !tc.skipAdd {
				exclusions.EXPECT().
					AddAnonymousCandidate(mock.Anything, "rec1", "cand1").
					Return(tc.addResult, nil)
			}

			ctrl := CandidateAnonymize{
				AnonymizeCmd: &command.AnonymizeCandidate{
					Candidates: candidates,
					Exclusions: exclusions,
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/candidates/cand1/anonymous", nil)
			req = testContextWithUserID("rec1")(req)
			req = mux.SetURLVars(req, map[string]string{"candidate_id": "cand1"})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
