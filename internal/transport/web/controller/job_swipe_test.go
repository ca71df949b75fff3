package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestJobSwipe_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		direction    string
		body         string
		fetchJobErr  error
		createResult datasources.CreateResult
		wantStatus   int
		wantCreated  bool
		skipFetch    bool
		skipCreate   bool
	}{
		{
			name:         "like_creates_application",
			direction:    "like",
			createResult: datasources.CreateResultCreated,
			wantStatus:   http.StatusCreated,
			wantCreated:  true,
		},
		{
			name:         "duplicate_like_returns_existing",
			direction:    "like",
			createResult: datasources.CreateResultAlreadyExists,
			wantStatus:   http.StatusOK,
			wantCreated:  false,
		},
		{
			name:         "like_with_cover_note",
			direction:    "like",
			body:         `{"cover_note":"hi there"}`,
			createResult: datasources.CreateResultCreated,
			wantStatus:   http.StatusCreated,
			wantCreated:  true,
		},
		{
			name:       "reject_records_no_application",
			direction:  "reject",
			wantStatus: http.StatusOK,
			skipCreate: true,
		},
		{
			name:       "invalid_direction",
			direction:  "sideways",
			wantStatus: http.StatusBadRequest,
			skipFetch:  true,
			skipCreate: true,
		},
		{
			name:       "malformed_body",
			direction:  "like",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
			skipFetch:  true,
			skipCreate: true,
		},
		{
			name:        "unknown_job",
			direction:   "like",
			fetchJobErr: domain.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			skipCreate:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs := mocks.NewMockJobFetcher(t)
			applications := mocks.NewMockApplicationCreator(t)

			if !tc.skipFetch {
				jobs.EXPECT().
					FetchJob(mock.Anything, "job1").
					Return(domain.JobPosting{ID: "job1"}, tc.fetchJobErr)
			}

			if !tc.skipCreate {
				coverNote := ""
				if tc.body != "" {
					coverNote = "hi there"
				}
				applications.EXPECT().
					CreateApplication(mock.Anything, "cand1", "job1", coverNote, domain.SwipeSourceDeck).
					Return(domain.Application{
						ID:          "app1",
						CandidateID: "cand1",
						JobID:       "job1",
						Status:      domain.ApplicationStatusPending,
					}, tc.createResult, nil)
			}

			ctrl := JobSwipe{
				SwipeCmd: &command.SwipeJob{Jobs: jobs, Applications: applications},
			}

			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job1/swipe/"+tc.direction, body)
			req = testContextWithUserID("cand1")(req)
			req = mux.SetURLVars(req, map[string]string{
				"job_id":    "job1",
				"direction": tc.direction,
			})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK || tc.wantStatus == http.StatusCreated {
				var result command.SwipeJobResult
				err := json.NewDecoder(rec.Body).Decode(&result)
				require.NoError(t, err)
				assert.Equal(t, tc.wantCreated, result.Created)
			}
		})
	}
}

func TestJobSwipe_ServeHTTP_MalformedBodyFailsBeforeAnyWrite(t *testing.T) {
	ctrl := JobSwipe{
		SwipeCmd: &command.SwipeJob{
			Jobs:         mocks.NewMockJobFetcher(t),
			Applications: mocks.NewMockApplicationCreator(t),
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job1/swipe/like",
		strings.NewReader(`{"cover_note": 42}`))
	req = testContextWithUserID("cand1")(req)
	req = mux.SetURLVars(req, map[string]string{
		"job_id":    "job1",
		"direction": "like",
	})
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
