package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hireloop/swipematch/internal/datasources/mocks"
	"github.com/hireloop/swipematch/internal/domain"
)

func TestJobsRSS_ServeHTTP(t *testing.T) {
	postedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	lister := mocks.NewMockJobLister(t)
	lister.EXPECT().
		ListLatestJobs(mock.Anything,
			domain.JobFilters{OnlyStatuses: []domain.JobStatus{domain.JobStatusActive}},
			mock.Anything).
		Return([]domain.JobPosting{
			{
				ID:          "job1",
				Title:       "Backend Engineer",
				Description: "Build APIs",
				Status:      domain.JobStatusActive,
				PostedAt:    postedAt,
			},
		}, nil)

	ctrl := JobsRSS{
		FeedHostname:    "https://feed.example.com",
		FeedPath:        "/jobs/rss",
		FeedAuthorName:  "Hiring Team",
		FeedAuthorEmail: "jobs@example.com",
		Jobs:            lister,
		CacheMaxAge:     time.Hour,
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs/rss", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "Backend Engineer")
	assert.Contains(t, rec.Body.String(), "https://feed.example.com/jobs/job1")
}

func TestJobsRSS_ServeHTTP_InvalidSortParam(t *testing.T) {
	ctrl := JobsRSS{
		FeedHostname: "https://feed.example.com",
		FeedPath:     "/jobs/rss",
		Jobs:         mocks.NewMockJobLister(t),
	}

	req := httptest.NewRequest(http.MethodGet, "/jobs/rss?sort=salary", nil)
	req = testContext()(req)
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
