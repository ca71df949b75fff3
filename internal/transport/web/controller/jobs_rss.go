package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// JobsRSS serves newly posted active jobs as an RSS feed. Only active
// postings appear; paused, closed, and filled jobs drop out of the feed.
type JobsRSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Jobs            datasources.JobLister
	CacheMaxAge     time.Duration
}

func (c JobsRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "New Job Postings",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of newly posted jobs open for applications",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	options, err := jobListOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse job list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filters := domain.JobFilters{
		OnlyStatuses: []domain.JobStatus{domain.JobStatusActive},
	}

	jobs, err := c.Jobs.ListLatestJobs(r.Context(), filters, options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch jobs for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, j := range jobs {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          j.ID,
			IsPermaLink: "false",
			Title:       j.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/jobs/%s", c.FeedHostname, j.ID)},
			Description: j.Description,
			Created:     j.PostedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
