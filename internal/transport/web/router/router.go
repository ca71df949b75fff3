package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/transport/web/controller"
)

// Dependencies collects everything the routes need.
type Dependencies struct {
	Records                datasources.RecordStore
	Applications           datasources.ApplicationGetter
	RecommendJobsCmd       *command.RecommendJobs
	RecommendCandidatesCmd *command.RecommendCandidates
	SwipeJobCmd            *command.SwipeJob
	DecideApplicationCmd   *command.DecideApplication
	AnonymizeCandidateCmd  *command.AnonymizeCandidate
	SetJobStatusCmd        *command.SetJobStatus
}

func MakeRouter(
	deps Dependencies,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/candidates/{candidate_id}/recommendations",
		requireAuthMiddleware(controller.RecommendedJobsList{
			Recommender: deps.RecommendJobsCmd,
		})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/jobs/{job_id}/candidates",
		requireAuthMiddleware(controller.RecommendedCandidatesList{
			Recommender: deps.RecommendCandidatesCmd,
		})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/jobs/{job_id}/match/{candidate_id}", controller.MatchGet{
		Candidates: deps.Records,
		Jobs:       deps.Records,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/jobs/{job_id}/swipe/{direction}",
		requireAuthMiddleware(controller.JobSwipe{
			SwipeCmd: deps.SwipeJobCmd,
		})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/applications/{application_id}",
		requireAuthMiddleware(controller.ApplicationGet{
			Applications: deps.Applications,
		})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/applications/{application_id}/decision/{decision}",
		requireAuthMiddleware(controller.ApplicationDecide{
			DecideCmd: deps.DecideApplicationCmd,
		})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/candidates/{candidate_id}/anonymous",
		requireAuthMiddleware(controller.CandidateAnonymize{
			AnonymizeCmd: deps.AnonymizeCandidateCmd,
		})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/jobs/{job_id}/status/{status}",
		requireAuthMiddleware(controller.JobStatusSet{
			SetStatusCmd: deps.SetJobStatusCmd,
		})).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.JobsRSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/jobs/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Jobs:            deps.Records,
			CacheMaxAge:     rssCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
