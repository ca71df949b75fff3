package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/domain"
)

// RecommendedJobsList serves a candidate's swipe deck of ranked jobs.
type RecommendedJobsList struct {
	Recommender interface {
		Execute(ctx context.Context, candidateID string, limit int) ([]command.JobRecommendation, error)
	}
}

type RecommendedJobsListResponse struct {
	Data     []command.JobRecommendation `json:"data"`
	Metadata RecommendedJobsListMetadata `json:"metadata"`
}

type RecommendedJobsListMetadata struct{}

func (c RecommendedJobsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	candidateID := vars["candidate_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("candidate_id", candidateID))

	limit, err := deckLimitFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse deck limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recommendations, err := c.Recommender.Execute(ctx, candidateID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to build job recommendations", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendedJobsListResponse{
		Data:     recommendations,
		Metadata: RecommendedJobsListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write job recommendations to response", "error", err)
	}
}
