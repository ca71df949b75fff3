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

// RecommendedCandidatesList serves a recruiter's ranked candidates for one
// posting. The recruiter is taken from the authenticated user, so their
// anonymous-candidate exclusions always apply.
type RecommendedCandidatesList struct {
	Recommender interface {
		Execute(ctx context.Context, jobID, recruiterID string, limit int) ([]command.CandidateRecommendation, error)
	}
}

type RecommendedCandidatesListResponse struct {
	Data     []command.CandidateRecommendation `json:"data"`
	Metadata RecommendedCandidatesListMetadata `json:"metadata"`
}

type RecommendedCandidatesListMetadata struct{}

func (c RecommendedCandidatesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID := vars["job_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("job_id", jobID))

	limit, err := deckLimitFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse deck limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	recruiterID := domain.UserIDFromContext(r.Context())

	recommendations, err := c.Recommender.Execute(ctx, jobID, recruiterID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to build candidate recommendations", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendedCandidatesListResponse{
		Data:     recommendations,
		Metadata: RecommendedCandidatesListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write candidate recommendations to response", "error", err)
	}
}
