package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// MatchGet explains the match between one candidate and one job: the
// embedding similarity plus the per-factor attribute breakdown.
type MatchGet struct {
	Candidates datasources.CandidateFetcher
	Jobs       datasources.JobFetcher
}

// MatchGetResponse is the explanation payload. Overall is null, not 0, when
// the pair shares no comparable attributes.
type MatchGetResponse struct {
	CandidateID string               `json:"candidate_id"`
	JobID       string               `json:"job_id"`
	Overall     *int                 `json:"overall"`
	Factors     []domain.MatchFactor `json:"factors"`
	Similarity  float64              `json:"similarity"`
}

func (c MatchGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID := vars["job_id"]
	candidateID := vars["candidate_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(),
		logger.With("job_id", jobID, "candidate_id", candidateID))

	job, err := c.Jobs.FetchJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to fetch job", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	candidate, err := c.Candidates.FetchCandidate(ctx, candidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "unable to fetch candidate", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	factors := domain.MatchFactors(candidate, job)
	if factors == nil {
		factors = []domain.MatchFactor{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(MatchGetResponse{
		CandidateID: candidateID,
		JobID:       jobID,
		Overall:     domain.OverallMatch(candidate, job),
		Factors:     factors,
		Similarity:  domain.CosineSimilarity(candidate.Vector, job.Vector),
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write match explanation to response", "error", err)
	}
}
