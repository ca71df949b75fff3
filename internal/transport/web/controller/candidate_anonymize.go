package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hireloop/swipematch/internal/domain"
)

// CandidateAnonymize hides a candidate from the authenticated recruiter's
// future decks. Hiding an already hidden candidate succeeds unchanged.
type CandidateAnonymize struct {
	AnonymizeCmd interface {
		Execute(ctx context.Context, recruiterID, candidateID string) error
	}
}

func (c CandidateAnonymize) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	candidateID := vars["candidate_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("candidate_id", candidateID))

	recruiterID := domain.UserIDFromContext(r.Context())

	if err := c.AnonymizeCmd.Execute(ctx, recruiterID, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to anonymize candidate", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
