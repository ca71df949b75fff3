package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/domain"
)

// JobSwipe records the authenticated candidate's swipe on a job. The swipe
// direction comes from the path, so a retried request stays idempotent.
type JobSwipe struct {
	SwipeCmd interface {
		Execute(ctx context.Context, req command.SwipeJobRequest) (command.SwipeJobResult, error)
	}
}

// JobSwipeBody is the optional request body for a like swipe.
type JobSwipeBody struct {
	CoverNote string             `json:"cover_note"`
	Source    domain.SwipeSource `json:"source"`
}

func (c JobSwipe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID := vars["job_id"]
	direction := domain.SwipeDirection(vars["direction"])
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("job_id", jobID))

	if !direction.Valid() {
		logger.ErrorContext(ctx, "invalid swipe direction", "direction", vars["direction"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var body JobSwipeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		logger.ErrorContext(ctx, "unable to parse swipe request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	candidateID := domain.UserIDFromContext(r.Context())

	result, err := c.SwipeCmd.Execute(ctx, command.SwipeJobRequest{
		CandidateID: candidateID,
		JobID:       jobID,
		Direction:   direction,
		CoverNote:   body.CoverNote,
		Source:      body.Source,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to record swipe", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Created {
		w.WriteHeader(http.StatusCreated)
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.ErrorContext(ctx, "unable to write swipe result to response", "error", err)
	}
}
