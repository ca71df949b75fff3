package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hireloop/swipematch/internal/domain"
)

// JobStatusSet moves a posting through its lifecycle. An unknown target
// status is a malformed request; a valid status that the store refuses is a
// conflict.
type JobStatusSet struct {
	SetStatusCmd interface {
		Execute(ctx context.Context, jobID string, status domain.JobStatus) error
	}
}

func (c JobStatusSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID := vars["job_id"]
	status := domain.JobStatus(vars["status"])
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("job_id", jobID))

	if !status.Valid() {
		logger.ErrorContext(ctx, "invalid job status", "status", vars["status"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.SetStatusCmd.Execute(ctx, jobID, status); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			logger.ErrorContext(ctx, "failed to update job status", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
