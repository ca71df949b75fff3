package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hireloop/swipematch/internal/domain"
)

const (
	decisionAccept = "accept"
	decisionReject = "reject"
)

// ApplicationDecide records the recruiter's swipe on a pending application.
// A terminal application cannot be re-decided; that conflict is surfaced as
// 409 rather than silently overwriting the earlier outcome.
type ApplicationDecide struct {
	DecideCmd interface {
		Execute(ctx context.Context, applicationID string, accept bool) (domain.Application, error)
	}
}

func (c ApplicationDecide) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("application_id", applicationID))

	var accept bool
	switch vars["decision"] {
	case decisionAccept:
		accept = true
	case decisionReject:
		accept = false
	default:
		logger.ErrorContext(ctx, "invalid decision value", "decision", vars["decision"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	application, err := c.DecideCmd.Execute(ctx, applicationID, accept)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			logger.ErrorContext(ctx, "failed to decide application", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(application); err != nil {
		logger.ErrorContext(ctx, "unable to write application to response", "error", err)
	}
}
