package command

import (
	"context"
	"fmt"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// DecideApplication is the recruiter's swipe on a pending application: it
// moves pending to accepted or rejected exactly once. Deciding an
// already-terminal application is an invalid transition, never a silent
// overwrite.
type DecideApplication struct {
	Applications datasources.ApplicationDecider
}

func (c *DecideApplication) Execute(
	ctx context.Context, applicationID string, accept bool,
) (domain.Application, error) {
	status := domain.ApplicationStatusRejected
	if accept {
		status = domain.ApplicationStatusAccepted
	}

	application, err := c.Applications.DecideApplication(ctx, applicationID, status)
	if err != nil {
		return domain.Application{}, fmt.Errorf("deciding application: %w", err)
	}

	return application, nil
}
