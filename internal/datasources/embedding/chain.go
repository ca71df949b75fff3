// Package embedding provides an ordered fallback chain over embedding
// providers. Each attempt is a (provider, payload variant) pair; the first
// one to return a non-empty vector wins.
package embedding

import (
	"context"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

// DefaultMaxAttempts caps the total attempts across all providers and payload
// variants so a flaky chain cannot produce unbounded latency.
const DefaultMaxAttempts = 5

// Attempt is one entry in the fallback order.
type Attempt struct {
	Name     string
	Embedder datasources.Embedder
}

// Chain tries its attempts in order and returns the first syntactically valid
// vector. Stateless per invocation.
type Chain struct {
	Attempts    []Attempt
	MaxAttempts int
}

var _ datasources.Embedder = (*Chain)(nil)

// New creates a Chain with the default attempt budget.
func New(attempts ...Attempt) *Chain {
	return &Chain{
		Attempts:    attempts,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// EmbedText runs the fallback chain. It returns
// domain.ErrEmbeddingUnavailable once every attempt has failed, returned an
// empty vector, or the attempt budget is spent; callers treat that as
// non-fatal and degrade to attribute-only scoring.
func (c *Chain) EmbedText(ctx context.Context, text string) ([]float32, error) {
	logger := domain.LoggerFromContext(ctx)

	budget := c.MaxAttempts
	if budget <= 0 {
		budget = DefaultMaxAttempts
	}

	for i, attempt := range c.Attempts {
		if i >= budget {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vector, err := attempt.Embedder.EmbedText(ctx, text)
		if err != nil {
			logger.WarnContext(ctx, "embedding attempt failed",
				"provider", attempt.Name,
				"error", err,
			)
			continue
		}
		if len(vector) == 0 {
			logger.WarnContext(ctx, "embedding attempt returned empty vector",
				"provider", attempt.Name,
			)
			continue
		}

		return vector, nil
	}

	return nil, domain.ErrEmbeddingUnavailable
}
