// Package redisx keeps each recruiter's anonymous-candidate exclusion set in
// a redis set, one key per recruiter.
package redisx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hireloop/swipematch/internal/datasources"
)

var _ datasources.ExclusionList = (*ExclusionList)(nil)

type ExclusionList struct {
	client *redis.Client
}

// Connect parses redisURL, verifies connectivity, and returns the exclusion
// list backed by it.
func Connect(ctx context.Context, redisURL string) (*ExclusionList, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("checking redis connection: %w", err)
	}

	return New(client), nil
}

func New(client *redis.Client) *ExclusionList {
	return &ExclusionList{client: client}
}

// AddAnonymousCandidate adds the candidate to the recruiter's exclusion set.
// SADD reports 0 added members when the candidate is already present, which
// maps to AddResultAlreadyPresent: the desired end state already holds.
func (l *ExclusionList) AddAnonymousCandidate(
	ctx context.Context,
	recruiterID, candidateID string,
) (datasources.AddResult, error) {
	added, err := l.client.SAdd(ctx, exclusionKey(recruiterID), candidateID).Result()
	if err != nil {
		return datasources.AddResultAdded, fmt.Errorf("adding anonymous candidate: %w", err)
	}

	if added == 0 {
		return datasources.AddResultAlreadyPresent, nil
	}
	return datasources.AddResultAdded, nil
}

func (l *ExclusionList) ListAnonymousCandidates(
	ctx context.Context,
	recruiterID string,
) ([]string, error) {
	members, err := l.client.SMembers(ctx, exclusionKey(recruiterID)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing anonymous candidates: %w", err)
	}
	return members, nil
}

func exclusionKey(recruiterID string) string {
	return "recruiter:" + recruiterID + ":anonymous"
}
