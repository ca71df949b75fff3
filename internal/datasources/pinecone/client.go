package pinecone

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

const (
	jobNamespace       = "jobs"
	candidateNamespace = "candidates"

	maxQueryLimit = 10000
)

var _ datasources.VectorIndex = (*Client)(nil)

// Client stores candidate and job vectors in a pinecone index, one namespace
// per record kind, one vector per record keyed by record ID.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) UpsertCandidateVector(ctx context.Context, candidateID string, vector []float32) error {
	return c.upsert(ctx, candidateNamespace, candidateID, vector)
}

func (c *Client) UpsertJobVector(ctx context.Context, jobID string, vector []float32) error {
	return c.upsert(ctx, jobNamespace, jobID, vector)
}

func (c *Client) upsert(ctx context.Context, namespace, id string, vector []float32) error {
	if len(vector) == 0 {
		return fmt.Errorf("refusing to upsert empty vector for [%s]", id)
	}

	idxConn, err := c.connect(namespace)
	if err != nil {
		return err
	}
	defer closeConn(idxConn)

	metadata, err := structpb.NewStruct(map[string]any{"record_id": id})
	if err != nil {
		return fmt.Errorf("creating vector metadata: %w", err)
	}

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{
		{
			Id:       id,
			Values:   vector,
			Metadata: metadata,
		},
	})
	if err != nil {
		return fmt.Errorf("upserting vector for [%s]: %w", id, err)
	}

	return nil
}

// ListRankedJobs returns jobs ordered by similarity to the given vector. The
// index's ordering is trusted as-is.
func (c *Client) ListRankedJobs(
	ctx context.Context,
	vector []float32,
	limit int,
) ([]domain.RankedJob, error) {
	matches, err := c.query(ctx, jobNamespace, vector, nil, limit)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedJob, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, domain.RankedJob{
			JobID:      m.Vector.Id,
			Similarity: float64(m.Score),
		})
	}
	return ranked, nil
}

// ListRankedCandidates returns candidates ordered by similarity to the given
// vector. Excluded candidate IDs never appear in results; the filtering
// happens index-side via a metadata filter.
func (c *Client) ListRankedCandidates(
	ctx context.Context,
	vector []float32,
	excludeCandidateIDs []string,
	limit int,
) ([]domain.RankedCandidate, error) {
	var filter *pinecone.MetadataFilter
	if len(excludeCandidateIDs) > 0 {
		var err error
		filter, err = exclusionFilter(excludeCandidateIDs)
		if err != nil {
			return nil, err
		}
	}

	matches, err := c.query(ctx, candidateNamespace, vector, filter, limit)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedCandidate, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, domain.RankedCandidate{
			CandidateID: m.Vector.Id,
			Similarity:  float64(m.Score),
		})
	}
	return ranked, nil
}

func (c *Client) query(
	ctx context.Context,
	namespace string,
	vector []float32,
	filter *pinecone.MetadataFilter,
	limit int,
) ([]*pinecone.ScoredVector, error) {
	if limit > maxQueryLimit {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if len(vector) == 0 {
		return nil, nil
	}

	idxConn, err := c.connect(namespace)
	if err != nil {
		return nil, err
	}
	defer closeConn(idxConn)

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(limit),
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	return resp.Matches, nil
}

func (c *Client) connect(namespace string) (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func closeConn(idxConn *pinecone.IndexConnection) {
	if closeErr := idxConn.Close(); closeErr != nil {
		_ = closeErr
	}
}

func exclusionFilter(excludeIDs []string) (*pinecone.MetadataFilter, error) {
	ids := make([]any, 0, len(excludeIDs))
	for _, id := range excludeIDs {
		ids = append(ids, id)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"record_id": map[string]any{
			"$nin": ids,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating exclusion metadata filter: %w", err)
	}
	return filter, nil
}
