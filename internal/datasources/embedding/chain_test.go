package embedding

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/domain"
)

type stubEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (s *stubEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	s.calls++
	return s.vector, s.err
}

func testCtx() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestChain_FirstSuccessWins(t *testing.T) {
	first := &stubEmbedder{vector: []float32{0.1, 0.2}}
	second := &stubEmbedder{vector: []float32{0.9}}

	chain := New(
		Attempt{Name: "first", Embedder: first},
		Attempt{Name: "second", Embedder: second},
	)

	vector, err := chain.EmbedText(testCtx(), "some text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, vector)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later attempts not tried after success")
}

func TestChain_FallsThroughFailuresAndEmptyVectors(t *testing.T) {
	cases := []struct {
		name  string
		first *stubEmbedder
	}{
		{
			name:  "provider_error",
			first: &stubEmbedder{err: errors.New("upstream 500")},
		},
		{
			name:  "empty_vector",
			first: &stubEmbedder{vector: []float32{}},
		},
		{
			name:  "nil_vector",
			first: &stubEmbedder{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			second := &stubEmbedder{vector: []float32{1.0}}
			chain := New(
				Attempt{Name: "first", Embedder: tc.first},
				Attempt{Name: "second", Embedder: second},
			)

			vector, err := chain.EmbedText(testCtx(), "some text")
			require.NoError(t, err)
			assert.Equal(t, []float32{1.0}, vector)
		})
	}
}

func TestChain_AllExhaustedReturnsEmbeddingUnavailable(t *testing.T) {
	chain := New(
		Attempt{Name: "first", Embedder: &stubEmbedder{err: errors.New("down")}},
		Attempt{Name: "second", Embedder: &stubEmbedder{}},
	)

	_, err := chain.EmbedText(testCtx(), "some text")
	require.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
}

func TestChain_AttemptBudgetCapped(t *testing.T) {
	failing := &stubEmbedder{err: errors.New("down")}
	late := &stubEmbedder{vector: []float32{1.0}}

	chain := &Chain{
		Attempts: []Attempt{
			{Name: "a", Embedder: failing},
			{Name: "b", Embedder: failing},
			{Name: "late", Embedder: late},
		},
		MaxAttempts: 2,
	}

	_, err := chain.EmbedText(testCtx(), "some text")
	require.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
	assert.Equal(t, 0, late.calls, "attempts beyond the budget are never tried")
	assert.Equal(t, 2, failing.calls)
}

func TestChain_ImplementsEmbedder(t *testing.T) {
	var _ datasources.Embedder = New()
}
