// Package gemini embeds text using the Gemini embedding API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hireloop/swipematch/internal/datasources"
)

const defaultModel = "gemini-embedding-001"

var _ datasources.Embedder = (*Client)(nil)

// Client embeds text using the Gemini API backend.
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a Gemini embedding client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{client: client, modelName: model}, nil
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.Models.EmbedContent(ctx, c.modelName, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embedding content: %w", err)
	}

	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("empty embedding response")
	}

	return resp.Embeddings[0].Values, nil
}
