// Package tei is a client for a self-hosted text-embeddings-inference style
// server. These servers are picky about payload schema and inconsistent in
// response envelope across versions, so the client supports a small set of
// payload variants and normalizes every known response shape into a flat
// vector.
package tei

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hireloop/swipematch/internal/datasources"
)

var _ datasources.Embedder = (*Client)(nil)

// PayloadVariant selects the request body schema.
type PayloadVariant int

const (
	// PayloadInputsString sends {"inputs": "<text>"}.
	PayloadInputsString PayloadVariant = iota
	// PayloadInputsArray sends {"inputs": ["<text>"]}.
	PayloadInputsArray
	// PayloadInputString sends {"input": "<text>"} (OpenAI-compatible servers).
	PayloadInputString
)

func (v PayloadVariant) String() string {
	switch v {
	case PayloadInputsString:
		return "inputs_string"
	case PayloadInputsArray:
		return "inputs_array"
	case PayloadInputString:
		return "input_string"
	default:
		return fmt.Sprintf("unknown_%d", int(v))
	}
}

// AllPayloadVariants is the order variants are tried in a fallback chain.
var AllPayloadVariants = []PayloadVariant{
	PayloadInputsString,
	PayloadInputsArray,
	PayloadInputString,
}

// Client embeds text using one payload variant against one endpoint.
type Client struct {
	endpoint   string
	variant    PayloadVariant
	httpClient *http.Client
}

// NewClient creates a client for the given embed endpoint and payload variant.
func NewClient(endpoint string, variant PayloadVariant) *Client {
	return &Client{
		endpoint:   endpoint,
		variant:    variant,
		httpClient: http.DefaultClient,
	}
}

// Variant reports which payload schema this client sends.
func (c *Client) Variant() PayloadVariant {
	return c.variant
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	body, err := c.requestBody(text)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding server error (status %d): %s", resp.StatusCode, string(respBody))
	}

	vector, err := normalizeResponse(respBody)
	if err != nil {
		return nil, fmt.Errorf("normalizing response: %w", err)
	}

	return vector, nil
}

func (c *Client) requestBody(text string) ([]byte, error) {
	switch c.variant {
	case PayloadInputsString:
		return json.Marshal(map[string]any{"inputs": text})
	case PayloadInputsArray:
		return json.Marshal(map[string]any{"inputs": []string{text}})
	case PayloadInputString:
		return json.Marshal(map[string]any{"input": text})
	default:
		return nil, fmt.Errorf("unknown payload variant [%d]", c.variant)
	}
}

// normalizeResponse flattens the known response envelopes into one vector:
// a bare array, a bare batched array, {"embedding": [...]},
// {"embeddings": [[...]]}, or OpenAI-style {"data": [{"embedding": [...]}]}.
func normalizeResponse(body []byte) ([]float32, error) {
	var bare []float32
	if err := json.Unmarshal(body, &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	var batched [][]float32
	if err := json.Unmarshal(body, &batched); err == nil && len(batched) > 0 && len(batched[0]) > 0 {
		return batched[0], nil
	}

	var envelope struct {
		Embedding  []float32   `json:"embedding"`
		Embeddings [][]float32 `json:"embeddings"`
		Data       []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("unrecognised response shape: %w", err)
	}

	switch {
	case len(envelope.Embedding) > 0:
		return envelope.Embedding, nil
	case len(envelope.Embeddings) > 0 && len(envelope.Embeddings[0]) > 0:
		return envelope.Embeddings[0], nil
	case len(envelope.Data) > 0 && len(envelope.Data[0].Embedding) > 0:
		return envelope.Data[0].Embedding, nil
	}

	return nil, fmt.Errorf("empty embedding response")
}

// Attempts returns one client per payload variant, in fallback order, all
// pointed at the same endpoint.
func Attempts(endpoint string) []*Client {
	clients := make([]*Client, 0, len(AllPayloadVariants))
	for _, variant := range AllPayloadVariants {
		clients = append(clients, NewClient(endpoint, variant))
	}
	return clients
}
