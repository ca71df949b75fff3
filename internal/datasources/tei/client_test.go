package tei

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_PayloadVariants(t *testing.T) {
	cases := []struct {
		name     string
		variant  PayloadVariant
		wantBody map[string]any
	}{
		{
			name:     "inputs_string",
			variant:  PayloadInputsString,
			wantBody: map[string]any{"inputs": "hello"},
		},
		{
			name:     "inputs_array",
			variant:  PayloadInputsArray,
			wantBody: map[string]any{"inputs": []any{"hello"}},
		},
		{
			name:     "input_string",
			variant:  PayloadInputString,
			wantBody: map[string]any{"input": "hello"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotBody map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
				_, _ = w.Write([]byte(`[[0.1, 0.2]]`))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, tc.variant)
			vector, err := client.EmbedText(context.Background(), "hello")

			require.NoError(t, err)
			assert.Equal(t, []float32{0.1, 0.2}, vector)
			assert.Equal(t, tc.wantBody, gotBody)
		})
	}
}

func TestClient_NormalizesResponseShapes(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     []float32
	}{
		{
			name:     "bare_array",
			response: `[0.1, 0.2, 0.3]`,
			want:     []float32{0.1, 0.2, 0.3},
		},
		{
			name:     "bare_batched_array",
			response: `[[0.4, 0.5]]`,
			want:     []float32{0.4, 0.5},
		},
		{
			name:     "embedding_field",
			response: `{"embedding": [0.6]}`,
			want:     []float32{0.6},
		},
		{
			name:     "embeddings_field",
			response: `{"embeddings": [[0.7, 0.8]]}`,
			want:     []float32{0.7, 0.8},
		},
		{
			name:     "openai_style_data",
			response: `{"data": [{"embedding": [0.9]}]}`,
			want:     []float32{0.9},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, PayloadInputsString)
			vector, err := client.EmbedText(context.Background(), "hello")

			require.NoError(t, err)
			assert.Equal(t, tc.want, vector)
		})
	}
}

func TestClient_ErrorResponses(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		response string
		wantErr  string
	}{
		{
			name:     "server_error",
			status:   http.StatusUnprocessableEntity,
			response: `{"error": "bad schema"}`,
			wantErr:  "embedding server error",
		},
		{
			name:     "empty_response_shape",
			status:   http.StatusOK,
			response: `{}`,
			wantErr:  "empty embedding response",
		},
		{
			name:     "unparseable_response",
			status:   http.StatusOK,
			response: `not json`,
			wantErr:  "unrecognised response shape",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, PayloadInputsString)
			_, err := client.EmbedText(context.Background(), "hello")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAttempts_OnePerVariant(t *testing.T) {
	clients := Attempts("http://embed.internal/embed")
	require.Len(t, clients, len(AllPayloadVariants))
	for i, client := range clients {
		assert.Equal(t, AllPayloadVariants[i], client.variant)
	}
}
