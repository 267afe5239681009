package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsExpectedRequest(t *testing.T) {
	var captured generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(generateResponse{
			Model:    "llama3",
			Response: `{"parties": null}`,
			Done:     true,
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3", Temperature: 0.05, NumPredict: 4096}, nil)
	out, err := c.Generate(context.Background(), "extract the deal terms")
	require.NoError(t, err)
	assert.Equal(t, `{"parties": null}`, out)

	assert.Equal(t, "llama3", captured.Model)
	assert.Equal(t, "extract the deal terms", captured.Prompt)
	assert.False(t, captured.Stream)
	assert.Equal(t, "json", captured.Format)
	assert.InDelta(t, 0.05, captured.Options["temperature"], 1e-9)
	assert.EqualValues(t, 4096, captured.Options["num_predict"])
}

func TestGenerateNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "404")
}

func TestGenerateUnreachableEngine(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, nil)
	_, err := c.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{}, nil)
	assert.Equal(t, "llama3", c.Model())
	assert.Equal(t, "http://localhost:11434", c.cfg.BaseURL)
	assert.InDelta(t, 0.05, c.cfg.Temperature, 1e-9)
	assert.Equal(t, 4096, c.cfg.NumPredict)
}
