package common

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.InDelta(t, 0.05, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, 10000, cfg.LLM.MaxPromptChars)
	assert.Equal(t, 3, cfg.Worker.Count)
	assert.Equal(t, 5*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 3, cfg.Worker.MaxRetries)
	assert.Equal(t, 10*time.Minute, cfg.Worker.MaxProcessing)
	assert.Equal(t, 5, cfg.Webhook.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Webhook.Timeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OLLAMA_MODEL", "rights-extractor:7b")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("WORKER_POLL_INTERVAL", "250ms")
	t.Setenv("JOB_MAX_RETRIES", "1")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "rights-extractor:7b", cfg.LLM.Model)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 8, cfg.Worker.Count)
	assert.Equal(t, 250*time.Millisecond, cfg.Worker.PollInterval)
	assert.Equal(t, 1, cfg.Worker.MaxRetries)
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	broken := *cfg
	broken.Database.DSN = ""
	broken.Database.SQLitePath = ""
	assert.Error(t, broken.Validate())

	broken = *cfg
	broken.Worker.Count = 0
	assert.Error(t, broken.Validate())

	broken = *cfg
	broken.Worker.MaxRetries = -1
	assert.Error(t, broken.Validate())
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantKind string
	}{
		{ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{ErrForbidden, http.StatusForbidden, "forbidden"},
		{ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{ErrInvalidInput, http.StatusBadRequest, "bad_request"},
		{ErrNotFound, http.StatusNotFound, "not_found"},
		{ErrInternal, http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		code, kind := ErrorKind(tt.err)
		assert.Equal(t, tt.wantCode, code)
		assert.Equal(t, tt.wantKind, kind)
	}

	// wrapped sentinels keep their kind
	wrapped := NewAppError("UPLOAD_ERROR", "bad extension", ErrInvalidInput)
	code, kind := ErrorKind(wrapped)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad_request", kind)
}
