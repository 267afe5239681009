package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedEngine replays canned responses, one per Generate call.
type scriptedEngine struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedEngine) Generate(ctx context.Context, prompt string) (string, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", errors.New("script exhausted")
}

func (s *scriptedEngine) Model() string { return "llama3-test" }

type blockingEngine struct{}

func (blockingEngine) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (blockingEngine) Model() string { return "llama3-test" }

const validResponse = `{"parties": {"licensor": {"name": "Sony Pictures"}}, "territories": ["INDIA"], "media_rights": ["SVOD"]}`

func TestExtractFirstAttemptSucceeds(t *testing.T) {
	engine := &scriptedEngine{responses: []string{validResponse}}
	o := New(engine, Config{MaxAttempts: 3, AttemptTimeout: time.Second}, nil)

	doc, err := o.Extract(context.Background(), "agreement text")
	require.NoError(t, err)
	assert.Equal(t, 1, engine.calls)

	var m map[string]any
	require.NoError(t, json.Unmarshal(doc, &m))
	assert.Equal(t, []any{"INDIA"}, m["territories"])
	// missing required keys arrive as explicit nulls
	v, ok := m["financial"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestExtractRetriesMalformedOutput(t *testing.T) {
	engine := &scriptedEngine{responses: []string{
		"I could not parse that document.",
		"```json\n" + validResponse + "\n```",
	}}
	o := New(engine, Config{MaxAttempts: 3, AttemptTimeout: time.Second}, nil)

	doc, err := o.Extract(context.Background(), "agreement text")
	require.NoError(t, err)
	assert.Equal(t, 2, engine.calls)
	assert.NotEmpty(t, doc)
}

func TestExtractExhaustsBudget(t *testing.T) {
	engine := &scriptedEngine{responses: []string{"garbage", "garbage", "garbage"}}
	o := New(engine, Config{MaxAttempts: 3, AttemptTimeout: time.Second}, nil)

	_, err := o.Extract(context.Background(), "agreement text")
	require.Error(t, err)
	assert.Equal(t, 3, engine.calls)

	var exhausted *ExtractionError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Attempts)
	assert.NotNil(t, exhausted.Last)
}

func TestExtractEngineErrorsCountAgainstBudget(t *testing.T) {
	engine := &scriptedEngine{
		errs:      []error{errors.New("connection refused"), nil},
		responses: []string{"", validResponse},
	}
	o := New(engine, Config{MaxAttempts: 2, AttemptTimeout: time.Second}, nil)

	_, err := o.Extract(context.Background(), "agreement text")
	require.NoError(t, err)
	assert.Equal(t, 2, engine.calls)
}

func TestExtractAttemptTimeout(t *testing.T) {
	o := New(blockingEngine{}, Config{MaxAttempts: 2, AttemptTimeout: 20 * time.Millisecond}, nil)

	start := time.Now()
	_, err := o.Extract(context.Background(), "agreement text")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	var exhausted *ExtractionError
	require.ErrorAs(t, err, &exhausted)
	assert.ErrorIs(t, exhausted.Last, context.DeadlineExceeded)
}

func TestExtractStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := &scriptedEngine{responses: []string{validResponse}}
	o := New(engine, Config{MaxAttempts: 3, AttemptTimeout: time.Second}, nil)

	_, err := o.Extract(ctx, "agreement text")
	require.Error(t, err)
	assert.Equal(t, 0, engine.calls)
}
