package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rightsledger/rights-parser/internal/llm"
)

// ExtractionError reports that every attempt against the engine produced
// either an error or output that failed validation. It is retryable at the
// job level even though the call-level budget is spent.
type ExtractionError struct {
	Attempts int
	Last     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExtractionError) Unwrap() error { return e.Last }

// Config holds call-level bounds. MaxAttempts is independent of the job
// store's retry_count, which tracks job-level attempts.
type Config struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	MaxPromptChars int
}

// Orchestrator drives the text-to-structured-JSON call against the engine,
// validating each attempt and retrying malformed output with a fresh call.
type Orchestrator struct {
	engine llm.TextGenerator
	cfg    Config
	log    *slog.Logger
}

func New(engine llm.TextGenerator, cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 120 * time.Second
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = 10000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{engine: engine, cfg: cfg, log: logger}
}

// Model returns the engine's pinned model identifier, recorded on each job.
func (o *Orchestrator) Model() string { return o.engine.Model() }

// Extract runs up to MaxAttempts engine calls and returns the first
// response that parses as a well-formed agreement object. Each attempt
// carries its own timeout; a timed-out call counts against the budget like
// any other malformed attempt.
func (o *Orchestrator) Extract(ctx context.Context, agreementText string) (json.RawMessage, error) {
	schema := llm.BuildAgreementJSONSchema()
	prompt := llm.BuildExtractionPrompt(agreementText, o.cfg.MaxPromptChars)

	var lastErr error
	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			if lastErr == nil {
				lastErr = ctx.Err()
			}
			break
		}

		doc, err := o.attempt(ctx, prompt, schema)
		if err == nil {
			o.log.Info("extractor.ok", "attempt", attempt, "bytes", len(doc))
			return doc, nil
		}
		lastErr = err
		o.log.Warn("extractor.attempt_failed",
			"attempt", attempt,
			"max_attempts", o.cfg.MaxAttempts,
			"error", err,
		)
	}
	return nil, &ExtractionError{Attempts: o.cfg.MaxAttempts, Last: lastErr}
}

func (o *Orchestrator) attempt(ctx context.Context, prompt string, schema map[string]any) (json.RawMessage, error) {
	actx, cancel := context.WithTimeout(ctx, o.cfg.AttemptTimeout)
	defer cancel()

	raw, err := o.engine.Generate(actx, prompt)
	if err != nil {
		return nil, fmt.Errorf("engine call: %w", err)
	}

	block, err := llm.ExtractJSONBlock(raw)
	if err != nil {
		return nil, fmt.Errorf("carve json: %w", err)
	}
	doc, _, err := llm.NormalizeAgreementJSON([]byte(block), o.log)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	if err := llm.ValidateJSONAgainstSchema(schema, doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return doc, nil
}
