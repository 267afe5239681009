// Package worker runs the background processing pool. Each worker claims
// one job at a time, drives it through text extraction, LLM parsing, and
// publishing, and records the outcome on the job row.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/rightsledger/rights-parser/constants"
	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/internal/extractor"
	"github.com/rightsledger/rights-parser/internal/pdftext"
	"github.com/rightsledger/rights-parser/internal/publisher"
	"github.com/rightsledger/rights-parser/internal/repository"
	"github.com/rightsledger/rights-parser/internal/webhook"
)

// Config bounds the pool.
type Config struct {
	Count         int
	PollInterval  time.Duration
	MaxProcessing time.Duration
}

func (c *Config) applyDefaults() {
	if c.Count <= 0 {
		c.Count = 3
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.MaxProcessing <= 0 {
		c.MaxProcessing = 10 * time.Minute
	}
}

// Pool coordinates the worker goroutines.
type Pool struct {
	cfg      Config
	jobs     repository.JobRepository
	texts    pdftext.Extractor
	extract  *extractor.Orchestrator
	publish  *publisher.Publisher
	notifier *webhook.Dispatcher
	log      *slog.Logger
	wg       sync.WaitGroup
	idPrefix string
}

func NewPool(
	cfg Config,
	jobs repository.JobRepository,
	texts pdftext.Extractor,
	extract *extractor.Orchestrator,
	publish *publisher.Publisher,
	notifier *webhook.Dispatcher,
	logger *slog.Logger,
) *Pool {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	host, _ := os.Hostname()
	if host == "" {
		host = "worker"
	}
	return &Pool{
		cfg:      cfg,
		jobs:     jobs,
		texts:    texts,
		extract:  extract,
		publish:  publish,
		notifier: notifier,
		log:      logger,
		idPrefix: host,
	}
}

// Start launches the workers. They stop when ctx is canceled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Count; i++ {
		workerID := fmt.Sprintf("%s-%d", p.idPrefix, i)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx, workerID)
		}()
	}
	p.log.Info("worker.pool_started", "workers", p.cfg.Count, "poll_interval", p.cfg.PollInterval.String())
}

// Wait blocks until every worker has exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context, workerID string) {
	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		row, err := p.jobs.Claim(ctx, workerID)
		if err != nil {
			p.log.Error("worker.claim_failed", "worker_id", workerID, "error", err)
		}
		if row != nil {
			p.process(ctx, workerID, row)
			// drain the backlog before going back to sleep
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// process drives one claimed job to a terminal or retryable outcome.
func (p *Pool) process(ctx context.Context, workerID string, row *ent.Job) {
	jobCtx, cancel := context.WithTimeout(ctx, p.cfg.MaxProcessing)
	defer cancel()
	// terminal writes must land even when the job blew its deadline,
	// otherwise the row wedges in processing until stale reclaim
	storeCtx := context.WithoutCancel(ctx)

	log := p.log.With("worker_id", workerID, "job_id", row.ID.String(), "file_name", row.FileName)
	log.Info("worker.job_started", "retry_count", row.RetryCount)

	text, err := p.texts.ExtractText(jobCtx, row.FilePath)
	if err != nil {
		// unreadable documents will not improve with retries
		retryable := !errors.Is(err, pdftext.ErrTextTooShort)
		p.fail(storeCtx, row, fmt.Sprintf("text extraction: %v", err), retryable, log)
		return
	}

	parsed, err := p.extract.Extract(jobCtx, text)
	if err != nil {
		p.fail(storeCtx, row, fmt.Sprintf("llm extraction: %v", err), true, log)
		return
	}

	pub, err := p.publish.Publish(jobCtx, row.ID.String(), parsed)
	if err != nil {
		p.fail(storeCtx, row, fmt.Sprintf("publish: %v", err), true, log)
		return
	}

	result := repository.JobResult{
		IpfsCid:       pub.Cid,
		EncryptionKey: pub.EncodedKey,
		ParsedJSON:    parsed,
		ModelUsed:     p.extract.Model(),
	}
	if err := p.jobs.Complete(storeCtx, row.ID, result); err != nil {
		// a stale reclaim may have completed it elsewhere; nothing to undo
		log.Error("worker.complete_failed", "error", err)
		return
	}
	log.Info("worker.job_completed", "cid", pub.Cid)
	p.notify(row, string(constants.JobStatusCompleted), pub.Cid, pub.EncodedKey, "")
}

// fail records the failure and, when it turned out terminal, notifies the
// caller's webhook.
func (p *Pool) fail(ctx context.Context, row *ent.Job, msg string, retryable bool, log *slog.Logger) {
	if err := p.jobs.Fail(ctx, row.ID, msg, retryable); err != nil {
		log.Error("worker.fail_update_failed", "error", err)
		return
	}
	after, err := p.jobs.GetByID(ctx, row.ID)
	if err != nil {
		log.Error("worker.refetch_failed", "error", err)
		return
	}
	if after.Status == string(constants.JobStatusFailed) {
		p.notify(row, string(constants.JobStatusFailed), "", "", msg)
	}
}

func (p *Pool) notify(row *ent.Job, status, cid, key, errMsg string) {
	if p.notifier == nil || row.WebhookURL == nil || *row.WebhookURL == "" {
		return
	}
	p.notifier.Enqueue(row.ID, *row.WebhookURL, webhook.NewNotification(row.ID, status, cid, key, errMsg))
}
