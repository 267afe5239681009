// Package webhook delivers job completion notices to caller-supplied URLs.
// Deliveries run on a small worker pool fed by a buffered queue; transient
// failures retry with exponential backoff up to a configured attempt cap.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rightsledger/rights-parser/internal/repository"
)

// Notification is the payload POSTed to the caller's webhook URL.
type Notification struct {
	JobID         string `json:"job_id"`
	Status        string `json:"status"`
	IpfsCid       string `json:"ipfs_cid,omitempty"`
	EncryptionKey string `json:"encryption_key,omitempty"`
	Error         string `json:"error_message,omitempty"`
	Timestamp     string `json:"timestamp"`
}

type delivery struct {
	jobID uuid.UUID
	url   string
	note  Notification
}

// Config bounds delivery behavior.
type Config struct {
	MaxAttempts int
	Timeout     time.Duration
	BackoffBase time.Duration
	QueueSize   int
	Workers     int
}

func (c *Config) applyDefaults() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.BackoffBase <= 0 {
		c.BackoffBase = 2 * time.Second
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
	if c.Workers <= 0 {
		c.Workers = 2
	}
}

// Dispatcher owns the delivery queue and its workers.
type Dispatcher struct {
	cfg   Config
	jobs  repository.JobRepository
	http  *http.Client
	queue chan delivery
	log   *slog.Logger
	wg    sync.WaitGroup
}

func NewDispatcher(cfg Config, jobs repository.JobRepository, logger *slog.Logger) *Dispatcher {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		cfg:   cfg,
		jobs:  jobs,
		http:  &http.Client{Timeout: cfg.Timeout},
		queue: make(chan delivery, cfg.QueueSize),
		log:   logger,
	}
}

// Start launches the delivery workers. They drain until ctx is canceled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case del := <-d.queue:
					d.deliver(ctx, del)
				}
			}
		}()
	}
}

// Wait blocks until all delivery workers have exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue schedules a notification. A full queue drops the delivery rather
// than blocking the caller; the job row keeps webhook_sent false so an
// operator can spot the gap.
func (d *Dispatcher) Enqueue(jobID uuid.UUID, url string, note Notification) {
	if url == "" {
		return
	}
	select {
	case d.queue <- delivery{jobID: jobID, url: url, note: note}:
	default:
		d.log.Warn("webhook.queue_full", "job_id", jobID.String(), "url", url)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, del delivery) {
	var lastErr error
	for attempt := 1; attempt <= d.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			backoff := d.cfg.BackoffBase * time.Duration(1<<(attempt-2))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
		}
		lastErr = d.post(ctx, del)
		if lastErr == nil {
			if err := d.jobs.MarkWebhookSent(ctx, del.jobID); err != nil {
				d.log.Error("webhook.mark_sent_failed", "job_id", del.jobID.String(), "error", err)
			}
			d.log.Info("webhook.delivered", "job_id", del.jobID.String(), "url", del.url, "attempt", attempt)
			return
		}
		d.log.Warn("webhook.attempt_failed",
			"job_id", del.jobID.String(), "url", del.url,
			"attempt", attempt, "error", lastErr)
	}
	d.log.Error("webhook.exhausted",
		"job_id", del.jobID.String(), "url", del.url,
		"attempts", d.cfg.MaxAttempts, "error", lastErr)
}

func (d *Dispatcher) post(ctx context.Context, del delivery) error {
	body, err := json.Marshal(del.note)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, del.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}

// NewNotification stamps a notification with the current UTC time.
func NewNotification(jobID uuid.UUID, status, cid, key, errMsg string) Notification {
	return Notification{
		JobID:         jobID.String(),
		Status:        status,
		IpfsCid:       cid,
		EncryptionKey: key,
		Error:         errMsg,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}
