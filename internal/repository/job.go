package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rightsledger/rights-parser/constants"
	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/gen/ent/job"
)

// ErrInvalidTransition is returned when a status change is attempted from a
// state that does not permit it (terminal states, or pending skipping
// straight to a terminal state). It signals a programming error in the
// caller, not a runtime condition to retry.
var ErrInvalidTransition = errors.New("invalid job status transition")

// claimScanLimit bounds how many lost races a single Claim call absorbs
// before reporting no eligible job.
const claimScanLimit = 5

// CreateJobRequest wraps parameters for creating a job.
type CreateJobRequest struct {
	APIKeyID   uuid.UUID
	UserID     *string
	FileName   string
	FilePath   string
	FileSize   int64
	WebhookURL *string
}

// JobResult carries the terminal artifacts of a successfully processed job.
type JobResult struct {
	IpfsCid       string
	EncryptionKey string
	ParsedJSON    json.RawMessage
	ModelUsed     string
}

// JobRepository is the single source of truth for job status transitions.
// All cross-worker coordination happens through Claim's conditional update.
type JobRepository interface {
	Create(ctx context.Context, req CreateJobRequest) (*ent.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error)
	GetOwned(ctx context.Context, id, apiKeyID uuid.UUID) (*ent.Job, error)
	ListForKey(ctx context.Context, apiKeyID uuid.UUID, limit int) ([]*ent.Job, error)
	Claim(ctx context.Context, workerID string) (*ent.Job, error)
	Complete(ctx context.Context, jobID uuid.UUID, result JobResult) error
	Fail(ctx context.Context, jobID uuid.UUID, errMsg string, retryable bool) error
	MarkWebhookSent(ctx context.Context, jobID uuid.UUID) error
}

// JobConfig holds the store-level bounds for retries and claim duration.
type JobConfig struct {
	MaxRetries    int
	MaxProcessing time.Duration
}

type jobRepo struct {
	client *ent.Client
	cfg    JobConfig
	log    *slog.Logger
}

func NewJobRepository(client *ent.Client, cfg JobConfig, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	if cfg.MaxProcessing <= 0 {
		cfg.MaxProcessing = 10 * time.Minute
	}
	return &jobRepo{client: client, cfg: cfg, log: log}
}

func (r *jobRepo) Create(ctx context.Context, req CreateJobRequest) (*ent.Job, error) {
	row, err := r.client.Job.Create().
		SetAPIKeyID(req.APIKeyID).
		SetNillableUserID(req.UserID).
		SetFileName(req.FileName).
		SetFilePath(req.FilePath).
		SetFileSize(req.FileSize).
		SetStatus(string(constants.JobStatusPending)).
		SetNillableWebhookURL(req.WebhookURL).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "file_name", req.FileName, "error", err)
		return nil, err
	}
	r.log.Info("job created", "job_id", row.ID, "file_name", req.FileName, "file_size", req.FileSize)
	return row, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	return r.client.Job.Get(ctx, id)
}

func (r *jobRepo) GetOwned(ctx context.Context, id, apiKeyID uuid.UUID) (*ent.Job, error) {
	return r.client.Job.Query().
		Where(job.IDEQ(id), job.APIKeyIDEQ(apiKeyID)).
		Only(ctx)
}

func (r *jobRepo) ListForKey(ctx context.Context, apiKeyID uuid.UUID, limit int) ([]*ent.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.client.Job.Query().
		Where(job.APIKeyIDEQ(apiKeyID)).
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// Claim atomically takes ownership of one eligible job: the oldest pending
// row, or a processing row whose claim has gone stale (worker crashed or
// exceeded the max processing window). The conditional update on the
// observed status guarantees a single winner under concurrent contention;
// a lost race just moves on to the next candidate.
func (r *jobRepo) Claim(ctx context.Context, workerID string) (*ent.Job, error) {
	now := time.Now()
	cutoff := now.Add(-r.cfg.MaxProcessing)

	for attempt := 0; attempt < claimScanLimit; attempt++ {
		cand, err := r.client.Job.Query().
			Where(job.Or(
				job.StatusEQ(string(constants.JobStatusPending)),
				job.And(
					job.StatusEQ(string(constants.JobStatusProcessing)),
					job.StartedAtLT(cutoff),
				),
			)).
			Order(ent.Asc(job.FieldCreatedAt)).
			First(ctx)
		if ent.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		upd := r.client.Job.Update().
			Where(job.IDEQ(cand.ID), job.StatusEQ(cand.Status))
		if cand.Status == string(constants.JobStatusProcessing) {
			// stale reclaim: the row must still look abandoned
			upd = upd.Where(job.StartedAtLT(cutoff))
		}
		n, err := upd.
			SetStatus(string(constants.JobStatusProcessing)).
			SetStartedAt(now).
			SetWorkerID(workerID).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// another worker won this row
			continue
		}
		if cand.Status == string(constants.JobStatusProcessing) {
			r.log.Warn("reclaimed stale job", "job_id", cand.ID, "worker_id", workerID, "previous_worker", cand.WorkerID)
		}
		return r.client.Job.Get(ctx, cand.ID)
	}
	return nil, nil
}

// Complete moves a processing job to completed and records its artifacts.
// Valid only from processing.
func (r *jobRepo) Complete(ctx context.Context, jobID uuid.UUID, result JobResult) error {
	row, err := r.client.Job.Get(ctx, jobID)
	if err != nil {
		return err
	}
	now := time.Now()
	var elapsed int64
	if row.StartedAt != nil {
		elapsed = now.Sub(*row.StartedAt).Milliseconds()
	}

	n, err := r.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusCompleted)).
		SetCompletedAt(now).
		SetProcessingTimeMs(elapsed).
		SetIpfsCid(result.IpfsCid).
		SetEncryptionKey(result.EncryptionKey).
		SetParsedJSON(result.ParsedJSON).
		SetModelUsed(result.ModelUsed).
		Save(ctx)
	if err != nil {
		r.log.Error("job complete failed", "job_id", jobID, "error", err)
		return err
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	r.log.Info("job completed", "job_id", jobID, "ipfs_cid", result.IpfsCid, "elapsed_ms", elapsed)
	return nil
}

// Fail records a failure for a processing job. Retryable failures return the
// job to pending (incrementing retry_count) while the retry budget lasts;
// anything else is terminal.
func (r *jobRepo) Fail(ctx context.Context, jobID uuid.UUID, errMsg string, retryable bool) error {
	if retryable {
		n, err := r.client.Job.Update().
			Where(
				job.IDEQ(jobID),
				job.StatusEQ(string(constants.JobStatusProcessing)),
				job.RetryCountLT(r.cfg.MaxRetries),
			).
			SetStatus(string(constants.JobStatusPending)).
			AddRetryCount(1).
			SetErrorMessage(errMsg).
			ClearStartedAt().
			ClearWorkerID().
			Save(ctx)
		if err != nil {
			return err
		}
		if n == 1 {
			r.log.Warn("job requeued for retry", "job_id", jobID, "error", errMsg)
			return nil
		}
		// retry budget exhausted; fall through to terminal failure
	}

	n, err := r.client.Job.Update().
		Where(job.IDEQ(jobID), job.StatusEQ(string(constants.JobStatusProcessing))).
		SetStatus(string(constants.JobStatusFailed)).
		SetCompletedAt(time.Now()).
		SetErrorMessage(errMsg).
		Save(ctx)
	if err != nil {
		r.log.Error("job fail update failed", "job_id", jobID, "error", err)
		return err
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	r.log.Warn("job failed", "job_id", jobID, "error", errMsg)
	return nil
}

// MarkWebhookSent flips webhook_sent after an acknowledged delivery. The
// flag only ever goes false -> true.
func (r *jobRepo) MarkWebhookSent(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.client.Job.Update().
		Where(job.IDEQ(jobID), job.WebhookSent(false)).
		SetWebhookSent(true).
		Save(ctx)
	return err
}
