package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/gen/ent/usagelog"
)

// UsageLogRepository finalizes and reads the append-only audit records. Rows
// are created by the auth gate (see ApiKeyRepository.Authorize); nothing
// here ever deletes one.
type UsageLogRepository interface {
	// Finalize stamps the response status and latency on an in-flight row.
	Finalize(ctx context.Context, logID uuid.UUID, statusCode int, latency time.Duration, jobID *uuid.UUID) error
	ListForKey(ctx context.Context, apiKeyID uuid.UUID, from, to *time.Time) ([]*ent.UsageLog, error)
	CountSince(ctx context.Context, apiKeyID uuid.UUID, since time.Time) (int, error)
}

type usageLogRepo struct {
	client *ent.Client
	log    *slog.Logger
}

func NewUsageLogRepository(client *ent.Client, log *slog.Logger) UsageLogRepository {
	if log == nil {
		log = slog.Default()
	}
	return &usageLogRepo{client: client, log: log}
}

func (r *usageLogRepo) Finalize(ctx context.Context, logID uuid.UUID, statusCode int, latency time.Duration, jobID *uuid.UUID) error {
	upd := r.client.UsageLog.UpdateOneID(logID).
		SetStatusCode(statusCode).
		SetLatencyMs(latency.Milliseconds())
	if jobID != nil {
		upd = upd.SetJobID(*jobID)
	}
	if err := upd.Exec(ctx); err != nil {
		r.log.Error("usage log finalize failed", "log_id", logID, "error", err)
		return err
	}
	return nil
}

func (r *usageLogRepo) ListForKey(ctx context.Context, apiKeyID uuid.UUID, from, to *time.Time) ([]*ent.UsageLog, error) {
	q := r.client.UsageLog.Query().Where(usagelog.APIKeyIDEQ(apiKeyID))
	if from != nil {
		q = q.Where(usagelog.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(usagelog.CreatedAtLTE(*to))
	}
	return q.Order(ent.Asc(usagelog.FieldCreatedAt)).All(ctx)
}

func (r *usageLogRepo) CountSince(ctx context.Context, apiKeyID uuid.UUID, since time.Time) (int, error) {
	return r.client.UsageLog.Query().
		Where(usagelog.APIKeyIDEQ(apiKeyID), usagelog.CreatedAtGT(since)).
		Count(ctx)
}
