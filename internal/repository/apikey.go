package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/gen/ent/apikey"
	"github.com/rightsledger/rights-parser/gen/ent/usagelog"
	"github.com/rightsledger/rights-parser/internal/common"
)

// rejection statuses never consume rolling-window quota
var rejectionStatuses = []int{401, 403, 429}

// AccessMeta describes the request being admitted, for the audit row.
type AccessMeta struct {
	Endpoint  string
	Method    string
	ClientIP  string
	UserAgent string
	FileSize  int64
}

// ApiKeyRepository is the auth gate: it validates a presented key, enforces
// the rolling-hour rate limit, and appends the per-request audit row. The
// key row is locked before the quota check and released only on commit, so
// concurrent requests cannot slip past the limit together.
type ApiKeyRepository interface {
	// Authorize validates rawKey and admits or rejects the request. A
	// UsageLog row is appended either way; its id is returned so the
	// caller can finalize status and latency after the response.
	Authorize(ctx context.Context, rawKey string, meta AccessMeta) (*ent.ApiKey, uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ApiKey, error)
}

type apiKeyRepo struct {
	client *ent.Client
	log    *slog.Logger
}

func NewApiKeyRepository(client *ent.Client, log *slog.Logger) ApiKeyRepository {
	if log == nil {
		log = slog.Default()
	}
	return &apiKeyRepo{client: client, log: log}
}

// HashKey returns the hex SHA-256 of a raw API key. The clear secret is
// never stored.
func HashKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// KeyPrefix returns the short non-secret display prefix of a raw key.
func KeyPrefix(raw string) string {
	if len(raw) <= 8 {
		return raw
	}
	return raw[:8]
}

func (r *apiKeyRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ApiKey, error) {
	return r.client.ApiKey.Get(ctx, id)
}

func (r *apiKeyRepo) Authorize(ctx context.Context, rawKey string, meta AccessMeta) (*ent.ApiKey, uuid.UUID, error) {
	now := time.Now()
	hash := HashKey(rawKey)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, uuid.Nil, common.WrapError(err, "begin auth tx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	key, err := tx.ApiKey.Query().Where(apikey.KeyHashEQ(hash)).Only(ctx)
	if ent.IsNotFound(err) {
		err = nil
		_ = tx.Rollback()
		logID, aerr := r.appendRejection(ctx, nil, meta, 401, now)
		if aerr != nil {
			return nil, uuid.Nil, aerr
		}
		r.log.Warn("unknown api key presented", "endpoint", meta.Endpoint, "client_ip", meta.ClientIP)
		return nil, logID, common.ErrUnauthorized
	}
	if err != nil {
		return nil, uuid.Nil, err
	}

	if !key.IsActive || (key.ExpiresAt != nil && now.After(*key.ExpiresAt)) {
		_ = tx.Rollback()
		logID, aerr := r.appendRejection(ctx, &key.ID, meta, 403, now)
		if aerr != nil {
			return nil, uuid.Nil, aerr
		}
		r.log.Warn("inactive or expired api key", "key_prefix", key.KeyPrefix, "endpoint", meta.Endpoint)
		return nil, logID, common.ErrForbidden
	}

	// Lock the key row before counting. The update blocks a concurrent
	// Authorize for the same key until this transaction commits, so the
	// window count below always sees that transaction's admission row.
	// A rejection rolls the increment back.
	if err = tx.ApiKey.UpdateOneID(key.ID).
		AddRequestCount(1).
		SetLastUsedAt(now).
		Exec(ctx); err != nil {
		return nil, uuid.Nil, err
	}

	// rolling window: requests in (now-1h, now] that the gate admitted
	windowStart := now.Add(-time.Hour)
	count, err := tx.UsageLog.Query().
		Where(
			usagelog.APIKeyIDEQ(key.ID),
			usagelog.CreatedAtGT(windowStart),
			usagelog.StatusCodeNotIn(rejectionStatuses...),
		).
		Count(ctx)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if count >= key.RateLimit {
		_ = tx.Rollback()
		logID, aerr := r.appendRejection(ctx, &key.ID, meta, 429, now)
		if aerr != nil {
			return nil, uuid.Nil, aerr
		}
		r.log.Warn("rate limit exceeded", "key_prefix", key.KeyPrefix, "limit", key.RateLimit)
		return nil, logID, common.ErrRateLimited
	}

	// admit: the in-flight row (status 0) occupies quota immediately
	row, err := tx.UsageLog.Create().
		SetAPIKeyID(key.ID).
		SetEndpoint(meta.Endpoint).
		SetMethod(meta.Method).
		SetClientIP(meta.ClientIP).
		SetUserAgent(meta.UserAgent).
		SetFileSize(meta.FileSize).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, uuid.Nil, err
	}
	return key, row.ID, nil
}

// appendRejection writes the audit row for a rejected request. It runs
// outside the auth transaction, which the caller has already rolled back.
func (r *apiKeyRepo) appendRejection(ctx context.Context, keyID *uuid.UUID, meta AccessMeta, status int, now time.Time) (uuid.UUID, error) {
	row, err := r.client.UsageLog.Create().
		SetNillableAPIKeyID(keyID).
		SetEndpoint(meta.Endpoint).
		SetMethod(meta.Method).
		SetStatusCode(status).
		SetClientIP(meta.ClientIP).
		SetUserAgent(meta.UserAgent).
		SetFileSize(meta.FileSize).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}
