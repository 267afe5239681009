package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/gen/ent/usagelog"
	"github.com/rightsledger/rights-parser/internal/common"
)

func testMeta() AccessMeta {
	return AccessMeta{
		Endpoint:  "/api/parse",
		Method:    "POST",
		ClientIP:  "203.0.113.7",
		UserAgent: "test-client/1.0",
		FileSize:  2048,
	}
}

func createRawKey(t *testing.T, client *ent.Client, rateLimit int) (string, *ent.ApiKey) {
	t.Helper()
	raw := "rk_" + uuid.NewString()
	key, err := client.ApiKey.Create().
		SetKeyHash(HashKey(raw)).
		SetKeyPrefix(KeyPrefix(raw)).
		SetOwnerName("test-owner").
		SetRateLimit(rateLimit).
		Save(context.Background())
	require.NoError(t, err)
	return raw, key
}

func TestAuthorizeAdmitsValidKey(t *testing.T) {
	client := newTestClient(t)
	raw, created := createRawKey(t, client, 100)
	repo := NewApiKeyRepository(client, testLogger())

	key, logID, err := repo.Authorize(context.Background(), raw, testMeta())
	require.NoError(t, err)
	require.NotNil(t, key)
	assert.Equal(t, created.ID, key.ID)
	assert.NotEqual(t, uuid.Nil, logID)

	// the admission row is in flight until finalized
	row, err := client.UsageLog.Get(context.Background(), logID)
	require.NoError(t, err)
	assert.Equal(t, 0, row.StatusCode)
	assert.Equal(t, "/api/parse", row.Endpoint)
	assert.Equal(t, int64(2048), row.FileSize)

	after, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after.RequestCount)
	assert.NotNil(t, after.LastUsedAt)
}

func TestAuthorizeUnknownKey(t *testing.T) {
	client := newTestClient(t)
	repo := NewApiKeyRepository(client, testLogger())

	key, logID, err := repo.Authorize(context.Background(), "rk_nope", testMeta())
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Nil(t, key)

	row, rerr := client.UsageLog.Get(context.Background(), logID)
	require.NoError(t, rerr)
	assert.Equal(t, 401, row.StatusCode)
	assert.Nil(t, row.APIKeyID)
}

func TestAuthorizeInactiveKey(t *testing.T) {
	client := newTestClient(t)
	raw, created := createRawKey(t, client, 100)
	_, err := client.ApiKey.UpdateOneID(created.ID).SetIsActive(false).Save(context.Background())
	require.NoError(t, err)
	repo := NewApiKeyRepository(client, testLogger())

	_, logID, err := repo.Authorize(context.Background(), raw, testMeta())
	assert.ErrorIs(t, err, common.ErrForbidden)

	row, rerr := client.UsageLog.Get(context.Background(), logID)
	require.NoError(t, rerr)
	assert.Equal(t, 403, row.StatusCode)
}

func TestAuthorizeExpiredKey(t *testing.T) {
	client := newTestClient(t)
	raw, created := createRawKey(t, client, 100)
	_, err := client.ApiKey.UpdateOneID(created.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Save(context.Background())
	require.NoError(t, err)
	repo := NewApiKeyRepository(client, testLogger())

	_, _, err = repo.Authorize(context.Background(), raw, testMeta())
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestAuthorizeRateLimit(t *testing.T) {
	client := newTestClient(t)
	raw, created := createRawKey(t, client, 3)
	repo := NewApiKeyRepository(client, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := repo.Authorize(ctx, raw, testMeta())
		require.NoError(t, err, "request %d within limit", i+1)
	}

	_, logID, err := repo.Authorize(ctx, raw, testMeta())
	assert.ErrorIs(t, err, common.ErrRateLimited)

	row, rerr := client.UsageLog.Get(ctx, logID)
	require.NoError(t, rerr)
	assert.Equal(t, 429, row.StatusCode)

	// rejections never consume quota: the admitted count stays at the limit
	admitted, err := client.UsageLog.Query().
		Where(
			usagelog.APIKeyIDEQ(created.ID),
			usagelog.StatusCodeNotIn(401, 403, 429),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, admitted)

	// and further attempts still get rejected, not admitted
	_, _, err = repo.Authorize(ctx, raw, testMeta())
	assert.ErrorIs(t, err, common.ErrRateLimited)
}

func TestAuthorizeConcurrentRequestsRespectLimit(t *testing.T) {
	client := newTestClient(t)
	raw, created := createRawKey(t, client, 5)
	repo := NewApiKeyRepository(client, testLogger())
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = repo.Authorize(ctx, raw, testMeta())
		}(i)
	}
	wg.Wait()

	admitted := 0
	for _, err := range errs {
		if err == nil {
			admitted++
		} else {
			require.ErrorIs(t, err, common.ErrRateLimited)
		}
	}
	assert.Equal(t, 5, admitted)

	rows, err := client.UsageLog.Query().
		Where(
			usagelog.APIKeyIDEQ(created.ID),
			usagelog.StatusCodeNotIn(401, 403, 429),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, rows)

	// only admitted requests count toward the lifetime counter
	after, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), after.RequestCount)
}

func TestAuthorizeWindowRollsForward(t *testing.T) {
	client := newTestClient(t)
	raw, created := createRawKey(t, client, 2)
	repo := NewApiKeyRepository(client, testLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, _, err := repo.Authorize(ctx, raw, testMeta())
		require.NoError(t, err)
	}
	_, _, err := repo.Authorize(ctx, raw, testMeta())
	require.ErrorIs(t, err, common.ErrRateLimited)

	// age one admitted row past the rolling hour
	oldest, err := client.UsageLog.Query().
		Where(usagelog.APIKeyIDEQ(created.ID), usagelog.StatusCodeEQ(0)).
		Order(ent.Asc(usagelog.FieldCreatedAt)).
		First(ctx)
	require.NoError(t, err)
	_, err = client.UsageLog.UpdateOneID(oldest.ID).
		SetCreatedAt(time.Now().Add(-61 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// capacity freed: the next request is admitted
	_, _, err = repo.Authorize(ctx, raw, testMeta())
	assert.NoError(t, err)
}

func TestFinalizeStampsUsageRow(t *testing.T) {
	client := newTestClient(t)
	raw, _ := createRawKey(t, client, 100)
	keys := NewApiKeyRepository(client, testLogger())
	usage := NewUsageLogRepository(client, testLogger())
	ctx := context.Background()

	_, logID, err := keys.Authorize(ctx, raw, testMeta())
	require.NoError(t, err)

	jobID := uuid.New()
	require.NoError(t, usage.Finalize(ctx, logID, 202, 1500*time.Millisecond, &jobID))

	row, err := client.UsageLog.Get(ctx, logID)
	require.NoError(t, err)
	assert.Equal(t, 202, row.StatusCode)
	assert.Equal(t, int64(1500), row.LatencyMs)
	require.NotNil(t, row.JobID)
	assert.Equal(t, jobID, *row.JobID)
}

func TestUsageListAndCount(t *testing.T) {
	client := newTestClient(t)
	raw, created := createRawKey(t, client, 100)
	keys := NewApiKeyRepository(client, testLogger())
	usage := NewUsageLogRepository(client, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, logID, err := keys.Authorize(ctx, raw, testMeta())
		require.NoError(t, err)
		require.NoError(t, usage.Finalize(ctx, logID, 200, time.Millisecond, nil))
	}

	rows, err := usage.ListForKey(ctx, created.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	n, err := usage.CountSince(ctx, created.ID, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = usage.CountSince(ctx, created.ID, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestHashKeyAndPrefix(t *testing.T) {
	assert.Len(t, HashKey("rk_secret"), 64)
	assert.Equal(t, HashKey("rk_secret"), HashKey("rk_secret"))
	assert.NotEqual(t, HashKey("rk_secret"), HashKey("rk_other"))
	assert.Equal(t, "rk_12345", KeyPrefix("rk_123456789"))
	assert.Equal(t, "short", KeyPrefix("short"))
}
