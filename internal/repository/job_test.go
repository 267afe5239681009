package repository

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-parser/constants"
	"github.com/rightsledger/rights-parser/gen/ent"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestKey(t *testing.T, client *ent.Client) *ent.ApiKey {
	t.Helper()
	raw := "rk_" + uuid.NewString()
	key, err := client.ApiKey.Create().
		SetKeyHash(HashKey(raw)).
		SetKeyPrefix(KeyPrefix(raw)).
		SetOwnerName("test-owner").
		SetRateLimit(100).
		Save(context.Background())
	require.NoError(t, err)
	return key
}

func createTestJob(t *testing.T, repo JobRepository, keyID uuid.UUID) *ent.Job {
	t.Helper()
	row, err := repo.Create(context.Background(), CreateJobRequest{
		APIKeyID: keyID,
		FileName: "agreement.pdf",
		FilePath: "/tmp/agreement.pdf",
		FileSize: 1024,
	})
	require.NoError(t, err)
	return row
}

func TestJobCreateDefaults(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3}, testLogger())

	row := createTestJob(t, repo, key.ID)
	assert.Equal(t, string(constants.JobStatusPending), row.Status)
	assert.Equal(t, 0, row.RetryCount)
	assert.False(t, row.WebhookSent)
	assert.Nil(t, row.StartedAt)
}

func TestClaimTakesOldestPending(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	first := createTestJob(t, repo, key.ID)
	// force distinct created_at ordering
	_, err := client.Job.UpdateOneID(first.ID).SetCreatedAt(time.Now().Add(-time.Minute)).Save(context.Background())
	require.NoError(t, err)
	createTestJob(t, repo, key.ID)

	claimed, err := repo.Claim(context.Background(), "w0")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, string(constants.JobStatusProcessing), claimed.Status)
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "w0", *claimed.WorkerID)
	assert.NotNil(t, claimed.StartedAt)
}

func TestClaimReturnsNilWhenEmpty(t *testing.T) {
	client := newTestClient(t)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	claimed, err := repo.Claim(context.Background(), "w0")
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestClaimSingleWinnerUnderContention(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())
	createTestJob(t, repo, key.ID)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			row, err := repo.Claim(context.Background(), string(rune('a'+n)))
			if err == nil && row != nil {
				mu.Lock()
				winners = append(winners, *row.WorkerID)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, winners, 1, "exactly one worker may claim the job")
}

func TestClaimReclaimsStaleProcessing(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, key.ID)
	claimed, err := repo.Claim(context.Background(), "dead-worker")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// fresh claims are not eligible
	again, err := repo.Claim(context.Background(), "w1")
	require.NoError(t, err)
	assert.Nil(t, again)

	// age the claim past the processing window
	_, err = client.Job.UpdateOneID(row.ID).
		SetStartedAt(time.Now().Add(-2 * time.Minute)).
		Save(context.Background())
	require.NoError(t, err)

	reclaimed, err := repo.Claim(context.Background(), "w1")
	require.NoError(t, err)
	require.NotNil(t, reclaimed)
	assert.Equal(t, row.ID, reclaimed.ID)
	require.NotNil(t, reclaimed.WorkerID)
	assert.Equal(t, "w1", *reclaimed.WorkerID)
}

func TestCompleteRecordsArtifacts(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, key.ID)
	_, err := repo.Claim(context.Background(), "w0")
	require.NoError(t, err)

	parsed := json.RawMessage(`{"territories": ["INDIA"]}`)
	err = repo.Complete(context.Background(), row.ID, JobResult{
		IpfsCid:       "QmCid123",
		EncryptionKey: "a2V5",
		ParsedJSON:    parsed,
		ModelUsed:     "llama3",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), got.Status)
	require.NotNil(t, got.IpfsCid)
	assert.Equal(t, "QmCid123", *got.IpfsCid)
	require.NotNil(t, got.EncryptionKey)
	assert.JSONEq(t, string(parsed), string(got.ParsedJSON))
	assert.NotNil(t, got.CompletedAt)
	assert.NotNil(t, got.ProcessingTimeMs)
}

func TestCompleteRequiresProcessing(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, key.ID)
	err := repo.Complete(context.Background(), row.ID, JobResult{IpfsCid: "QmCid"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// completing twice is also a contract violation
	_, err = repo.Claim(context.Background(), "w0")
	require.NoError(t, err)
	require.NoError(t, repo.Complete(context.Background(), row.ID, JobResult{IpfsCid: "QmCid"}))
	err = repo.Complete(context.Background(), row.ID, JobResult{IpfsCid: "QmCid"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestFailRetryableRequeues(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, key.ID)
	_, err := repo.Claim(context.Background(), "w0")
	require.NoError(t, err)

	require.NoError(t, repo.Fail(context.Background(), row.ID, "llm extraction failed", true))

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusPending), got.Status)
	assert.Equal(t, 1, got.RetryCount)
	assert.Nil(t, got.StartedAt)
	assert.Nil(t, got.WorkerID)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "llm extraction failed", *got.ErrorMessage)
}

func TestFailNonRetryableIsTerminal(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, key.ID)
	_, err := repo.Claim(context.Background(), "w0")
	require.NoError(t, err)

	require.NoError(t, repo.Fail(context.Background(), row.ID, "extracted text too short", false))

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), got.Status)
	assert.Equal(t, 0, got.RetryCount)
	assert.NotNil(t, got.CompletedAt)
}

func TestFailRetryBudgetExhaustion(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	const maxRetries = 2
	repo := NewJobRepository(client, JobConfig{MaxRetries: maxRetries, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, key.ID)
	for i := 0; i < maxRetries+1; i++ {
		claimed, err := repo.Claim(context.Background(), "w0")
		require.NoError(t, err)
		require.NotNil(t, claimed, "round %d", i)
		require.NoError(t, repo.Fail(context.Background(), row.ID, "transient failure", true))
	}

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), got.Status)
	assert.Equal(t, maxRetries, got.RetryCount, "terminal failure leaves the counter at the bound")

	// and the terminal row is no longer claimable
	claimed, err := repo.Claim(context.Background(), "w1")
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestGetOwnedScopesByKey(t *testing.T) {
	client := newTestClient(t)
	owner := createTestKey(t, client)
	other := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, owner.ID)

	got, err := repo.GetOwned(context.Background(), row.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, got.ID)

	_, err = repo.GetOwned(context.Background(), row.ID, other.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestListForKeyNewestFirst(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	old := createTestJob(t, repo, key.ID)
	_, err := client.Job.UpdateOneID(old.ID).SetCreatedAt(time.Now().Add(-time.Hour)).Save(context.Background())
	require.NoError(t, err)
	latest := createTestJob(t, repo, key.ID)

	rows, err := repo.ListForKey(context.Background(), key.ID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, latest.ID, rows[0].ID)
}

func TestMarkWebhookSentOnce(t *testing.T) {
	client := newTestClient(t)
	key := createTestKey(t, client)
	repo := NewJobRepository(client, JobConfig{MaxRetries: 3, MaxProcessing: time.Minute}, testLogger())

	row := createTestJob(t, repo, key.ID)
	require.NoError(t, repo.MarkWebhookSent(context.Background(), row.ID))
	require.NoError(t, repo.MarkWebhookSent(context.Background(), row.ID))

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.True(t, got.WebhookSent)
}
