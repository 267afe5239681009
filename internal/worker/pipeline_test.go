package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/internal/extractor"
	"github.com/rightsledger/rights-parser/internal/pdftext"
	"github.com/rightsledger/rights-parser/internal/publisher"
	"github.com/rightsledger/rights-parser/internal/repository"
	"github.com/rightsledger/rights-parser/internal/webhook"
)

const agreementText = `RIGHTS LICENSING AGREEMENT

Sony Pictures Entertainment ("Licensor") grants Zee Entertainment
("Licensee") the exclusive SVOD rights to the motion picture "Spider-Man"
for the territory of India, for a deal value of USD 2,500,000, for a term
of 5 years commencing on the effective date.`

const extractedResponse = `{
	"parties": {"licensor": {"name": "Sony Pictures Entertainment"}, "licensee": {"name": "Zee Entertainment"}},
	"content": {"title": "Spider-Man", "type": "MOVIE"},
	"territories": ["INDIA"],
	"media_rights": ["SVOD"],
	"term": {"years": 5, "exclusivity": true},
	"financial": {"deal_value": "USD 2,500,000", "currency": "USD"}
}`

type pipelineEnv struct {
	client *ent.Client
	jobs   repository.JobRepository
	key    *ent.ApiKey
}

func newPipelineEnv(t *testing.T, maxRetries int, engine fakeEngine, pin fakePinner) *pipelineEnv {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := repository.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "pipe.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	key, err := client.ApiKey.Create().
		SetKeyHash(repository.HashKey("rk_pipeline")).
		SetKeyPrefix("rk_pipel").
		SetOwnerName("pipeline").
		Save(context.Background())
	require.NoError(t, err)

	jobs := repository.NewJobRepository(client, repository.JobConfig{
		MaxRetries:    maxRetries,
		MaxProcessing: time.Minute,
	}, log)

	ctx, cancel := context.WithCancel(context.Background())

	dispatcher := webhook.NewDispatcher(webhook.Config{
		MaxAttempts: 3,
		BackoffBase: time.Millisecond,
		Timeout:     time.Second,
	}, jobs, log)
	dispatcher.Start(ctx)

	orch := extractor.New(engine, extractor.Config{MaxAttempts: 2, AttemptTimeout: time.Second}, log)
	pool := NewPool(Config{Count: 1, PollInterval: 10 * time.Millisecond, MaxProcessing: time.Minute},
		jobs, pdftext.NewCommandExtractor("", log), orch, publisher.New(pin, log), dispatcher, log)
	pool.Start(ctx)
	t.Cleanup(func() {
		cancel()
		pool.Wait()
		dispatcher.Wait()
	})

	return &pipelineEnv{client: client, jobs: jobs, key: key}
}

func writeAgreement(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agreement.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPipelineCompletesLicensingAgreement(t *testing.T) {
	var (
		mu    sync.Mutex
		notes []webhook.Notification
	)
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n webhook.Notification
		require.NoError(t, json.NewDecoder(r.Body).Decode(&n))
		mu.Lock()
		notes = append(notes, n)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer sink.Close()

	env := newPipelineEnv(t, 2, fakeEngine{response: extractedResponse}, fakePinner{cid: "QmSpiderMan"})

	hook := sink.URL
	row, err := env.jobs.Create(context.Background(), repository.CreateJobRequest{
		APIKeyID:   env.key.ID,
		FileName:   "spiderman-zee.txt",
		FilePath:   writeAgreement(t, agreementText),
		FileSize:   int64(len(agreementText)),
		WebhookURL: &hook,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := env.jobs.GetByID(context.Background(), row.ID)
		return err == nil && got.Status == "completed"
	}, 5*time.Second, 20*time.Millisecond)

	got, err := env.jobs.GetByID(context.Background(), row.ID)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(got.ParsedJSON, &parsed))
	body := string(got.ParsedJSON)
	assert.Contains(t, strings.ToUpper(body), "INDIA")
	assert.Contains(t, body, "2,500,000")
	term, _ := json.Marshal(parsed["term"])
	assert.Contains(t, string(term), "5")

	require.NotNil(t, got.IpfsCid)
	assert.Equal(t, "QmSpiderMan", *got.IpfsCid)
	require.NotNil(t, got.EncryptionKey)
	require.NotNil(t, got.ModelUsed)
	assert.Equal(t, "llama3-test", *got.ModelUsed)

	require.Eventually(t, func() bool {
		fresh, err := env.jobs.GetByID(context.Background(), row.ID)
		return err == nil && fresh.WebhookSent
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, notes, 1)
	assert.Equal(t, "completed", notes[0].Status)
	assert.Equal(t, "QmSpiderMan", notes[0].IpfsCid)
	assert.NotEmpty(t, notes[0].EncryptionKey)
}

func TestPipelineExhaustsRetriesOnMalformedOutput(t *testing.T) {
	var (
		mu    sync.Mutex
		notes []webhook.Notification
	)
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n webhook.Notification
		_ = json.NewDecoder(r.Body).Decode(&n)
		mu.Lock()
		notes = append(notes, n)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer sink.Close()

	const maxRetries = 2
	env := newPipelineEnv(t, maxRetries, fakeEngine{response: "this model only chats"}, fakePinner{cid: "QmUnused"})

	hook := sink.URL
	row, err := env.jobs.Create(context.Background(), repository.CreateJobRequest{
		APIKeyID:   env.key.ID,
		FileName:   "garbage.txt",
		FilePath:   writeAgreement(t, agreementText),
		FileSize:   int64(len(agreementText)),
		WebhookURL: &hook,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := env.jobs.GetByID(context.Background(), row.ID)
		return err == nil && got.Status == "failed"
	}, 10*time.Second, 20*time.Millisecond)

	got, err := env.jobs.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, maxRetries, got.RetryCount)
	require.NotNil(t, got.ErrorMessage)
	assert.NotEmpty(t, *got.ErrorMessage)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(notes) == 1
	}, 5*time.Second, 20*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "failed", notes[0].Status)
	assert.NotEmpty(t, notes[0].Error)
	assert.Empty(t, notes[0].IpfsCid)
}
