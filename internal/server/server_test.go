package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/internal/common"
	"github.com/rightsledger/rights-parser/internal/export"
	"github.com/rightsledger/rights-parser/internal/repository"
)

const testRawKey = "rk_test_0123456789"

type fakeKeys struct {
	key *ent.ApiKey
	err error
}

func (f *fakeKeys) Authorize(_ context.Context, rawKey string, _ repository.AccessMeta) (*ent.ApiKey, uuid.UUID, error) {
	if f.err != nil {
		return nil, uuid.New(), f.err
	}
	if rawKey != testRawKey {
		return nil, uuid.New(), common.ErrUnauthorized
	}
	return f.key, uuid.New(), nil
}

func (f *fakeKeys) GetByID(context.Context, uuid.UUID) (*ent.ApiKey, error) { return f.key, nil }

type finalizeCall struct {
	status int
	jobID  *uuid.UUID
}

type fakeUsage struct {
	mu        sync.Mutex
	finalized []finalizeCall
	rows      []*ent.UsageLog
}

func (f *fakeUsage) Finalize(_ context.Context, _ uuid.UUID, statusCode int, _ time.Duration, jobID *uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finalized = append(f.finalized, finalizeCall{status: statusCode, jobID: jobID})
	return nil
}

func (f *fakeUsage) ListForKey(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*ent.UsageLog, error) {
	return f.rows, nil
}

func (f *fakeUsage) CountSince(context.Context, uuid.UUID, time.Time) (int, error) {
	return len(f.rows), nil
}

type fakeServerJobs struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*ent.Job
	created []*ent.Job

	// completeOnCreate mutates each created job, standing in for a worker
	completeOnCreate func(*ent.Job)
}

func newFakeServerJobs() *fakeServerJobs {
	return &fakeServerJobs{byID: map[uuid.UUID]*ent.Job{}}
}

func (f *fakeServerJobs) put(row *ent.Job) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[row.ID] = row
}

func (f *fakeServerJobs) Create(_ context.Context, req repository.CreateJobRequest) (*ent.Job, error) {
	row := &ent.Job{
		ID:         uuid.New(),
		APIKeyID:   req.APIKeyID,
		FileName:   req.FileName,
		FilePath:   req.FilePath,
		FileSize:   req.FileSize,
		Status:     "pending",
		WebhookURL: req.WebhookURL,
		CreatedAt:  time.Now(),
	}
	if f.completeOnCreate != nil {
		f.completeOnCreate(row)
	}
	f.mu.Lock()
	f.byID[row.ID] = row
	f.created = append(f.created, row)
	f.mu.Unlock()
	return row, nil
}

func (f *fakeServerJobs) GetByID(_ context.Context, id uuid.UUID) (*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.byID[id]; ok {
		return row, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeServerJobs) GetOwned(ctx context.Context, id, apiKeyID uuid.UUID) (*ent.Job, error) {
	row, err := f.GetByID(ctx, id)
	if err != nil || row.APIKeyID != apiKeyID {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (f *fakeServerJobs) ListForKey(_ context.Context, apiKeyID uuid.UUID, _ int) ([]*ent.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.Job
	for _, row := range f.byID {
		if row.APIKeyID == apiKeyID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeServerJobs) Claim(context.Context, string) (*ent.Job, error) { return nil, nil }
func (f *fakeServerJobs) Complete(context.Context, uuid.UUID, repository.JobResult) error {
	return nil
}
func (f *fakeServerJobs) Fail(context.Context, uuid.UUID, string, bool) error { return nil }
func (f *fakeServerJobs) MarkWebhookSent(context.Context, uuid.UUID) error    { return nil }

type testEnv struct {
	srv   *Server
	jobs  *fakeServerJobs
	usage *fakeUsage
	keyID uuid.UUID
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()
	keyID := uuid.New()
	jobs := newFakeServerJobs()
	usage := &fakeUsage{}
	keys := &fakeKeys{key: &ent.ApiKey{ID: keyID, IsActive: true, RateLimit: 100}}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(common.ServerConfig{
		Port:            "0",
		UploadDir:       t.TempDir(),
		SyncWaitTimeout: 2 * time.Second,
	}, Deps{
		Jobs:     jobs,
		Keys:     keys,
		Usage:    usage,
		Exporter: export.NewService(usage, log),
		Logger:   log,
	})
	return &testEnv{srv: srv, jobs: jobs, usage: usage, keyID: keyID}
}

func doRequest(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, fields map[string]string, fileName, fileBody string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(fileBody))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/parse", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set(apiKeyHeader, testRawKey)
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthWithoutAuth(t *testing.T) {
	env := newTestServer(t)
	rec := doRequest(env, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestMissingAPIKeyHeader(t *testing.T) {
	env := newTestServer(t)
	rec := doRequest(env, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeError(t, rec).Kind)
}

func TestUnknownAPIKey(t *testing.T) {
	env := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set(apiKeyHeader, "rk_wrong")
	rec := doRequest(env, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRejectionErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		gateErr  error
		wantCode int
		wantKind string
	}{
		{"forbidden", common.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"rate limited", common.ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestServer(t)
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			srv := New(env.srv.cfg, Deps{
				Jobs:   env.jobs,
				Keys:   &fakeKeys{err: tt.gateErr},
				Usage:  env.usage,
				Logger: log,
			})
			req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
			req.Header.Set(apiKeyHeader, testRawKey)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)
			require.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantKind, decodeError(t, rec).Kind)
		})
	}
}

func TestParseUploadAccepted(t *testing.T) {
	env := newTestServer(t)
	req := uploadRequest(t, map[string]string{"webhook_url": "https://example.com/hook"},
		"deal.pdf", "%PDF-1.4 fake body")
	rec := doRequest(env, req)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp parseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.JobID)

	require.Len(t, env.jobs.created, 1)
	created := env.jobs.created[0]
	assert.Equal(t, "deal.pdf", created.FileName)
	assert.Equal(t, env.keyID, created.APIKeyID)
	require.NotNil(t, created.WebhookURL)
	assert.Equal(t, "https://example.com/hook", *created.WebhookURL)
	assert.True(t, strings.HasSuffix(created.FilePath, ".pdf"))

	// the audit row is finalized with the job id attached
	require.Len(t, env.usage.finalized, 1)
	assert.Equal(t, http.StatusAccepted, env.usage.finalized[0].status)
	require.NotNil(t, env.usage.finalized[0].jobID)
	assert.Equal(t, created.ID, *env.usage.finalized[0].jobID)
}

func TestParseUploadValidation(t *testing.T) {
	t.Run("missing file field", func(t *testing.T) {
		env := newTestServer(t)
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("webhook_url", "https://example.com"))
		require.NoError(t, w.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/parse", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		req.Header.Set(apiKeyHeader, testRawKey)

		rec := doRequest(env, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decodeError(t, rec).Kind)
		assert.Empty(t, env.jobs.created)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		env := newTestServer(t)
		rec := doRequest(env, uploadRequest(t, nil, "malware.exe", "MZ"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, env.jobs.created)
	})

	t.Run("non-http webhook url", func(t *testing.T) {
		env := newTestServer(t)
		rec := doRequest(env, uploadRequest(t,
			map[string]string{"webhook_url": "ftp://example.com"}, "deal.pdf", "%PDF"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestParseWaitReturnsTerminalResult(t *testing.T) {
	env := newTestServer(t)

	// complete every created job immediately, as a worker would
	env.jobs.completeOnCreate = func(row *ent.Job) {
		cid := "QmCid123"
		key := "a2V5"
		row.Status = "completed"
		row.IpfsCid = &cid
		row.EncryptionKey = &key
		row.ParsedJSON = json.RawMessage(`{"territories": ["INDIA"]}`)
	}

	req := uploadRequest(t, nil, "deal.pdf", "%PDF-1.4 fake body")
	req.URL.RawQuery = "wait=true"
	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp resultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "QmCid123", resp.IpfsCid)
	assert.JSONEq(t, `{"territories": ["INDIA"]}`, string(resp.Parsed))
}

func TestJobStatusEndpoint(t *testing.T) {
	env := newTestServer(t)
	msg := "llm extraction failed"
	row := &ent.Job{
		ID:           uuid.New(),
		APIKeyID:     env.keyID,
		FileName:     "deal.pdf",
		Status:       "failed",
		RetryCount:   3,
		ErrorMessage: &msg,
		CreatedAt:    time.Now(),
	}
	env.jobs.put(row)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+row.ID.String(), nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var view jobView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "failed", view.Status)
	assert.Equal(t, 3, view.RetryCount)
	require.NotNil(t, view.Error)
	assert.Equal(t, msg, *view.Error)
}

func TestJobStatusNotFoundAndBadID(t *testing.T) {
	env := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+uuid.NewString(), nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/jobs/not-a-uuid", nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec = doRequest(env, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobStatusOwnershipEnforced(t *testing.T) {
	env := newTestServer(t)
	row := &ent.Job{ID: uuid.New(), APIKeyID: uuid.New(), Status: "completed", FileName: "x.pdf", CreatedAt: time.Now()}
	env.jobs.put(row)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+row.ID.String(), nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	assert.Equal(t, http.StatusNotFound, rec.Code, "foreign jobs must be invisible")
}

func TestJobResultEndpoint(t *testing.T) {
	env := newTestServer(t)
	cid := "QmCid123"
	key := "a2V5"
	model := "llama3"
	row := &ent.Job{
		ID:            uuid.New(),
		APIKeyID:      env.keyID,
		FileName:      "deal.pdf",
		Status:        "completed",
		IpfsCid:       &cid,
		EncryptionKey: &key,
		ModelUsed:     &model,
		ParsedJSON:    json.RawMessage(`{"media_rights": ["SVOD"]}`),
		CreatedAt:     time.Now(),
	}
	env.jobs.put(row)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+row.ID.String()+"/result", nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp resultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, cid, resp.IpfsCid)
	assert.Equal(t, key, resp.EncryptionKey)
	assert.Equal(t, model, resp.ModelUsed)
	assert.JSONEq(t, `{"media_rights": ["SVOD"]}`, string(resp.Parsed))
}

func TestJobResultNotReady(t *testing.T) {
	env := newTestServer(t)
	row := &ent.Job{ID: uuid.New(), APIKeyID: env.keyID, FileName: "deal.pdf", Status: "processing", CreatedAt: time.Now()}
	env.jobs.put(row)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+row.ID.String()+"/result", nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "not_ready", decodeError(t, rec).Kind)
}

func TestListJobs(t *testing.T) {
	env := newTestServer(t)
	env.jobs.put(&ent.Job{ID: uuid.New(), APIKeyID: env.keyID, FileName: "a.pdf", Status: "pending", CreatedAt: time.Now()})
	env.jobs.put(&ent.Job{ID: uuid.New(), APIKeyID: env.keyID, FileName: "b.pdf", Status: "completed", CreatedAt: time.Now()})
	env.jobs.put(&ent.Job{ID: uuid.New(), APIKeyID: uuid.New(), FileName: "foreign.pdf", Status: "pending", CreatedAt: time.Now()})

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}

func TestUsageExport(t *testing.T) {
	env := newTestServer(t)
	env.usage.rows = []*ent.UsageLog{
		{ID: uuid.New(), Endpoint: "/api/parse", Method: "POST", StatusCode: 202, LatencyMs: 120, CreatedAt: time.Now()},
		{ID: uuid.New(), Endpoint: "/api/jobs", Method: "GET", StatusCode: 200, LatencyMs: 4, CreatedAt: time.Now()},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/usage/export", nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "usage-")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestUsageExportBadDate(t *testing.T) {
	env := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/usage/export?from=last-week", nil)
	req.Header.Set(apiKeyHeader, testRawKey)
	rec := doRequest(env, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
