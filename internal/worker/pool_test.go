package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/internal/extractor"
	"github.com/rightsledger/rights-parser/internal/pdftext"
	"github.com/rightsledger/rights-parser/internal/publisher"
	"github.com/rightsledger/rights-parser/internal/repository"
)

type failCall struct {
	msg       string
	retryable bool
	ctxErr    error
}

// recordingJobs captures the terminal calls the pool makes.
type recordingJobs struct {
	mu        sync.Mutex
	completed map[uuid.UUID]repository.JobResult
	failed    map[uuid.UUID]failCall
}

func newRecordingJobs() *recordingJobs {
	return &recordingJobs{
		completed: map[uuid.UUID]repository.JobResult{},
		failed:    map[uuid.UUID]failCall{},
	}
}

func (r *recordingJobs) Complete(_ context.Context, id uuid.UUID, res repository.JobResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[id] = res
	return nil
}

func (r *recordingJobs) Fail(ctx context.Context, id uuid.UUID, msg string, retryable bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[id] = failCall{msg: msg, retryable: retryable, ctxErr: ctx.Err()}
	return nil
}

func (r *recordingJobs) GetByID(_ context.Context, id uuid.UUID) (*ent.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	status := "pending"
	if _, ok := r.completed[id]; ok {
		status = "completed"
	}
	if _, ok := r.failed[id]; ok {
		status = "failed"
	}
	return &ent.Job{ID: id, Status: status}, nil
}

func (r *recordingJobs) Create(context.Context, repository.CreateJobRequest) (*ent.Job, error) {
	return nil, nil
}
func (r *recordingJobs) GetOwned(context.Context, uuid.UUID, uuid.UUID) (*ent.Job, error) {
	return nil, nil
}
func (r *recordingJobs) ListForKey(context.Context, uuid.UUID, int) ([]*ent.Job, error) {
	return nil, nil
}
func (r *recordingJobs) Claim(context.Context, string) (*ent.Job, error)   { return nil, nil }
func (r *recordingJobs) MarkWebhookSent(context.Context, uuid.UUID) error { return nil }

type fakeTexts struct {
	text string
	err  error
}

func (f fakeTexts) ExtractText(context.Context, string) (string, error) { return f.text, f.err }

// stalledTexts blocks until the job context expires, like a hung converter.
type stalledTexts struct{}

func (stalledTexts) ExtractText(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type fakeEngine struct{ response string }

func (f fakeEngine) Generate(context.Context, string) (string, error) { return f.response, nil }
func (f fakeEngine) Model() string                                    { return "llama3-test" }

type fakePinner struct {
	cid string
	err error
}

func (f fakePinner) Add(context.Context, string, []byte) (string, error) { return f.cid, f.err }

const validResponse = `{"parties": {"licensor": {"name": "Sony Pictures"}}, "territories": ["INDIA"]}`

func newTestPool(jobs repository.JobRepository, texts pdftext.Extractor, engine fakeEngine, pin fakePinner) *Pool {
	orch := extractor.New(engine, extractor.Config{MaxAttempts: 2, AttemptTimeout: time.Second}, nil)
	pub := publisher.New(pin, nil)
	return NewPool(Config{Count: 1, PollInterval: 10 * time.Millisecond, MaxProcessing: time.Minute},
		jobs, texts, orch, pub, nil, nil)
}

func testJob() *ent.Job {
	return &ent.Job{
		ID:       uuid.New(),
		Status:   "processing",
		FileName: "agreement.pdf",
		FilePath: "/tmp/agreement.pdf",
	}
}

func TestProcessSuccess(t *testing.T) {
	jobs := newRecordingJobs()
	pool := newTestPool(jobs, fakeTexts{text: "licensing agreement text"}, fakeEngine{response: validResponse}, fakePinner{cid: "QmCid123"})

	row := testJob()
	pool.process(context.Background(), "w0", row)

	require.Contains(t, jobs.completed, row.ID)
	res := jobs.completed[row.ID]
	assert.Equal(t, "QmCid123", res.IpfsCid)
	assert.NotEmpty(t, res.EncryptionKey)
	assert.NotEmpty(t, res.ParsedJSON)
	assert.Equal(t, "llama3-test", res.ModelUsed)
	assert.Empty(t, jobs.failed)
}

func TestProcessUnreadableDocumentIsTerminal(t *testing.T) {
	jobs := newRecordingJobs()
	pool := newTestPool(jobs,
		fakeTexts{err: pdftext.ErrTextTooShort},
		fakeEngine{response: validResponse}, fakePinner{cid: "QmCid"})

	row := testJob()
	pool.process(context.Background(), "w0", row)

	require.Contains(t, jobs.failed, row.ID)
	assert.False(t, jobs.failed[row.ID].retryable)
	assert.Empty(t, jobs.completed)
}

func TestProcessConverterErrorIsRetryable(t *testing.T) {
	jobs := newRecordingJobs()
	pool := newTestPool(jobs,
		fakeTexts{err: errors.New("pdftotext: exit status 1")},
		fakeEngine{response: validResponse}, fakePinner{cid: "QmCid"})

	row := testJob()
	pool.process(context.Background(), "w0", row)

	require.Contains(t, jobs.failed, row.ID)
	assert.True(t, jobs.failed[row.ID].retryable)
}

func TestProcessDeadlineStillRecordsFailure(t *testing.T) {
	jobs := newRecordingJobs()
	orch := extractor.New(fakeEngine{response: validResponse}, extractor.Config{MaxAttempts: 1, AttemptTimeout: time.Second}, nil)
	pub := publisher.New(fakePinner{cid: "QmCid"}, nil)
	pool := NewPool(Config{Count: 1, PollInterval: 10 * time.Millisecond, MaxProcessing: 20 * time.Millisecond},
		jobs, stalledTexts{}, orch, pub, nil, nil)

	row := testJob()
	pool.process(context.Background(), "w0", row)

	require.Contains(t, jobs.failed, row.ID)
	call := jobs.failed[row.ID]
	assert.True(t, call.retryable)
	// the failure write ran on a live context after the job deadline fired
	assert.NoError(t, call.ctxErr)
}

func TestProcessExtractionFailureIsRetryable(t *testing.T) {
	jobs := newRecordingJobs()
	pool := newTestPool(jobs,
		fakeTexts{text: "licensing agreement text"},
		fakeEngine{response: "no json here"}, fakePinner{cid: "QmCid"})

	row := testJob()
	pool.process(context.Background(), "w0", row)

	require.Contains(t, jobs.failed, row.ID)
	assert.True(t, jobs.failed[row.ID].retryable)
	assert.Contains(t, jobs.failed[row.ID].msg, "llm extraction")
}

func TestProcessPublishFailureIsRetryable(t *testing.T) {
	jobs := newRecordingJobs()
	pool := newTestPool(jobs,
		fakeTexts{text: "licensing agreement text"},
		fakeEngine{response: validResponse},
		fakePinner{err: errors.New("ipfs add: connection refused")})

	row := testJob()
	pool.process(context.Background(), "w0", row)

	require.Contains(t, jobs.failed, row.ID)
	assert.True(t, jobs.failed[row.ID].retryable)
	assert.Contains(t, jobs.failed[row.ID].msg, "publish")
}
