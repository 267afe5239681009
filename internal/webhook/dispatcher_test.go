package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/internal/repository"
)

// fakeJobs records MarkWebhookSent calls; the rest of the contract is unused
// by the dispatcher.
type fakeJobs struct {
	mu   sync.Mutex
	sent []uuid.UUID
}

func (f *fakeJobs) MarkWebhookSent(ctx context.Context, jobID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, jobID)
	return nil
}

func (f *fakeJobs) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeJobs) Create(context.Context, repository.CreateJobRequest) (*ent.Job, error) {
	return nil, nil
}
func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*ent.Job, error)       { return nil, nil }
func (f *fakeJobs) GetOwned(context.Context, uuid.UUID, uuid.UUID) (*ent.Job, error) {
	return nil, nil
}
func (f *fakeJobs) ListForKey(context.Context, uuid.UUID, int) ([]*ent.Job, error) {
	return nil, nil
}
func (f *fakeJobs) Claim(context.Context, string) (*ent.Job, error)               { return nil, nil }
func (f *fakeJobs) Complete(context.Context, uuid.UUID, repository.JobResult) error { return nil }
func (f *fakeJobs) Fail(context.Context, uuid.UUID, string, bool) error           { return nil }

func startDispatcher(t *testing.T, jobs repository.JobRepository, cfg Config) *Dispatcher {
	t.Helper()
	d := NewDispatcher(cfg, jobs, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		d.Wait()
	})
	d.Start(ctx)
	return d
}

func TestDeliverySuccessMarksSent(t *testing.T) {
	var (
		mu       sync.Mutex
		received []Notification
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n Notification
		require.NoError(t, json.NewDecoder(r.Body).Decode(&n))
		mu.Lock()
		received = append(received, n)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	jobs := &fakeJobs{}
	d := startDispatcher(t, jobs, Config{MaxAttempts: 3, BackoffBase: time.Millisecond})

	jobID := uuid.New()
	d.Enqueue(jobID, srv.URL, NewNotification(jobID, "completed", "QmCid123", "a2V5", ""))

	require.Eventually(t, func() bool { return jobs.sentCount() == 1 }, 3*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, jobID.String(), received[0].JobID)
	assert.Equal(t, "completed", received[0].Status)
	assert.Equal(t, "QmCid123", received[0].IpfsCid)
	assert.Equal(t, "a2V5", received[0].EncryptionKey)
	assert.NotEmpty(t, received[0].Timestamp)
}

func TestDeliveryRetriesThenSucceeds(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	jobs := &fakeJobs{}
	d := startDispatcher(t, jobs, Config{MaxAttempts: 5, BackoffBase: time.Millisecond})

	jobID := uuid.New()
	d.Enqueue(jobID, srv.URL, NewNotification(jobID, "completed", "QmCid", "key", ""))

	require.Eventually(t, func() bool { return jobs.sentCount() == 1 }, 3*time.Second, 10*time.Millisecond)
	mu.Lock()
	assert.Equal(t, 3, calls)
	mu.Unlock()
}

func TestDeliveryExhaustionLeavesUnsent(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	jobs := &fakeJobs{}
	d := startDispatcher(t, jobs, Config{MaxAttempts: 2, BackoffBase: time.Millisecond})

	jobID := uuid.New()
	d.Enqueue(jobID, srv.URL, NewNotification(jobID, "failed", "", "", "llm extraction failed"))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 2
	}, 3*time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, jobs.sentCount())
}

func TestEnqueueIgnoresEmptyURL(t *testing.T) {
	jobs := &fakeJobs{}
	d := NewDispatcher(Config{}, jobs, nil)
	d.Enqueue(uuid.New(), "", Notification{})
	assert.Empty(t, d.queue)
}
