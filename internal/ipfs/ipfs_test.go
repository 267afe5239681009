package ipfs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKuboAdd(t *testing.T) {
	var gotName string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v0/add", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("pin"))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotName = hdr.Filename
		gotBody, _ = io.ReadAll(f)
		_ = json.NewEncoder(w).Encode(kuboAddResponse{Name: hdr.Filename, Hash: "QmTestCid", Size: "42"})
	}))
	defer srv.Close()

	c := NewKuboClient(srv.URL, time.Second, nil)
	cid, err := c.Add(context.Background(), "job-1.bin", []byte("sealed payload"))
	require.NoError(t, err)
	assert.Equal(t, "QmTestCid", cid)
	assert.Equal(t, "job-1.bin", gotName)
	assert.Equal(t, []byte("sealed payload"), gotBody)
}

func TestKuboAddErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "daemon locked", http.StatusInternalServerError)
		}))
		defer srv.Close()
		c := NewKuboClient(srv.URL, time.Second, nil)
		_, err := c.Add(context.Background(), "x", []byte("x"))
		assert.ErrorContains(t, err, "500")
	})

	t.Run("empty hash", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(kuboAddResponse{})
		}))
		defer srv.Close()
		c := NewKuboClient(srv.URL, time.Second, nil)
		_, err := c.Add(context.Background(), "x", []byte("x"))
		assert.ErrorContains(t, err, "empty hash")
	})

	t.Run("unreachable node", func(t *testing.T) {
		c := NewKuboClient("http://127.0.0.1:1", time.Second, nil)
		_, err := c.Add(context.Background(), "x", []byte("x"))
		assert.Error(t, err)
	})
}

func TestKuboFetchAndHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v0/cat":
			require.Equal(t, "QmTestCid", r.URL.Query().Get("arg"))
			_, _ = w.Write([]byte("sealed payload"))
		case "/api/v0/version":
			_, _ = w.Write([]byte(`{"Version": "0.29.0"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewKuboClient(srv.URL, time.Second, nil)
	data, err := c.Fetch(context.Background(), "QmTestCid")
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed payload"), data)

	assert.NoError(t, c.Health(context.Background()))
}

func TestKuboExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("arg") == "QmKnown" {
			_, _ = w.Write([]byte(`{"Size": 42}`))
			return
		}
		http.Error(w, "not found locally", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewKuboClient(srv.URL, time.Second, nil)
	ok, err := c.Exists(context.Background(), "QmKnown")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists(context.Background(), "QmUnknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPinataAdd(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(pinataResponse{IpfsHash: "QmPinned"})
	}))
	defer srv.Close()

	c := NewPinataClient("jwt-token", time.Second, nil)
	c.baseURL = srv.URL
	cid, err := c.Add(context.Background(), "job-1.bin", []byte("sealed"))
	require.NoError(t, err)
	assert.Equal(t, "QmPinned", cid)
	assert.Equal(t, "Bearer jwt-token", gotAuth)
}

func TestPinataAddRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid JWT"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewPinataClient("bad-jwt", time.Second, nil)
	c.baseURL = srv.URL
	_, err := c.Add(context.Background(), "x", []byte("x"))
	assert.ErrorContains(t, err, "401")
}
