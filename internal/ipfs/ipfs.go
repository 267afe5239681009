// Package ipfs publishes sealed payloads to content-addressed storage.
// Two backends are supported: a local Kubo node over its HTTP RPC, and
// Pinata's pinning API when a JWT is configured.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
)

// Pinner stores a payload and returns its content identifier.
type Pinner interface {
	Add(ctx context.Context, name string, data []byte) (string, error)
}

// KuboClient talks to a Kubo node's /api/v0 RPC.
type KuboClient struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewKuboClient(baseURL string, timeout time.Duration, logger *slog.Logger) *KuboClient {
	if baseURL == "" {
		baseURL = "http://localhost:5001"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &KuboClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

type kuboAddResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// Add pins data via /api/v0/add and returns the CID.
func (c *KuboClient) Add(ctx context.Context, name string, data []byte) (string, error) {
	body, contentType, err := buildMultipart(name, data)
	if err != nil {
		return "", err
	}
	url := c.baseURL + "/api/v0/add?pin=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("build add request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ipfs add: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ipfs add: status %d: %s", resp.StatusCode, msg)
	}

	var out kuboAddResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode add response: %w", err)
	}
	if out.Hash == "" {
		return "", fmt.Errorf("ipfs add: empty hash in response")
	}
	c.log.Info("ipfs.add.ok", "cid", out.Hash, "bytes", len(data))
	return out.Hash, nil
}

// Fetch reads a pinned payload back via /api/v0/cat.
func (c *KuboClient) Fetch(ctx context.Context, cid string) ([]byte, error) {
	url := c.baseURL + "/api/v0/cat?arg=" + cid
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build cat request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ipfs cat: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ipfs cat: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Exists reports whether the node can resolve a CID locally.
func (c *KuboClient) Exists(ctx context.Context, cid string) (bool, error) {
	url := c.baseURL + "/api/v0/block/stat?arg=" + cid + "&offline=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("ipfs block stat: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return resp.StatusCode == http.StatusOK, nil
}

// Health checks node reachability via /api/v0/version.
func (c *KuboClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v0/version", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ipfs health: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ipfs health: status %d", resp.StatusCode)
	}
	return nil
}

// PinataClient pins through Pinata's hosted API using a JWT.
type PinataClient struct {
	baseURL string
	jwt     string
	http    *http.Client
	log     *slog.Logger
}

func NewPinataClient(jwt string, timeout time.Duration, logger *slog.Logger) *PinataClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PinataClient{
		baseURL: "https://api.pinata.cloud",
		jwt:     jwt,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

type pinataResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

func (c *PinataClient) Add(ctx context.Context, name string, data []byte) (string, error) {
	body, contentType, err := buildMultipart(name, data)
	if err != nil {
		return "", err
	}
	url := c.baseURL + "/pinning/pinFileToIPFS"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("build pinata request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.jwt)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinata pin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("pinata pin: status %d: %s", resp.StatusCode, msg)
	}

	var out pinataResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode pinata response: %w", err)
	}
	if out.IpfsHash == "" {
		return "", fmt.Errorf("pinata pin: empty hash in response")
	}
	c.log.Info("ipfs.pinata.ok", "cid", out.IpfsHash, "bytes", len(data))
	return out.IpfsHash, nil
}

func buildMultipart(name string, data []byte) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, "", fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("write multipart: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return body, w.FormDataContentType(), nil
}
