package ollama

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the Ollama client.
type Config struct {
	BaseURL     string  // default http://localhost:11434
	Model       string  // pinned model identifier, recorded on each job
	Temperature float64 // near-zero keeps extraction deterministic
	NumPredict  int     // response token budget
	Timeout     time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.05
	}
	if cfg.NumPredict <= 0 {
		cfg.NumPredict = 4096
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// Model returns the pinned model identifier.
func (c *Client) Model() string { return c.cfg.Model }
