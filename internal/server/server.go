// Package server exposes the HTTP API: agreement upload, job inspection,
// result retrieval, and usage export, all behind API-key auth.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rightsledger/rights-parser/constants"
	"github.com/rightsledger/rights-parser/internal/common"
	"github.com/rightsledger/rights-parser/internal/export"
	"github.com/rightsledger/rights-parser/internal/repository"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// HealthProber reports reachability of an external collaborator.
type HealthProber interface {
	Health(ctx context.Context) error
}

// Deps collects everything the HTTP layer needs.
type Deps struct {
	Jobs     repository.JobRepository
	Keys     repository.ApiKeyRepository
	Usage    repository.UsageLogRepository
	Exporter *export.Service
	DBProbe  func(ctx context.Context) error
	IPFS     HealthProber
	Logger   *slog.Logger
}

// Server wires the echo engine to the handlers.
type Server struct {
	echo    *echo.Echo
	cfg     common.ServerConfig
	deps    Deps
	log     *slog.Logger
	started time.Time
}

func New(cfg common.ServerConfig, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("50M"))

	s := &Server{
		echo:    e,
		cfg:     cfg,
		deps:    deps,
		log:     deps.Logger,
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.echo.Group("/api")
	api.GET("/health", s.health)

	authed := api.Group("", requireAPIKey(s.deps.Keys, s.deps.Usage, s.log))
	authed.POST("/parse", s.parse)
	authed.GET("/jobs", s.listJobs)
	authed.GET("/jobs/:id", s.jobStatus)
	authed.GET("/jobs/:id/result", s.jobResult)
	authed.GET("/usage/export", s.usageExport)
}

// Start runs the listener until it fails or Shutdown is called.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Port
	s.log.Info("http.listening", "addr", addr, "version", Version)
	err := s.echo.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Version       string `json:"version"`
	Database      string `json:"database"`
	Ipfs          string `json:"ipfs"`
}

func (s *Server) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Version:       Version,
		Database:      "ok",
		Ipfs:          "ok",
	}
	if s.deps.DBProbe != nil {
		if err := s.deps.DBProbe(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
		}
	}
	if s.deps.IPFS != nil {
		if err := s.deps.IPFS.Health(ctx); err != nil {
			resp.Status = "degraded"
			resp.Ipfs = "unreachable"
		}
	}
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, resp)
}

// jobView is the API shape of a job row. Artifacts only appear on the
// result endpoint.
type jobView struct {
	JobID            string  `json:"job_id"`
	Status           string  `json:"status"`
	FileName         string  `json:"file_name"`
	RetryCount       int     `json:"retry_count"`
	Error            *string `json:"error,omitempty"`
	CreatedAt        string  `json:"created_at"`
	StartedAt        *string `json:"started_at,omitempty"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	ProcessingTimeMs *int64  `json:"processing_time_ms,omitempty"`
	WebhookSent      bool    `json:"webhook_sent"`
}

func statusIsTerminal(status string) bool {
	return constants.JobStatus(status).Terminal()
}
