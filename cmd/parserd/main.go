// parserd is the rights-parser daemon: HTTP API, background worker pool,
// and webhook dispatcher in one process.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/internal/common"
	"github.com/rightsledger/rights-parser/internal/export"
	"github.com/rightsledger/rights-parser/internal/extractor"
	"github.com/rightsledger/rights-parser/internal/ipfs"
	"github.com/rightsledger/rights-parser/internal/llm/ollama"
	"github.com/rightsledger/rights-parser/internal/pdftext"
	"github.com/rightsledger/rights-parser/internal/publisher"
	"github.com/rightsledger/rights-parser/internal/repository"
	"github.com/rightsledger/rights-parser/internal/server"
	"github.com/rightsledger/rights-parser/internal/webhook"
	"github.com/rightsledger/rights-parser/internal/worker"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store: Postgres when DB_URL is set, embedded SQLite otherwise.
	var (
		entc    *ent.Client
		pool    *pgxpool.Pool
		err     error
		dbProbe func(ctx context.Context) error
	)
	if cfg.Database.DSN != "" {
		entc, pool, err = repository.Open(ctx, cfg.Database, log)
		if err == nil {
			dbProbe = func(ctx context.Context) error {
				return repository.HealthCheck(ctx, pool, cfg.Database, log)
			}
		}
	} else {
		entc, err = repository.OpenSQLite(ctx, cfg.Database.SQLitePath, log)
		if err == nil {
			dbProbe = func(ctx context.Context) error {
				_, qerr := entc.ApiKey.Query().Count(ctx)
				return qerr
			}
		}
	}
	if err != nil {
		log.Error("open store", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, log)

	if err := dbProbe(ctx); err != nil {
		log.Error("store health check failed", "error", err)
		os.Exit(1)
	}
	log.Info("store.ready")

	jobCfg := repository.JobConfig{
		MaxRetries:    cfg.Worker.MaxRetries,
		MaxProcessing: cfg.Worker.MaxProcessing,
	}
	jobs := repository.NewJobRepository(entc, jobCfg, log)
	keys := repository.NewApiKeyRepository(entc, log)
	usage := repository.NewUsageLogRepository(entc, log)

	// Pinning backend: Pinata when a JWT is configured, local Kubo otherwise.
	kubo := ipfs.NewKuboClient(cfg.IPFS.NodeURL, cfg.IPFS.Timeout, log)
	var pinner ipfs.Pinner = kubo
	if cfg.IPFS.PinataJWT != "" {
		pinner = ipfs.NewPinataClient(cfg.IPFS.PinataJWT, cfg.IPFS.Timeout, log)
		log.Info("ipfs.backend", "backend", "pinata")
	} else {
		log.Info("ipfs.backend", "backend", "kubo", "node_url", cfg.IPFS.NodeURL)
	}

	engine := ollama.NewClient(ollama.Config{
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, log)
	orch := extractor.New(engine, extractor.Config{
		MaxAttempts:    cfg.LLM.MaxAttempts,
		AttemptTimeout: cfg.LLM.Timeout,
		MaxPromptChars: cfg.LLM.MaxPromptChars,
	}, log)

	texts := pdftext.NewCommandExtractor(cfg.Worker.PdftotextBin, log)
	pub := publisher.New(pinner, log)

	dispatcher := webhook.NewDispatcher(webhook.Config{
		MaxAttempts: cfg.Webhook.MaxAttempts,
		Timeout:     cfg.Webhook.Timeout,
		BackoffBase: cfg.Webhook.BackoffBase,
		QueueSize:   cfg.Webhook.QueueSize,
		Workers:     cfg.Webhook.Workers,
	}, jobs, log)
	dispatcher.Start(ctx)

	wpool := worker.NewPool(worker.Config{
		Count:         cfg.Worker.Count,
		PollInterval:  cfg.Worker.PollInterval,
		MaxProcessing: cfg.Worker.MaxProcessing,
	}, jobs, texts, orch, pub, dispatcher, log)
	wpool.Start(ctx)

	srv := server.New(cfg.Server, server.Deps{
		Jobs:     jobs,
		Keys:     keys,
		Usage:    usage,
		Exporter: export.NewService(usage, log),
		DBProbe:  dbProbe,
		IPFS:     kubo,
		Logger:   log,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		log.Info("shutdown.signal")
	case err := <-errCh:
		if err != nil {
			log.Error("http server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	stop()
	wpool.Wait()
	dispatcher.Wait()
	log.Info("stopped")
}
