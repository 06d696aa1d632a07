package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/export"
	"github.com/campdesk/slip-ingest/internal/ingest"
	"github.com/campdesk/slip-ingest/internal/repository"
	"github.com/campdesk/slip-ingest/internal/roster"
	"github.com/campdesk/slip-ingest/internal/server"
	"github.com/campdesk/slip-ingest/internal/storage"
	"github.com/campdesk/slip-ingest/internal/vision/openai"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	uploader, err := storage.NewS3Uploader(cfg.Storage, logger)
	if err != nil {
		logger.Error("building storage client", "error", err)
		os.Exit(1)
	}

	classifier := openai.NewClient(openai.Config{
		APIKey:          cfg.Vision.APIKey,
		BaseURL:         cfg.Vision.BaseURL,
		Model:           cfg.Vision.Model,
		Temperature:     cfg.Vision.Temperature,
		Timeout:         cfg.Vision.Timeout,
		DefaultCurrency: cfg.Ingest.DefaultCurrency,
	}, logger)

	participants := repository.NewParticipantRepository(entc, dialect.Postgres, logger)
	slips := repository.NewSlipRepository(entc, logger)
	resolver := roster.NewResolver(participants, logger)

	var defaultParticipantID uuid.UUID
	if cfg.Ingest.DefaultParticipantID != "" {
		defaultParticipantID, err = uuid.Parse(cfg.Ingest.DefaultParticipantID)
		if err != nil {
			logger.Error("DEFAULT_PARTICIPANT_ID must be a UUID", "error", err)
			os.Exit(1)
		}
	}

	orchestrator := ingest.NewOrchestrator(
		classifier, resolver, uploader, slips, participants,
		defaultParticipantID, cfg.Storage.PathPrefix, logger,
	)
	exports := export.NewService(participants, slips, uploader, logger)

	handler := server.NewHandler(orchestrator, exports, func(ctx context.Context) error {
		return repository.HealthCheck(ctx, pool, time.Second, logger)
	}, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler.NewRouter(),
	}
	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
