package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/constants"
	"github.com/campdesk/slip-ingest/gen/ent"
	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/ingest"
	"github.com/campdesk/slip-ingest/internal/repository"
	"github.com/campdesk/slip-ingest/internal/roster"
	"github.com/campdesk/slip-ingest/internal/storage"
	"github.com/campdesk/slip-ingest/internal/vision/openai"
)

func printError(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem       = flag.Bool("inmem", false, "use an in-memory SQLite database instead of DB_URL")
		dir         = flag.String("dir", "", "directory of slip images to process (required)")
		participant = flag.String("participant", "", "batch subject: participant UUID or first name")
		commit      = flag.Bool("commit", false, "upload and record slips; default is analyze only")
		out         = flag.String("out", "./slips-out", "local storage root when no STORAGE_ENDPOINT is set")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	entc, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	dbDialect := dialect.Postgres
	if *inmem {
		dbDialect = dialect.SQLite
	}
	participants := repository.NewParticipantRepository(entc, dbDialect, logger)
	slips := repository.NewSlipRepository(entc, logger)

	subject := strings.TrimSpace(*participant)
	if *inmem && subject == "" {
		// A throwaway database has no roster yet; seed one row to own the batch.
		row, err := participants.Create(ctx, "Local Batch", "")
		if err != nil {
			logger.Error("failed to seed participant", "error", err)
			os.Exit(1)
		}
		subject = row.ID.String()
		logger.Info("seeded batch participant", "id", subject)
	}
	if subject == "" {
		printError("Error: --participant is required unless --inmem seeds one\n")
		os.Exit(1)
	}

	var uploader storage.Uploader
	if cfg.Storage.Endpoint != "" {
		uploader, err = storage.NewS3Uploader(cfg.Storage, logger)
	} else {
		uploader, err = storage.NewFSUploader(*out, logger)
	}
	if err != nil {
		logger.Error("failed to build storage client", "error", err)
		os.Exit(1)
	}

	if cfg.Vision.APIKey == "" {
		logger.Warn("VISION_API_KEY not configured; every file will fail analysis")
	}
	classifier := openai.NewClient(openai.Config{
		APIKey:          cfg.Vision.APIKey,
		BaseURL:         cfg.Vision.BaseURL,
		Model:           cfg.Vision.Model,
		Temperature:     cfg.Vision.Temperature,
		Timeout:         cfg.Vision.Timeout,
		DefaultCurrency: cfg.Ingest.DefaultCurrency,
	}, logger)

	var defaultID uuid.UUID
	if id, err := uuid.Parse(subject); err == nil {
		defaultID = id
	}

	orchestrator := ingest.NewOrchestrator(
		classifier,
		roster.NewResolver(participants, logger),
		uploader,
		slips,
		participants,
		defaultID,
		cfg.Storage.PathPrefix,
		logger,
	)

	files, err := collectSlipFiles(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		printError("Error: no image files found under %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("scanned directory", "dir", *dir, "files", len(files))

	batch := ingest.UploadBatch{Files: files, Subject: subject, Mode: ingest.ModeAnalyzeOnly}
	var report any
	if *commit {
		batch.Mode = ingest.ModeAnalyzeAndCommit
		report, err = orchestrator.Commit(ctx, batch, nil)
	} else {
		report, err = orchestrator.Analyze(ctx, batch)
	}
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Error("failed to encode report", "error", err)
		os.Exit(1)
	}
}

// openDatabase returns either a Postgres-backed client (DB_URL) or a migrated
// in-memory SQLite client for local runs.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		client, err := repository.OpenSQLite(ctx, "file:slipbatch?mode=memory&cache=shared&_fk=1", logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}
	if cfg.Database.DSN == "" {
		return nil, nil, common.NewAppError("CONFIG_ERROR", "DB_URL is required without --inmem", common.ErrInvalidInput)
	}
	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { repository.Close(client, pool, logger) }, nil
}

// collectSlipFiles walks root and loads every file with an allowed image
// extension, in lexical walk order.
func collectSlipFiles(root string) ([]ingest.SlipFile, error) {
	var files []ingest.SlipFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		mimeType := mime.TypeByExtension("." + ext)
		if mimeType == "" {
			mimeType = "image/" + ext
		}
		files = append(files, ingest.SlipFile{
			Filename: d.Name(),
			MIMEType: mimeType,
			Size:     int64(len(data)),
			Data:     data,
		})
		return nil
	})
	return files, err
}
