package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/internal/ingest"
	"github.com/campdesk/slip-ingest/internal/vision"
)

// SlipIngestor is the orchestrator surface the HTTP layer depends on.
type SlipIngestor interface {
	Analyze(ctx context.Context, batch ingest.UploadBatch) (*ingest.AnalysisResult, error)
	Commit(ctx context.Context, batch ingest.UploadBatch, edited []vision.Extraction) (*ingest.BatchResult, error)
}

// SlipExporter produces XLSX workbooks for a participant's recorded slips.
type SlipExporter interface {
	ExportSlipsXLSX(ctx context.Context, participantID uuid.UUID) ([]byte, error)
}

// HealthChecker reports whether the backing database is reachable.
type HealthChecker func(ctx context.Context) error

// Handler wires HTTP routes to the ingestion orchestrator and export service.
type Handler struct {
	ingestor SlipIngestor
	exporter SlipExporter
	health   HealthChecker
	logger   *slog.Logger
}

func NewHandler(ingestor SlipIngestor, exporter SlipExporter, health HealthChecker, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{ingestor: ingestor, exporter: exporter, health: health, logger: logger}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/slips/analyze", h.analyzeSlips)
	api.POST("/slips/commit", h.commitSlips)
	api.GET("/slips/export", h.exportSlips)
	router.GET("/healthz", h.healthz)
}

// NewRouter builds a gin engine with the standard middleware and all routes
// registered.
func (h *Handler) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	h.RegisterRoutes(router)
	return router
}

func (h *Handler) healthz(c *gin.Context) {
	if h.health != nil {
		if err := h.health(c.Request.Context()); err != nil {
			h.logger.Error("server.healthz.failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
