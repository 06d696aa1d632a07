package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campdesk/slip-ingest/constants"
	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/ingest"
	"github.com/campdesk/slip-ingest/internal/vision"
)

// analysisEntry is one analyzed file flattened for the response body.
type analysisEntry struct {
	FileName       string `json:"fileName"`
	AnalysisFailed bool   `json:"analysisFailed"`
	vision.Extraction
}

type analyzeResponse struct {
	Success              bool            `json:"success"`
	AnalysisResults      []analysisEntry `json:"analysisResults"`
	TotalExtractedAmount decimal.Decimal `json:"totalExtractedAmount"`
	Summary              struct {
		TotalFiles    int             `json:"totalFiles"`
		TotalAmount   decimal.Decimal `json:"totalAmount"`
		AvgConfidence float64         `json:"avgConfidence"`
	} `json:"summary"`
}

type commitResponse struct {
	Success              bool                 `json:"success"`
	Results              []ingest.FileOutcome `json:"results"`
	AnalysisResults      []analysisEntry      `json:"analysisResults"`
	TotalExtractedAmount decimal.Decimal      `json:"totalExtractedAmount"`
	Summary              struct {
		TotalFiles  int             `json:"totalFiles"`
		Successful  int             `json:"successful"`
		Failed      int             `json:"failed"`
		TotalAmount decimal.Decimal `json:"totalAmount"`
	} `json:"summary"`
}

func (h *Handler) analyzeSlips(c *gin.Context) {
	batch, ok := h.parseBatch(c)
	if !ok {
		return
	}

	ctx := common.WithBatchID(c.Request.Context(), uuid.NewString())
	res, err := h.ingestor.Analyze(ctx, batch)
	if err != nil {
		h.writeBatchError(c, "analyze", err)
		return
	}

	var resp analyzeResponse
	resp.Success = true
	resp.TotalExtractedAmount = res.TotalAmount
	resp.Summary.TotalFiles = res.TotalFiles
	resp.Summary.TotalAmount = res.TotalAmount
	resp.Summary.AvgConfidence = res.AvgConfidence
	for _, r := range res.Results {
		resp.AnalysisResults = append(resp.AnalysisResults, analysisEntry{
			FileName:       r.FileName,
			AnalysisFailed: r.Failed,
			Extraction:     r.Extraction,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) commitSlips(c *gin.Context) {
	batch, ok := h.parseBatch(c)
	if !ok {
		return
	}
	batch.Mode = ingest.ModeAnalyzeAndCommit

	var edited []vision.Extraction
	if raw := strings.TrimSpace(c.PostForm("editedData")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &edited); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "editedData is not a valid JSON array"})
			return
		}
	}

	ctx := common.WithBatchID(c.Request.Context(), uuid.NewString())
	res, err := h.ingestor.Commit(ctx, batch, edited)
	if err != nil {
		h.writeBatchError(c, "commit", err)
		return
	}

	var resp commitResponse
	resp.Success = true
	resp.Results = res.Outcomes
	resp.TotalExtractedAmount = res.TotalExtractedAmount
	resp.Summary.TotalFiles = res.TotalFiles
	resp.Summary.Successful = res.SuccessCount
	resp.Summary.Failed = res.FailureCount
	resp.Summary.TotalAmount = res.TotalExtractedAmount
	for _, out := range res.Outcomes {
		entry := analysisEntry{FileName: out.FileName}
		if out.Extraction != nil {
			entry.Extraction = *out.Extraction
			entry.AnalysisFailed = out.Extraction.Failed
		} else {
			entry.Extraction = vision.FailureSentinel(out.ErrorMessage)
			entry.AnalysisFailed = true
		}
		resp.AnalysisResults = append(resp.AnalysisResults, entry)
	}
	c.JSON(http.StatusOK, resp)
}

// parseBatch reads the multipart form shared by both phases: one or more
// "files" parts plus a required "participant" subject field. A malformed
// request is answered here with a 400.
func (h *Handler) parseBatch(c *gin.Context) (ingest.UploadBatch, bool) {
	if err := c.Request.ParseMultipartForm(constants.MaxSlipFileBytes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid multipart form"})
		return ingest.UploadBatch{}, false
	}
	subject := strings.TrimSpace(c.PostForm("participant"))
	if subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "participant is required"})
		return ingest.UploadBatch{}, false
	}
	form := c.Request.MultipartForm
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no files supplied"})
		return ingest.UploadBatch{}, false
	}

	batch := ingest.UploadBatch{Subject: subject, Mode: ingest.ModeAnalyzeOnly}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unreadable file part: " + fh.Filename})
			return ingest.UploadBatch{}, false
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unreadable file part: " + fh.Filename})
			return ingest.UploadBatch{}, false
		}
		batch.Files = append(batch.Files, ingest.SlipFile{
			Filename: fh.Filename,
			MIMEType: fh.Header.Get("Content-Type"),
			Size:     int64(len(data)),
			Data:     data,
		})
	}
	return batch, true
}

// writeBatchError maps orchestrator errors onto the HTTP contract: request
// validation problems are a 400, anything unexpected is a 200 with
// success:false so the client always gets a JSON body.
func (h *Handler) writeBatchError(c *gin.Context, phase string, err error) {
	if errors.Is(err, common.ErrValidation) {
		h.logger.Warn("server.slips."+phase+".rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	h.logger.Error("server.slips."+phase+".failed", "error", err)
	c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
}
