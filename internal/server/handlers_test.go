package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/ingest"
	"github.com/campdesk/slip-ingest/internal/vision"
)

type fakeIngestor struct {
	gotAnalyze *ingest.UploadBatch
	gotCommit  *ingest.UploadBatch
	gotEdited  []vision.Extraction
	analyzeRes *ingest.AnalysisResult
	commitRes  *ingest.BatchResult
	err        error
}

func (f *fakeIngestor) Analyze(_ context.Context, batch ingest.UploadBatch) (*ingest.AnalysisResult, error) {
	f.gotAnalyze = &batch
	return f.analyzeRes, f.err
}

func (f *fakeIngestor) Commit(_ context.Context, batch ingest.UploadBatch, edited []vision.Extraction) (*ingest.BatchResult, error) {
	f.gotCommit = &batch
	f.gotEdited = edited
	return f.commitRes, f.err
}

type fakeExporter struct {
	gotID uuid.UUID
	xlsx  []byte
	err   error
}

func (f *fakeExporter) ExportSlipsXLSX(_ context.Context, id uuid.UUID) ([]byte, error) {
	f.gotID = id
	return f.xlsx, f.err
}

type filePart struct {
	name string
	mime string
	data []byte
}

func multipartBody(t *testing.T, fields map[string]string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, f.name))
		h.Set("Content-Type", f.mime)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func newTestRouter(ing *fakeIngestor, exp *fakeExporter, health HealthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(ing, exp, health, nil).NewRouter()
}

func doMultipart(t *testing.T, router *gin.Engine, path string, fields map[string]string, files []filePart) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, data []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, data)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	ing := &fakeIngestor{analyzeRes: &ingest.AnalysisResult{
		Results: []ingest.AnalyzedFile{
			{FileName: "a.jpg", Valid: true, Extraction: vision.Extraction{
				PersonName: "Somchai", Amount: decimal.NewFromInt(100), ItemName: "Camp fee", Currency: "฿", Confidence: 0.9,
			}},
		},
		TotalAmount:   decimal.NewFromInt(100),
		TotalFiles:    1,
		AvgConfidence: 0.9,
	}}
	router := newTestRouter(ing, &fakeExporter{}, nil)

	rec := doMultipart(t, router, "/api/slips/analyze",
		map[string]string{"participant": "camp batch"},
		[]filePart{{name: "a.jpg", mime: "image/jpeg", data: []byte("jpeg")}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp struct {
		Success         bool `json:"success"`
		AnalysisResults []struct {
			FileName       string          `json:"fileName"`
			Name           string          `json:"name"`
			Amount         decimal.Decimal `json:"amount"`
			AnalysisFailed bool            `json:"analysisFailed"`
		} `json:"analysisResults"`
		Summary struct {
			TotalFiles    int             `json:"totalFiles"`
			TotalAmount   decimal.Decimal `json:"totalAmount"`
			AvgConfidence float64         `json:"avgConfidence"`
		} `json:"summary"`
	}
	decodeJSON(t, rec.Body.Bytes(), &resp)
	if !resp.Success {
		t.Error("expected success:true")
	}
	if len(resp.AnalysisResults) != 1 || resp.AnalysisResults[0].FileName != "a.jpg" || resp.AnalysisResults[0].Name != "Somchai" {
		t.Errorf("analysisResults = %+v", resp.AnalysisResults)
	}
	if resp.Summary.TotalFiles != 1 || !resp.Summary.TotalAmount.Equal(decimal.NewFromInt(100)) || resp.Summary.AvgConfidence != 0.9 {
		t.Errorf("summary = %+v", resp.Summary)
	}
	if ing.gotAnalyze == nil || len(ing.gotAnalyze.Files) != 1 {
		t.Fatal("orchestrator did not receive the parsed batch")
	}
	if got := ing.gotAnalyze.Files[0]; got.MIMEType != "image/jpeg" || got.Size != 4 {
		t.Errorf("parsed file = %+v", got)
	}
	if ing.gotCommit != nil {
		t.Error("analyze must never reach the commit path")
	}
}

func TestAnalyzeRequiresFilesAndParticipant(t *testing.T) {
	router := newTestRouter(&fakeIngestor{}, &fakeExporter{}, nil)

	rec := doMultipart(t, router, "/api/slips/analyze",
		map[string]string{"participant": "camp batch"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("no files: status = %d, want 400", rec.Code)
	}

	rec = doMultipart(t, router, "/api/slips/analyze",
		nil, []filePart{{name: "a.jpg", mime: "image/jpeg", data: []byte("jpeg")}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing participant: status = %d, want 400", rec.Code)
	}
}

func TestCommitEndpointForwardsEdits(t *testing.T) {
	ing := &fakeIngestor{commitRes: &ingest.BatchResult{
		TotalFiles:   1,
		SuccessCount: 1,
		Outcomes: []ingest.FileOutcome{{
			FileName:  "a.jpg",
			Succeeded: true,
			Extraction: &vision.Extraction{
				PersonName: "Mali", Amount: decimal.RequireFromString("75.25"),
				ItemName: "Camp fee", Currency: "฿", Confidence: 1,
			},
		}},
		TotalExtractedAmount: decimal.RequireFromString("75.25"),
	}}
	router := newTestRouter(ing, &fakeExporter{}, nil)

	rec := doMultipart(t, router, "/api/slips/commit",
		map[string]string{
			"participant": uuid.NewString(),
			"editedData":  `[{"name":"Mali","amount":"75.25","itemName":"Camp fee"}]`,
		},
		[]filePart{{name: "a.jpg", mime: "image/jpeg", data: []byte("jpeg")}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if len(ing.gotEdited) != 1 || ing.gotEdited[0].PersonName != "Mali" {
		t.Fatalf("edited = %+v", ing.gotEdited)
	}
	if !ing.gotEdited[0].Amount.Equal(decimal.RequireFromString("75.25")) {
		t.Errorf("edited amount = %s", ing.gotEdited[0].Amount)
	}
	var resp struct {
		Success bool `json:"success"`
		Results []struct {
			FileName  string `json:"fileName"`
			Succeeded bool   `json:"succeeded"`
		} `json:"results"`
		Summary struct {
			Successful int `json:"successful"`
			Failed     int `json:"failed"`
		} `json:"summary"`
	}
	decodeJSON(t, rec.Body.Bytes(), &resp)
	if !resp.Success || len(resp.Results) != 1 || !resp.Results[0].Succeeded {
		t.Errorf("response = %+v", resp)
	}
	if resp.Summary.Successful != 1 || resp.Summary.Failed != 0 {
		t.Errorf("summary = %+v", resp.Summary)
	}
}

func TestCommitRejectsMalformedEditedData(t *testing.T) {
	router := newTestRouter(&fakeIngestor{}, &fakeExporter{}, nil)

	rec := doMultipart(t, router, "/api/slips/commit",
		map[string]string{"participant": "camp batch", "editedData": "{not json"},
		[]filePart{{name: "a.jpg", mime: "image/jpeg", data: []byte("jpeg")}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCommitValidationErrorIsA400(t *testing.T) {
	ing := &fakeIngestor{err: common.NewAppError("EDITED_DATA_MISMATCH",
		"editedData length does not match the number of files", common.ErrValidation)}
	router := newTestRouter(ing, &fakeExporter{}, nil)

	rec := doMultipart(t, router, "/api/slips/commit",
		map[string]string{"participant": "camp batch"},
		[]filePart{{name: "a.jpg", mime: "image/jpeg", data: []byte("jpeg")}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCommitInternalFailureIsA200WithError(t *testing.T) {
	ing := &fakeIngestor{err: common.NewAppError("DB_ERROR", "insert failed", common.ErrDatabase)}
	router := newTestRouter(ing, &fakeExporter{}, nil)

	rec := doMultipart(t, router, "/api/slips/commit",
		map[string]string{"participant": "camp batch"},
		[]filePart{{name: "a.jpg", mime: "image/jpeg", data: []byte("jpeg")}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with an error body", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	decodeJSON(t, rec.Body.Bytes(), &resp)
	if resp.Success || resp.Error == "" {
		t.Errorf("response = %+v, want success:false with an error string", resp)
	}
}

func TestExportEndpoint(t *testing.T) {
	exp := &fakeExporter{xlsx: []byte("workbook-bytes")}
	router := newTestRouter(&fakeIngestor{}, exp, nil)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/slips/export?participant="+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if exp.gotID != id {
		t.Errorf("exporter got %s, want %s", exp.gotID, id)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", got)
	}
	if rec.Body.String() != "workbook-bytes" {
		t.Error("body must carry the workbook bytes verbatim")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/slips/export?participant=not-a-uuid", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad uuid: status = %d, want 400", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&fakeIngestor{}, &fakeExporter{}, func(context.Context) error { return nil })
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	router = newTestRouter(&fakeIngestor{}, &fakeExporter{}, func(context.Context) error {
		return fmt.Errorf("pool exhausted")
	})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
