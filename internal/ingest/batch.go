package ingest

import (
	"github.com/shopspring/decimal"

	"github.com/campdesk/slip-ingest/constants"
	"github.com/campdesk/slip-ingest/internal/vision"
)

// SlipFile is one uploaded file inside a batch, already read into memory.
type SlipFile struct {
	Filename string
	MIMEType string
	Size     int64
	Data     []byte
}

// Mode selects the phase a batch runs in.
type Mode string

const (
	ModeAnalyzeOnly      Mode = "analyze-only"
	ModeAnalyzeAndCommit Mode = "analyze-and-commit"
)

// UploadBatch is one HTTP request's worth of co-submitted files. Transient;
// constructed per request and discarded after the response.
type UploadBatch struct {
	Files []SlipFile
	// Subject is the batch-level reference: a participant UUID or a
	// free-text name used to pick the fallback participant.
	Subject string
	Mode    Mode
}

// AnalyzedFile is one file's phase-A result.
type AnalyzedFile struct {
	FileName   string            `json:"fileName"`
	Valid      bool              `json:"valid"`
	Error      string            `json:"error,omitempty"`
	Extraction vision.Extraction `json:"extraction"`
	// Failed mirrors the extraction tag at the JSON boundary.
	Failed bool `json:"analysisFailed"`
}

// AnalysisResult aggregates phase A over a batch.
type AnalysisResult struct {
	Results       []AnalyzedFile  `json:"analysisResults"`
	TotalAmount   decimal.Decimal `json:"totalExtractedAmount"`
	TotalFiles    int             `json:"totalFiles"`
	AvgConfidence float64         `json:"avgConfidence"`
}

// FileOutcome is produced exactly once per input file during phase B,
// independent of every other file's outcome.
type FileOutcome struct {
	FileName     string              `json:"fileName"`
	State        constants.FileState `json:"state"`
	Succeeded    bool                `json:"succeeded"`
	ErrorMessage string              `json:"errorMessage,omitempty"`
	StoragePath  string              `json:"storagePath,omitempty"`
	PublicURL    string              `json:"publicUrl,omitempty"`
	Extraction   *vision.Extraction  `json:"extraction,omitempty"`
	// UsedFallback reports that the extracted person name did not resolve
	// and the batch default participant received the slip.
	UsedFallback bool `json:"usedFallback,omitempty"`
}

// BatchResult aggregates phase B. TotalExtractedAmount sums amounts from
// succeeded, non-sentinel extractions only; failures contribute nothing.
type BatchResult struct {
	TotalFiles           int             `json:"totalFiles"`
	SuccessCount         int             `json:"successCount"`
	FailureCount         int             `json:"failureCount"`
	TotalExtractedAmount decimal.Decimal `json:"totalExtractedAmount"`
	Outcomes             []FileOutcome   `json:"results"`
}
