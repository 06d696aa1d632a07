package constants

// FileState is the canonical per-file state in an ingestion batch.
type FileState string

// Stable values (store these exact strings in logs and outcomes).
const (
	FileStatePending      FileState = "PENDING"
	FileStateValidated    FileState = "VALIDATED"
	FileStateRejected     FileState = "REJECTED" // terminal failure
	FileStateClassified   FileState = "CLASSIFIED"
	FileStateResolved     FileState = "RESOLVED" // person matched
	FileStateFallback     FileState = "FALLBACK" // default person used
	FileStateUploaded     FileState = "UPLOADED"
	FileStateUploadFailed FileState = "UPLOAD_FAILED" // terminal failure
	FileStateRecorded     FileState = "RECORDED"      // terminal success
	FileStateRecordFailed FileState = "RECORD_FAILED" // terminal failure
)

// Terminal reports whether no further pipeline stage runs for this state.
func (s FileState) Terminal() bool {
	switch s {
	case FileStateRejected, FileStateUploadFailed, FileStateRecorded, FileStateRecordFailed:
		return true
	}
	return false
}

// PaymentStatus is the participant-level payment status in the roster.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)
