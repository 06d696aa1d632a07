package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campdesk/slip-ingest/constants"
	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/repository"
	"github.com/campdesk/slip-ingest/internal/roster"
	"github.com/campdesk/slip-ingest/internal/storage"
	"github.com/campdesk/slip-ingest/internal/vision"
)

// Orchestrator drives the per-file pipeline and accumulates the run-level
// result. Files are processed sequentially in input order; no file's failure
// blocks another's processing.
type Orchestrator struct {
	classifier   vision.Classifier
	resolver     *roster.Resolver
	uploader     storage.Uploader
	slips        repository.SlipRepository
	participants repository.ParticipantRepository
	logger       *slog.Logger

	defaultParticipantID uuid.UUID
	pathPrefix           string
	now                  func() time.Time
}

func NewOrchestrator(
	classifier vision.Classifier,
	resolver *roster.Resolver,
	uploader storage.Uploader,
	slips repository.SlipRepository,
	participants repository.ParticipantRepository,
	defaultParticipantID uuid.UUID,
	pathPrefix string,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		classifier:           classifier,
		resolver:             resolver,
		uploader:             uploader,
		slips:                slips,
		participants:         participants,
		defaultParticipantID: defaultParticipantID,
		pathPrefix:           pathPrefix,
		logger:               logger,
		now:                  time.Now,
	}
}

// Analyze runs phase A: validate and classify every file, persist nothing.
// The results go back to the client for human review and come back, possibly
// edited, in the commit phase.
func (o *Orchestrator) Analyze(ctx context.Context, batch UploadBatch) (*AnalysisResult, error) {
	if len(batch.Files) == 0 {
		return nil, common.NewAppError("EMPTY_BATCH", "no files supplied", common.ErrValidation)
	}

	res := &AnalysisResult{
		Results:     make([]AnalyzedFile, 0, len(batch.Files)),
		TotalAmount: decimal.Zero,
		TotalFiles:  len(batch.Files),
	}
	var confSum float64

	for i, f := range batch.Files {
		if v := ValidateFile(f); !v.IsValid {
			o.logger.Warn("ingest.analyze.rejected", "index", i, "filename", f.Filename, "reason", v.Error)
			res.Results = append(res.Results, AnalyzedFile{
				FileName:   f.Filename,
				Valid:      false,
				Error:      v.Error,
				Extraction: vision.FailureSentinel(v.Error),
				Failed:     true,
			})
			continue
		}

		ext := o.classifier.Classify(ctx, vision.SlipImage{
			Filename: f.Filename,
			MIMEType: f.MIMEType,
			Data:     f.Data,
		})
		res.Results = append(res.Results, AnalyzedFile{
			FileName:   f.Filename,
			Valid:      true,
			Error:      ext.FailureReason,
			Extraction: ext,
			Failed:     ext.Failed,
		})
		if !ext.Failed {
			res.TotalAmount = res.TotalAmount.Add(ext.Amount)
		}
		confSum += ext.Confidence
	}

	if len(res.Results) > 0 {
		res.AvgConfidence = confSum / float64(len(res.Results))
	}
	o.logger.Info("ingest.analyze.done",
		"batch_id", common.BatchIDFromContext(ctx),
		"mode", batch.Mode,
		"total_files", res.TotalFiles,
		"total_amount", res.TotalAmount,
		"avg_confidence", res.AvgConfidence,
	)
	return res, nil
}

// Commit runs phase B: resolve, upload, and record every file. The edited
// slice carries human-corrected extractions from phase A; correspondence is
// strictly positional, so a length mismatch fails the whole batch before any
// upload happens.
func (o *Orchestrator) Commit(ctx context.Context, batch UploadBatch, edited []vision.Extraction) (*BatchResult, error) {
	if len(batch.Files) == 0 {
		return nil, common.NewAppError("EMPTY_BATCH", "no files supplied", common.ErrValidation)
	}
	if edited != nil && len(edited) != len(batch.Files) {
		return nil, common.NewAppError("EDITED_DATA_MISMATCH",
			"editedData length does not match the number of files", common.ErrValidation)
	}

	fallbackID, err := o.resolveSubject(ctx, batch.Subject)
	if err != nil {
		return nil, err
	}

	res := &BatchResult{
		TotalFiles:           len(batch.Files),
		TotalExtractedAmount: decimal.Zero,
		Outcomes:             make([]FileOutcome, 0, len(batch.Files)),
	}
	batchTime := o.now()

	for i, f := range batch.Files {
		outcome := o.commitFile(ctx, f, i, batchTime, fallbackID, edited)
		if outcome.Succeeded {
			res.SuccessCount++
			if outcome.Extraction != nil && !outcome.Extraction.Failed {
				res.TotalExtractedAmount = res.TotalExtractedAmount.Add(outcome.Extraction.Amount)
			}
		} else {
			res.FailureCount++
		}
		res.Outcomes = append(res.Outcomes, outcome)
	}

	o.logger.Info("ingest.commit.done",
		"batch_id", common.BatchIDFromContext(ctx),
		"mode", batch.Mode,
		"total_files", res.TotalFiles,
		"succeeded", res.SuccessCount,
		"failed", res.FailureCount,
		"total_amount", res.TotalExtractedAmount,
	)
	return res, nil
}

// commitFile walks one file through validated -> classified -> resolved ->
// uploaded -> recorded, stopping at the first terminal failure.
func (o *Orchestrator) commitFile(ctx context.Context, f SlipFile, index int, batchTime time.Time, fallbackID uuid.UUID, edited []vision.Extraction) FileOutcome {
	if v := ValidateFile(f); !v.IsValid {
		o.logger.Warn("ingest.commit.rejected", "index", index, "filename", f.Filename, "reason", v.Error)
		return FileOutcome{
			FileName:     f.Filename,
			State:        constants.FileStateRejected,
			ErrorMessage: v.Error,
		}
	}

	o.logger.Debug("ingest.commit.validated",
		"index", index, "filename", f.Filename, "state", constants.FileStateValidated)

	var ext vision.Extraction
	if edited != nil {
		ext = normalizeEdited(edited[index])
	} else {
		ext = o.classifier.Classify(ctx, vision.SlipImage{
			Filename: f.Filename,
			MIMEType: f.MIMEType,
			Data:     f.Data,
		})
	}
	o.logger.Debug("ingest.commit.classified",
		"index", index, "filename", f.Filename,
		"state", constants.FileStateClassified, "extraction_failed", ext.Failed)

	participantID, usedFallback := o.resolver.ResolveOrDefault(ctx, ext.PersonName, fallbackID)
	state := constants.FileStateResolved
	if usedFallback {
		state = constants.FileStateFallback
	}
	o.logger.Debug("ingest.commit.resolved",
		"index", index, "filename", f.Filename,
		"state", state, "participant_id", participantID,
	)

	path := StoragePath(o.pathPrefix, participantID.String(), batchTime, index, f.Filename)
	publicURL, err := o.uploader.Upload(ctx, path, f.MIMEType, f.Data)
	if err != nil {
		o.logger.Error("ingest.commit.upload_failed", "index", index, "filename", f.Filename, "path", path, "error", err)
		return FileOutcome{
			FileName:     f.Filename,
			State:        constants.FileStateUploadFailed,
			ErrorMessage: err.Error(),
			Extraction:   &ext,
			UsedFallback: usedFallback,
		}
	}

	o.logger.Debug("ingest.commit.uploaded",
		"index", index, "filename", f.Filename,
		"state", constants.FileStateUploaded, "path", path)

	var amount *float64
	if !ext.Failed {
		a, _ := ext.Amount.Float64()
		amount = &a
	}
	if _, err := o.slips.Create(ctx, repository.SlipRecord{
		ParticipantID: participantID,
		StoragePath:   path,
		Filename:      f.Filename,
		MIMEType:      f.MIMEType,
		FileSize:      int(f.Size),
		Amount:        amount,
		UploadedAt:    batchTime,
	}); err != nil {
		// The uploaded object is now orphaned; accepted inconsistency
		// window, surfaced in the log and the outcome.
		o.logger.Error("ingest.commit.record_failed",
			"index", index, "filename", f.Filename,
			"orphaned_path", path, "error", err,
		)
		return FileOutcome{
			FileName:     f.Filename,
			State:        constants.FileStateRecordFailed,
			ErrorMessage: err.Error(),
			StoragePath:  path,
			PublicURL:    publicURL,
			Extraction:   &ext,
			UsedFallback: usedFallback,
		}
	}

	if amount != nil && *amount > 0 {
		if _, err := o.participants.RecordPayment(ctx, participantID, *amount); err != nil {
			// Side effect only; the slip row is already durable.
			o.logger.Error("ingest.commit.payment_update_failed",
				"participant_id", participantID, "amount", *amount, "error", err)
		}
	}

	o.logger.Info("ingest.commit.recorded",
		"index", index,
		"filename", f.Filename,
		"participant_id", participantID,
		"path", path,
		"used_fallback", usedFallback,
		"extraction_failed", ext.Failed,
	)
	return FileOutcome{
		FileName:     f.Filename,
		State:        constants.FileStateRecorded,
		Succeeded:    true,
		StoragePath:  path,
		PublicURL:    publicURL,
		Extraction:   &ext,
		UsedFallback: usedFallback,
	}
}

// resolveSubject turns the batch subject into the fallback participant:
// a UUID is checked against the roster, a free-text name goes through the
// resolver, and the configured default participant is the last resort.
func (o *Orchestrator) resolveSubject(ctx context.Context, subject string) (uuid.UUID, error) {
	if id, err := uuid.Parse(subject); err == nil {
		ok, err := o.participants.Exists(ctx, id)
		if err == nil && ok {
			return id, nil
		}
		o.logger.Warn("ingest.subject.unknown_id", "participant_id", id, "error", err)
	} else if subject != "" {
		if res := o.resolver.Resolve(ctx, subject); res.Found {
			return res.ParticipantID, nil
		}
	}
	if o.defaultParticipantID != uuid.Nil {
		return o.defaultParticipantID, nil
	}
	return uuid.Nil, common.NewAppError("SUBJECT_UNRESOLVED",
		"subject does not resolve to a participant and no default is configured", common.ErrValidation)
}

// normalizeEdited applies the same defaults to human-edited extraction data
// that the parser applies to model output.
func normalizeEdited(ext vision.Extraction) vision.Extraction {
	if ext.Amount.IsNegative() {
		ext.Amount = decimal.Zero
	}
	if ext.PersonName == "" {
		ext.PersonName = "Unknown"
	}
	if ext.ItemName == "" {
		ext.ItemName = "Payment slip"
	}
	if ext.Currency == "" {
		ext.Currency = constants.DefaultCurrencySymbol
	}
	return ext
}
