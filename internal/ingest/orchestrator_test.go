package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campdesk/slip-ingest/constants"
	"github.com/campdesk/slip-ingest/gen/ent"
	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/repository"
	"github.com/campdesk/slip-ingest/internal/roster"
	"github.com/campdesk/slip-ingest/internal/vision"
)

type fakeClassifier struct {
	byName map[string]vision.Extraction
}

func (f *fakeClassifier) Classify(_ context.Context, img vision.SlipImage) vision.Extraction {
	if e, ok := f.byName[img.Filename]; ok {
		return e
	}
	return vision.FailureSentinel("model call failed: network down")
}

type fakeUploader struct {
	uploads []string
	failOn  func(path string) bool
}

func (f *fakeUploader) Upload(_ context.Context, path, _ string, _ []byte) (string, error) {
	if f.failOn != nil && f.failOn(path) {
		return "", common.NewAppError("STORAGE_COLLISION", "object already exists at "+path, common.ErrStorage)
	}
	f.uploads = append(f.uploads, path)
	return f.PublicURL(path), nil
}

func (f *fakeUploader) PublicURL(path string) string {
	return "https://cdn.test/payment-slips/" + path
}

type fakeSlips struct {
	repository.SlipRepository
	created  []repository.SlipRecord
	failFile string
}

func (f *fakeSlips) Create(_ context.Context, rec repository.SlipRecord) (*ent.Slip, error) {
	if f.failFile != "" && rec.Filename == f.failFile {
		return nil, common.NewAppError("DB_ERROR", "insert failed", common.ErrDatabase)
	}
	f.created = append(f.created, rec)
	return &ent.Slip{ID: uuid.New(), StoragePath: rec.StoragePath}, nil
}

type fakeParticipants struct {
	repository.ParticipantRepository
	byName    map[string]uuid.UUID
	ambiguous map[string]bool
	payments  map[uuid.UUID]float64
}

func (f *fakeParticipants) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

func (f *fakeParticipants) FindUniqueByFirstName(_ context.Context, name string) (*ent.Participant, error) {
	if f.ambiguous[name] {
		return nil, common.NewAppError("PARTICIPANT_AMBIGUOUS", "multiple participants match name", common.ErrAmbiguous)
	}
	if id, ok := f.byName[name]; ok {
		return &ent.Participant{ID: id, FirstName: name}, nil
	}
	return nil, common.NewAppError("PARTICIPANT_NOT_FOUND", "no participant matches name", common.ErrNotFound)
}

func (f *fakeParticipants) RecordPayment(_ context.Context, id uuid.UUID, amount float64) (*ent.Participant, error) {
	if f.payments == nil {
		f.payments = map[uuid.UUID]float64{}
	}
	f.payments[id] += amount
	return &ent.Participant{ID: id, PaidAmount: f.payments[id]}, nil
}

func newTestOrchestrator(cls *fakeClassifier, up *fakeUploader, slips *fakeSlips, parts *fakeParticipants, defaultID uuid.UUID) *Orchestrator {
	o := NewOrchestrator(
		cls,
		roster.NewResolver(parts, nil),
		up,
		slips,
		parts,
		defaultID,
		"slips",
		nil,
	)
	o.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return o
}

func imageFile(name string) SlipFile {
	return SlipFile{Filename: name, MIMEType: "image/jpeg", Size: 1024, Data: []byte("jpeg-bytes")}
}

func okExtraction(amount int64) vision.Extraction {
	return vision.Extraction{
		PersonName: "Unknown",
		Amount:     decimal.NewFromInt(amount),
		ItemName:   "Camp fee",
		Currency:   "฿",
		Confidence: 0.9,
	}
}

func TestCommitAllSucceed(t *testing.T) {
	cls := &fakeClassifier{byName: map[string]vision.Extraction{
		"a.jpg": okExtraction(100),
		"b.jpg": okExtraction(200),
		"c.jpg": okExtraction(300),
	}}
	up := &fakeUploader{}
	slips := &fakeSlips{}
	parts := &fakeParticipants{}
	subject := uuid.New()
	o := newTestOrchestrator(cls, up, slips, parts, uuid.Nil)

	res, err := o.Commit(context.Background(), UploadBatch{
		Files:   []SlipFile{imageFile("a.jpg"), imageFile("b.jpg"), imageFile("c.jpg")},
		Subject: subject.String(),
	}, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if res.TotalFiles != 3 || res.SuccessCount != 3 || res.FailureCount != 0 {
		t.Errorf("counts = {%d %d %d}, want {3 3 0}", res.TotalFiles, res.SuccessCount, res.FailureCount)
	}
	if !res.TotalExtractedAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("total = %s, want 600", res.TotalExtractedAmount)
	}
	if len(slips.created) != 3 {
		t.Fatalf("expected 3 slip rows, got %d", len(slips.created))
	}
	for _, rec := range slips.created {
		if rec.ParticipantID != subject {
			t.Errorf("slip owned by %s, want subject %s", rec.ParticipantID, subject)
		}
		if rec.StoragePath == "" {
			t.Error("successful outcome must carry a non-empty storage path")
		}
	}
	// every payment landed on the subject
	if got := parts.payments[subject]; got != 600 {
		t.Errorf("recorded payments = %v, want 600", got)
	}
	for _, out := range res.Outcomes {
		if !out.State.Terminal() {
			t.Errorf("outcome state %s is not terminal", out.State)
		}
	}
}

func TestCommitInvalidFileIsIsolated(t *testing.T) {
	cls := &fakeClassifier{byName: map[string]vision.Extraction{
		"b.jpg": okExtraction(150),
	}}
	up := &fakeUploader{}
	slips := &fakeSlips{}
	o := newTestOrchestrator(cls, up, slips, &fakeParticipants{}, uuid.New())

	res, err := o.Commit(context.Background(), UploadBatch{
		Files: []SlipFile{
			{Filename: "notes.txt", MIMEType: "text/plain", Size: 10, Data: []byte("hi")},
			imageFile("b.jpg"),
		},
		Subject: "camp batch",
	}, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if res.TotalFiles != 2 || res.SuccessCount != 1 || res.FailureCount != 1 {
		t.Errorf("counts = {%d %d %d}, want {2 1 1}", res.TotalFiles, res.SuccessCount, res.FailureCount)
	}
	if !res.TotalExtractedAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("total = %s, want 150", res.TotalExtractedAmount)
	}
	txt := res.Outcomes[0]
	if txt.State != constants.FileStateRejected || txt.Succeeded {
		t.Errorf("txt outcome = %+v, want rejected", txt)
	}
	if txt.ErrorMessage == "" {
		t.Error("rejected outcome must carry a non-empty error message")
	}
	if res.Outcomes[1].FileName != "b.jpg" || !res.Outcomes[1].Succeeded {
		t.Errorf("outcome order must mirror input order, got %+v", res.Outcomes)
	}
}

func TestCommitSentinelContributesNothing(t *testing.T) {
	cls := &fakeClassifier{byName: map[string]vision.Extraction{
		"good.jpg": okExtraction(150),
		// bad.jpg falls through to the sentinel
	}}
	up := &fakeUploader{}
	slips := &fakeSlips{}
	parts := &fakeParticipants{}
	o := newTestOrchestrator(cls, up, slips, parts, uuid.New())

	res, err := o.Commit(context.Background(), UploadBatch{
		Files:   []SlipFile{imageFile("bad.jpg"), imageFile("good.jpg")},
		Subject: "camp batch",
	}, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// The sentinel file still uploads and records, just with no amount.
	if res.SuccessCount != 2 {
		t.Fatalf("success count = %d, want 2", res.SuccessCount)
	}
	if !res.TotalExtractedAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("total = %s, want 150 (sentinel contributes 0)", res.TotalExtractedAmount)
	}
	bad := res.Outcomes[0]
	if bad.Extraction == nil || !bad.Extraction.Failed {
		t.Fatal("sentinel extraction must stay tagged as failed")
	}
	if !bad.Extraction.Amount.Equal(decimal.Zero) || bad.Extraction.Confidence != 0 || bad.Extraction.PersonName != "Unknown" {
		t.Errorf("sentinel shape = %+v", bad.Extraction)
	}
	// sentinel row persisted without an amount
	for _, rec := range slips.created {
		if rec.Filename == "bad.jpg" && rec.Amount != nil {
			t.Errorf("sentinel slip row must have nil amount, got %v", *rec.Amount)
		}
	}
	// no payment recorded for the sentinel
	var paid float64
	for _, v := range parts.payments {
		paid += v
	}
	if paid != 150 {
		t.Errorf("payments = %v, want 150", paid)
	}
}

func TestCommitUploadFailureIsIsolated(t *testing.T) {
	cls := &fakeClassifier{byName: map[string]vision.Extraction{
		"a.jpg": okExtraction(100),
		"b.jpg": okExtraction(200),
	}}
	up := &fakeUploader{failOn: func(path string) bool { return strings.Contains(path, "_0.") }}
	slips := &fakeSlips{}
	o := newTestOrchestrator(cls, up, slips, &fakeParticipants{}, uuid.New())

	res, err := o.Commit(context.Background(), UploadBatch{
		Files:   []SlipFile{imageFile("a.jpg"), imageFile("b.jpg")},
		Subject: "camp batch",
	}, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if res.Outcomes[0].State != constants.FileStateUploadFailed {
		t.Errorf("first outcome state = %s, want upload failed", res.Outcomes[0].State)
	}
	if !res.Outcomes[1].Succeeded {
		t.Error("second file must proceed despite the first file's upload failure")
	}
	if !res.TotalExtractedAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("total = %s, want 200", res.TotalExtractedAmount)
	}
}

func TestCommitRecordFailureKeepsOrphanedPath(t *testing.T) {
	cls := &fakeClassifier{byName: map[string]vision.Extraction{"a.jpg": okExtraction(100)}}
	up := &fakeUploader{}
	slips := &fakeSlips{failFile: "a.jpg"}
	o := newTestOrchestrator(cls, up, slips, &fakeParticipants{}, uuid.New())

	res, err := o.Commit(context.Background(), UploadBatch{
		Files:   []SlipFile{imageFile("a.jpg")},
		Subject: "camp batch",
	}, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	out := res.Outcomes[0]
	if out.State != constants.FileStateRecordFailed || out.Succeeded {
		t.Fatalf("outcome = %+v, want record failed", out)
	}
	// No compensating delete: the outcome surfaces the orphaned object.
	if out.StoragePath == "" || out.PublicURL == "" {
		t.Error("record-failed outcome must surface the orphaned storage path and URL")
	}
	if !res.TotalExtractedAmount.Equal(decimal.Zero) {
		t.Errorf("total = %s, want 0 for a failed outcome", res.TotalExtractedAmount)
	}
}

func TestCommitResolvesExtractedNames(t *testing.T) {
	somchaiID := uuid.New()
	fallbackID := uuid.New()
	ext := okExtraction(100)
	ext.PersonName = "Somchai"
	cls := &fakeClassifier{byName: map[string]vision.Extraction{
		"somchai.jpg": ext,
		"mystery.jpg": okExtraction(50), // PersonName "Unknown" skips the lookup
	}}
	slips := &fakeSlips{}
	parts := &fakeParticipants{byName: map[string]uuid.UUID{"Somchai": somchaiID}}
	o := newTestOrchestrator(cls, &fakeUploader{}, slips, parts, uuid.Nil)

	res, err := o.Commit(context.Background(), UploadBatch{
		Files:   []SlipFile{imageFile("somchai.jpg"), imageFile("mystery.jpg")},
		Subject: fallbackID.String(),
	}, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if res.Outcomes[0].UsedFallback {
		t.Error("resolved name must not use the fallback")
	}
	if !res.Outcomes[1].UsedFallback {
		t.Error("unresolved name must fall back to the batch subject")
	}
	if slips.created[0].ParticipantID != somchaiID {
		t.Errorf("slip 0 owner = %s, want resolved %s", slips.created[0].ParticipantID, somchaiID)
	}
	if slips.created[1].ParticipantID != fallbackID {
		t.Errorf("slip 1 owner = %s, want fallback %s", slips.created[1].ParticipantID, fallbackID)
	}
}

func TestCommitEditedDataAppliedPositionally(t *testing.T) {
	// Classifier would fail both files; edits override it entirely.
	cls := &fakeClassifier{}
	slips := &fakeSlips{}
	o := newTestOrchestrator(cls, &fakeUploader{}, slips, &fakeParticipants{}, uuid.New())

	edited := []vision.Extraction{
		{PersonName: "Mali", Amount: decimal.RequireFromString("75.25")},
		{PersonName: "Niran", Amount: decimal.NewFromInt(20)},
	}
	res, err := o.Commit(context.Background(), UploadBatch{
		Files:   []SlipFile{imageFile("a.jpg"), imageFile("b.jpg")},
		Subject: "camp batch",
	}, edited)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if !res.TotalExtractedAmount.Equal(decimal.RequireFromString("95.25")) {
		t.Errorf("total = %s, want 95.25", res.TotalExtractedAmount)
	}
	if got := res.Outcomes[0].Extraction.PersonName; got != "Mali" {
		t.Errorf("outcome 0 name = %q, want the first edit", got)
	}
	if got := res.Outcomes[1].Extraction.PersonName; got != "Niran" {
		t.Errorf("outcome 1 name = %q, want the second edit", got)
	}
	// edits fill the same defaults the parser does
	if got := res.Outcomes[0].Extraction.ItemName; got != "Payment slip" {
		t.Errorf("edited itemName = %q, want default", got)
	}
}

func TestCommitEditedDataLengthMismatchFailsWholeBatch(t *testing.T) {
	slips := &fakeSlips{}
	up := &fakeUploader{}
	o := newTestOrchestrator(&fakeClassifier{}, up, slips, &fakeParticipants{}, uuid.New())

	_, err := o.Commit(context.Background(), UploadBatch{
		Files:   []SlipFile{imageFile("a.jpg"), imageFile("b.jpg")},
		Subject: "camp batch",
	}, []vision.Extraction{okExtraction(10)})
	if err == nil {
		t.Fatal("length mismatch must fail the whole batch")
	}
	if len(up.uploads) != 0 || len(slips.created) != 0 {
		t.Error("nothing may be uploaded or persisted on a mismatched batch")
	}
}

func TestCommitEmptyBatchRejected(t *testing.T) {
	o := newTestOrchestrator(&fakeClassifier{}, &fakeUploader{}, &fakeSlips{}, &fakeParticipants{}, uuid.New())
	if _, err := o.Commit(context.Background(), UploadBatch{Subject: "x"}, nil); err == nil {
		t.Fatal("empty batch must be rejected")
	}
}

func TestAnalyzeClassifiesWithoutPersisting(t *testing.T) {
	cls := &fakeClassifier{byName: map[string]vision.Extraction{
		"a.jpg": okExtraction(100),
		"b.jpg": okExtraction(200),
	}}
	up := &fakeUploader{}
	slips := &fakeSlips{}
	o := newTestOrchestrator(cls, up, slips, &fakeParticipants{}, uuid.New())

	res, err := o.Analyze(context.Background(), UploadBatch{
		Files: []SlipFile{imageFile("a.jpg"), imageFile("b.jpg")},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(up.uploads) != 0 || len(slips.created) != 0 {
		t.Fatal("analyze must never upload or persist")
	}
	if res.TotalFiles != 2 || len(res.Results) != 2 {
		t.Errorf("results = %d/%d, want 2/2", res.TotalFiles, len(res.Results))
	}
	if !res.TotalAmount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("total = %s, want 300", res.TotalAmount)
	}
	if res.AvgConfidence != 0.9 {
		t.Errorf("avg confidence = %v, want 0.9", res.AvgConfidence)
	}
}

func TestAnalyzeInvalidFileGetsSentinel(t *testing.T) {
	o := newTestOrchestrator(&fakeClassifier{}, &fakeUploader{}, &fakeSlips{}, &fakeParticipants{}, uuid.New())

	res, err := o.Analyze(context.Background(), UploadBatch{
		Files: []SlipFile{{Filename: "notes.txt", MIMEType: "text/plain", Size: 1, Data: []byte("x")}},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	r := res.Results[0]
	if r.Valid || !r.Failed {
		t.Errorf("invalid file result = %+v, want invalid+failed", r)
	}
	if !res.TotalAmount.Equal(decimal.Zero) {
		t.Errorf("total = %s, want 0", res.TotalAmount)
	}
}
