package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/gen/ent"
	entslip "github.com/campdesk/slip-ingest/gen/ent/slip"
)

// SlipRecord carries the column values for one slip row. Amount is nil when
// extraction produced nothing usable.
type SlipRecord struct {
	ParticipantID uuid.UUID
	StoragePath   string
	Filename      string
	MIMEType      string
	FileSize      int
	Amount        *float64
	UploadedAt    time.Time
}

// SlipRepository is append-only: re-uploads for the same participant create
// additional rows, and the "current" slip is the newest by uploaded_at.
type SlipRepository interface {
	Create(ctx context.Context, rec SlipRecord) (*ent.Slip, error)
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]*ent.Slip, error)
	LatestByParticipant(ctx context.Context, participantID uuid.UUID) (*ent.Slip, error)
}

type slipRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSlipRepository(entc *ent.Client, logger *slog.Logger) SlipRepository {
	return &slipRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *slipRepo) Create(ctx context.Context, rec SlipRecord) (*ent.Slip, error) {
	create := r.ent.Slip.Create().
		SetParticipantID(rec.ParticipantID).
		SetStoragePath(rec.StoragePath).
		SetFilename(rec.Filename).
		SetMimeType(rec.MIMEType).
		SetFileSize(rec.FileSize).
		SetUploadedAt(rec.UploadedAt)
	if rec.Amount != nil {
		create.SetAmount(*rec.Amount)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create slip row",
			"participant_id", rec.ParticipantID,
			"storage_path", rec.StoragePath,
			"filename", rec.Filename,
			"error", err,
		)
		return nil, err
	}
	return row, nil
}

func (r *slipRepo) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]*ent.Slip, error) {
	rows, err := r.ent.Slip.Query().
		Where(entslip.ParticipantID(participantID)).
		Order(entslip.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list slips", "participant_id", participantID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *slipRepo) LatestByParticipant(ctx context.Context, participantID uuid.UUID) (*ent.Slip, error) {
	row, err := r.ent.Slip.Query().
		Where(entslip.ParticipantID(participantID)).
		Order(entslip.ByUploadedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}
