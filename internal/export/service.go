package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/campdesk/slip-ingest/internal/repository"
	"github.com/campdesk/slip-ingest/internal/storage"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	participants repository.ParticipantRepository
	slips        repository.SlipRepository
	uploader     storage.Uploader
	logger       *slog.Logger
}

func NewService(participants repository.ParticipantRepository, slips repository.SlipRepository, uploader storage.Uploader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{participants: participants, slips: slips, uploader: uploader, logger: logger}
}

// ExportSlipsXLSX returns an XLSX workbook (as bytes) with every slip recorded
// for the given participant, oldest first, plus a summary row with the running
// paid total and payment status.
func (s *Service) ExportSlipsXLSX(ctx context.Context, participantID uuid.UUID) ([]byte, error) {
	start := time.Now()

	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("query participant: %w", err)
	}
	rows, err := s.slips.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("query slips: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Slips"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded At",
		"Filename",
		"Amount",
		"Slip URL",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.UploadedAt.Format("2006-01-02 15:04"))
		write(2, r.Filename)
		if r.Amount != nil {
			write(3, *r.Amount)
		} else {
			write(3, "—")
		}
		write(4, s.uploader.PublicURL(r.StoragePath))
		row++
	}

	// Summary block under the slip rows.
	write := func(col, rowOffset int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row+rowOffset)
		_ = f.SetCellValue(sheet, cell, v)
	}
	name := p.FirstName
	if p.LastName != "" {
		name += " " + p.LastName
	}
	write(1, 1, name)
	write(2, 1, "paid total")
	write(3, 1, p.PaidAmount)
	write(4, 1, p.PaymentStatus)

	// The current slip is the newest row, not a stored pointer.
	latest, err := s.slips.LatestByParticipant(ctx, participantID)
	if err == nil && latest != nil {
		write(1, 2, "current slip")
		write(2, 2, latest.Filename)
		if latest.Amount != nil {
			write(3, 2, *latest.Amount)
		}
		write(4, 2, s.uploader.PublicURL(latest.StoragePath))
	}

	_ = f.SetColWidth(sheet, "A", "A", 18) // date
	_ = f.SetColWidth(sheet, "B", "B", 32) // filename
	_ = f.SetColWidth(sheet, "C", "C", 14) // amount
	_ = f.SetColWidth(sheet, "D", "D", 72) // url

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"participant_id", participantID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
