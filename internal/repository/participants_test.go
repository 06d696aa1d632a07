package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"

	"github.com/campdesk/slip-ingest/constants"
	"github.com/campdesk/slip-ingest/internal/common"
)

func newSQLiteParticipants(t *testing.T) (ParticipantRepository, context.Context) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := OpenSQLite(ctx, "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1", logger)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewParticipantRepository(client, dialect.SQLite, logger), ctx
}

func TestRecordPaymentOnSQLite(t *testing.T) {
	repo, ctx := newSQLiteParticipants(t)

	row, err := repo.Create(ctx, "Somchai", "Jaidee")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row.PaidAmount != 0 || row.PaymentStatus != string(constants.PaymentStatusUnpaid) {
		t.Fatalf("fresh participant = %v/%s, want 0/UNPAID", row.PaidAmount, row.PaymentStatus)
	}

	updated, err := repo.RecordPayment(ctx, row.ID, 100)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if updated.PaidAmount != 100 {
		t.Errorf("paid amount = %v, want 100", updated.PaidAmount)
	}
	if updated.PaymentStatus != string(constants.PaymentStatusPaid) {
		t.Errorf("payment status = %s, want PAID", updated.PaymentStatus)
	}

	// payments accumulate across batches
	updated, err = repo.RecordPayment(ctx, row.ID, 50.5)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if updated.PaidAmount != 150.5 {
		t.Errorf("paid amount = %v, want 150.5", updated.PaidAmount)
	}
}

func TestFindUniqueByFirstNameOnSQLite(t *testing.T) {
	repo, ctx := newSQLiteParticipants(t)

	if _, err := repo.Create(ctx, "Somchai", "Jaidee"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, "Somsak", "Jaidee"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	row, err := repo.FindUniqueByFirstName(ctx, "Somchai")
	if err != nil {
		t.Fatalf("FindUniqueByFirstName: %v", err)
	}
	if row.FirstName != "Somchai" {
		t.Errorf("first name = %s, want Somchai", row.FirstName)
	}

	// "Som" is a prefix of both rows, the lookup must refuse to guess
	if _, err := repo.FindUniqueByFirstName(ctx, "Som"); !errors.Is(err, common.ErrAmbiguous) {
		t.Errorf("ambiguous name error = %v, want ErrAmbiguous", err)
	}
	if _, err := repo.FindUniqueByFirstName(ctx, "Nobody"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown name error = %v, want ErrNotFound", err)
	}
}
