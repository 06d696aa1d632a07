package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/constants"
	"github.com/campdesk/slip-ingest/gen/ent"
	"github.com/campdesk/slip-ingest/gen/ent/participant"
	"github.com/campdesk/slip-ingest/internal/common"
)

// ParticipantRepository reads and updates the camp roster. The slip pipeline
// only ever holds a weak reference to a participant: lookups are best-effort
// and ambiguity is reported, never resolved arbitrarily.
type ParticipantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Participant, error)
	// FindUniqueByFirstName matches first_name by substring and requires
	// exactly one row. Zero rows returns ErrNotFound, more than one
	// returns ErrAmbiguous.
	FindUniqueByFirstName(ctx context.Context, name string) (*ent.Participant, error)
	Create(ctx context.Context, firstName, lastName string) (*ent.Participant, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// RecordPayment atomically adds amount to the participant's paid total
	// under a row lock and refreshes the payment status.
	RecordPayment(ctx context.Context, id uuid.UUID, amount float64) (*ent.Participant, error)
}

type participantRepo struct {
	ent     *ent.Client
	dialect string
	logger  *slog.Logger
}

func NewParticipantRepository(entc *ent.Client, dbDialect string, logger *slog.Logger) ParticipantRepository {
	return &participantRepo{
		ent:     entc,
		dialect: dbDialect,
		logger:  logger,
	}
}

func (r *participantRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Participant, error) {
	return r.ent.Participant.Get(ctx, id)
}

func (r *participantRepo) FindUniqueByFirstName(ctx context.Context, name string) (*ent.Participant, error) {
	row, err := r.ent.Participant.Query().
		Where(participant.FirstNameContains(name)).
		Only(ctx)
	if err != nil {
		switch {
		case ent.IsNotFound(err):
			return nil, common.NewAppError("PARTICIPANT_NOT_FOUND", "no participant matches name", common.ErrNotFound)
		case ent.IsNotSingular(err):
			return nil, common.NewAppError("PARTICIPANT_AMBIGUOUS", "multiple participants match name", common.ErrAmbiguous)
		default:
			r.logger.Error("failed to query participant by name", "error", err)
			return nil, err
		}
	}
	return row, nil
}

func (r *participantRepo) Create(ctx context.Context, firstName, lastName string) (*ent.Participant, error) {
	row, err := r.ent.Participant.Create().
		SetFirstName(firstName).
		SetLastName(lastName).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create participant", "first_name", firstName, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *participantRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Participant.Query().Where(participant.ID(id)).Exist(ctx)
}

func (r *participantRepo) RecordPayment(ctx context.Context, id uuid.UUID, amount float64) (*ent.Participant, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin payment tx")
	}
	// Row lock closes the read-then-write gap between concurrent batches
	// touching the same participant. SQLite rejects FOR UPDATE; its
	// single-writer transactions already serialize this path.
	q := tx.Participant.Query().Where(participant.ID(id))
	if r.dialect != dialect.SQLite {
		q = q.ForUpdate()
	}
	cur, err := q.Only(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, common.WrapError(err, "lock participant row")
	}

	total := cur.PaidAmount + amount
	status := constants.PaymentStatusUnpaid
	if total > 0 {
		status = constants.PaymentStatusPaid
	}
	updated, err := tx.Participant.UpdateOneID(id).
		SetPaidAmount(total).
		SetPaymentStatus(string(status)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to record payment", "participant_id", id, "amount", amount, "error", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit payment tx")
	}
	return updated, nil
}
