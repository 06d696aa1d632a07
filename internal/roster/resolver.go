package roster

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/repository"
)

// Resolution is the outcome of a person lookup.
type Resolution struct {
	Found         bool
	ParticipantID uuid.UUID
	Err           error
}

// Resolver looks up camp participants by the free-text name the classifier
// extracted from a slip. A miss is never fatal: callers fall back to the
// batch's default participant.
type Resolver struct {
	participants repository.ParticipantRepository
	logger       *slog.Logger
}

func NewResolver(participants repository.ParticipantRepository, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{participants: participants, logger: logger}
}

// Resolve matches candidateFirstName as a substring of first_name and requires
// the match to be unique. Zero matches and ambiguous matches both come back
// Found=false; the caller decides the fallback.
func (r *Resolver) Resolve(ctx context.Context, candidateFirstName string) Resolution {
	name := strings.TrimSpace(candidateFirstName)
	if name == "" || name == "Unknown" {
		return Resolution{Found: false}
	}

	row, err := r.participants.FindUniqueByFirstName(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			r.logger.Info("roster.resolve.miss", "name", name)
		case errors.Is(err, common.ErrAmbiguous):
			r.logger.Warn("roster.resolve.ambiguous", "name", name)
		default:
			r.logger.Error("roster.resolve.error", "name", name, "error", err)
		}
		return Resolution{Found: false, Err: err}
	}

	r.logger.Info("roster.resolve.hit", "name", name, "participant_id", row.ID)
	return Resolution{Found: true, ParticipantID: row.ID}
}

// ResolveOrDefault resolves the name, falling back to defaultID on any miss.
// The second return reports whether the fallback was used.
func (r *Resolver) ResolveOrDefault(ctx context.Context, candidateFirstName string, defaultID uuid.UUID) (uuid.UUID, bool) {
	res := r.Resolve(ctx, candidateFirstName)
	if !res.Found {
		return defaultID, true
	}
	return res.ParticipantID, false
}
