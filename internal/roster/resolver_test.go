package roster

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/campdesk/slip-ingest/gen/ent"
	"github.com/campdesk/slip-ingest/internal/common"
	"github.com/campdesk/slip-ingest/internal/repository"
)

// fakeParticipants canned-answers FindUniqueByFirstName per name.
type fakeParticipants struct {
	repository.ParticipantRepository
	byName map[string]*ent.Participant
	errs   map[string]error
}

func (f *fakeParticipants) FindUniqueByFirstName(_ context.Context, name string) (*ent.Participant, error) {
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	if p, ok := f.byName[name]; ok {
		return p, nil
	}
	return nil, common.NewAppError("PARTICIPANT_NOT_FOUND", "no participant matches name", common.ErrNotFound)
}

func TestResolveUniqueMatch(t *testing.T) {
	id := uuid.New()
	r := NewResolver(&fakeParticipants{
		byName: map[string]*ent.Participant{"Somchai": {ID: id}},
	}, nil)

	res := r.Resolve(context.Background(), "Somchai")
	if !res.Found {
		t.Fatal("expected a unique match to resolve")
	}
	if res.ParticipantID != id {
		t.Errorf("participant id = %s, want %s", res.ParticipantID, id)
	}
}

func TestResolveZeroMatchesIsMiss(t *testing.T) {
	r := NewResolver(&fakeParticipants{}, nil)
	res := r.Resolve(context.Background(), "Nobody")
	if res.Found {
		t.Fatal("zero matches must not resolve")
	}
}

func TestResolveAmbiguousIsMissNotArbitraryPick(t *testing.T) {
	r := NewResolver(&fakeParticipants{
		errs: map[string]error{
			"Som": common.NewAppError("PARTICIPANT_AMBIGUOUS", "multiple participants match name", common.ErrAmbiguous),
		},
	}, nil)

	res := r.Resolve(context.Background(), "Som")
	if res.Found {
		t.Fatal("ambiguous matches must not resolve")
	}
}

func TestResolveBlankAndUnknownSkipLookup(t *testing.T) {
	r := NewResolver(&fakeParticipants{}, nil)
	for _, name := range []string{"", "   ", "Unknown"} {
		if res := r.Resolve(context.Background(), name); res.Found {
			t.Errorf("Resolve(%q) must not resolve", name)
		}
	}
}

func TestResolveOrDefaultFallsBack(t *testing.T) {
	def := uuid.New()
	hit := uuid.New()
	r := NewResolver(&fakeParticipants{
		byName: map[string]*ent.Participant{"Mali": {ID: hit}},
	}, nil)

	if got, fell := r.ResolveOrDefault(context.Background(), "Mali", def); got != hit || fell {
		t.Errorf("ResolveOrDefault(Mali) = (%s, %v), want (%s, false)", got, fell, hit)
	}
	if got, fell := r.ResolveOrDefault(context.Background(), "Nobody", def); got != def || !fell {
		t.Errorf("ResolveOrDefault(Nobody) = (%s, %v), want (%s, true)", got, fell, def)
	}
}
