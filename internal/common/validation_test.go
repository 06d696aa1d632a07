package common

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidatorCollectsAllErrors(t *testing.T) {
	v := NewValidator()
	v.Field("DB_URL", "", Required)
	v.Field("SUBJECT_ID", "not-a-uuid", UUIDFormat)
	v.Field("OK_FIELD", uuid.NewString(), Required, UUIDFormat)

	if !v.HasErrors() {
		t.Fatal("expected errors")
	}
	msg := v.Error().Error()
	if !strings.Contains(msg, "DB_URL") || !strings.Contains(msg, "SUBJECT_ID") {
		t.Errorf("combined message missing fields: %s", msg)
	}
	if strings.Contains(msg, "OK_FIELD") {
		t.Errorf("valid field reported as error: %s", msg)
	}
}

func TestUUIDFormatAcceptsEmpty(t *testing.T) {
	if err := UUIDFormat("DEFAULT_PARTICIPANT_ID", ""); err != nil {
		t.Errorf("empty value should pass, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Database.DSN = "postgres://localhost/camp"
	cfg.Vision.APIKey = "sk-test"
	cfg.Storage.Endpoint = "http://localhost:9000"
	cfg.Server.Addr = ":8080"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("complete config must validate, got %v", err)
	}

	cfg.Ingest.DefaultParticipantID = "nope"
	if err := cfg.Validate(); err == nil {
		t.Fatal("malformed DEFAULT_PARTICIPANT_ID must fail validation")
	}

	cfg.Ingest.DefaultParticipantID = ""
	cfg.Database.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing DB_URL must fail validation")
	}
}
