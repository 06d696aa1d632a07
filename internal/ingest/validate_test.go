package ingest

import (
	"strings"
	"testing"

	"github.com/campdesk/slip-ingest/constants"
)

func TestValidateFileAcceptsImagesUnderLimit(t *testing.T) {
	tests := []struct {
		name string
		mime string
		size int64
	}{
		{"jpeg", "image/jpeg", 1024},
		{"png", "image/png", constants.MaxSlipFileBytes},
		{"webp", "image/webp", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateFile(SlipFile{Filename: "slip." + tt.name, MIMEType: tt.mime, Size: tt.size})
			if !v.IsValid {
				t.Errorf("expected valid, got error %q", v.Error)
			}
		})
	}
}

func TestValidateFileRejectsNonImages(t *testing.T) {
	v := ValidateFile(SlipFile{Filename: "notes.txt", MIMEType: "text/plain", Size: 10})
	if v.IsValid {
		t.Fatal("text/plain must be rejected")
	}
	if v.Error == "" {
		t.Error("rejection must carry a non-empty error message")
	}
}

func TestValidateFileRejectsOversize(t *testing.T) {
	v := ValidateFile(SlipFile{Filename: "big.jpg", MIMEType: "image/jpeg", Size: constants.MaxSlipFileBytes + 1})
	if v.IsValid {
		t.Fatal("oversize file must be rejected")
	}
	if !strings.Contains(v.Error, "too large") {
		t.Errorf("error %q should mention the size limit", v.Error)
	}
}
