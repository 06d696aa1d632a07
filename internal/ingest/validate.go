package ingest

import (
	"fmt"
	"strings"

	"github.com/campdesk/slip-ingest/constants"
)

// Validation is the admissibility verdict for one file.
type Validation struct {
	IsValid bool
	Error   string
}

// ValidateFile checks type and size only. Pure; no I/O, no side effects.
// Every other file property is unconstrained.
func ValidateFile(f SlipFile) Validation {
	if !strings.HasPrefix(f.MIMEType, constants.ImageMIMEPrefix) {
		return Validation{
			IsValid: false,
			Error:   fmt.Sprintf("unsupported file type %q: only images are accepted", f.MIMEType),
		}
	}
	if f.Size > constants.MaxSlipFileBytes {
		return Validation{
			IsValid: false,
			Error:   fmt.Sprintf("file too large: %d bytes exceeds the %d byte limit", f.Size, constants.MaxSlipFileBytes),
		}
	}
	return Validation{IsValid: true}
}
