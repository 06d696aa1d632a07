package ingest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/campdesk/slip-ingest/constants"
)

// StoragePath generates the object key for one upload attempt:
// {prefix}/{subjectID}_{unix-millis}_{index}.{ext}. The millisecond timestamp
// plus the per-batch file index make collisions impossible by construction.
func StoragePath(prefix, subjectID string, at time.Time, index int, filename string) string {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		ext = "bin"
	}
	key := fmt.Sprintf("%s_%d_%d.%s", subjectID, at.UnixMilli(), index, ext)
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
