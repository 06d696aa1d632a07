package storage

import "context"

// Uploader pushes one slip file to a content-addressed-by-path location in a
// remote bucket and returns its publicly reachable URL. Single attempt, no
// retry; a path collision is a hard failure, never an overwrite.
type Uploader interface {
	Upload(ctx context.Context, path, mimeType string, data []byte) (publicURL string, err error)
	// PublicURL derives the public URL for a stored path. Deterministic;
	// the URL is never stored separately.
	PublicURL(path string) string
}
