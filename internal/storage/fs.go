package storage

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/campdesk/slip-ingest/internal/common"
)

// FSUploader stores objects under a local directory. It keeps the same
// collision contract as the S3 uploader: an existing path is a hard failure.
// Used by the batch CLI when no object-storage endpoint is configured.
type FSUploader struct {
	root   string
	logger *slog.Logger
}

func NewFSUploader(root string, logger *slog.Logger) (*FSUploader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, common.WrapError(err, "create storage root")
	}
	return &FSUploader{root: root, logger: logger}, nil
}

func (u *FSUploader) Upload(_ context.Context, path, _ string, data []byte) (string, error) {
	dst := filepath.Join(u.root, filepath.FromSlash(path))
	if _, err := os.Stat(dst); err == nil {
		return "", common.NewAppError("STORAGE_COLLISION", "object already exists at "+path, common.ErrStorage)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", common.WrapError(err, "stat object")
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", common.WrapError(err, "create object directory")
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", common.WrapError(err, "write object")
	}
	u.logger.Info("storage.fs.uploaded", "path", path, "bytes", len(data))
	return u.PublicURL(path), nil
}

func (u *FSUploader) PublicURL(path string) string {
	abs, err := filepath.Abs(filepath.Join(u.root, filepath.FromSlash(path)))
	if err != nil {
		abs = filepath.Join(u.root, filepath.FromSlash(path))
	}
	return "file://" + filepath.ToSlash(abs)
}
