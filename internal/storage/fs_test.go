package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/campdesk/slip-ingest/internal/common"
)

func newTestFSUploader(t *testing.T) *FSUploader {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	u, err := NewFSUploader(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("NewFSUploader: %v", err)
	}
	return u
}

func TestFSUploaderWritesAndAddresses(t *testing.T) {
	u := newTestFSUploader(t)
	ctx := context.Background()

	url, err := u.Upload(ctx, "slips/abc_1_0.jpg", "image/jpeg", []byte("first"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(url, "file://") || !strings.HasSuffix(url, "slips/abc_1_0.jpg") {
		t.Errorf("public url = %q, want file:// URL ending in the object path", url)
	}
	if url != u.PublicURL("slips/abc_1_0.jpg") {
		t.Errorf("Upload url %q != PublicURL %q", url, u.PublicURL("slips/abc_1_0.jpg"))
	}

	got, err := os.ReadFile(filepath.Join(u.root, "slips", "abc_1_0.jpg"))
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("stored bytes = %q, want %q", got, "first")
	}
}

func TestFSUploaderRejectsCollision(t *testing.T) {
	u := newTestFSUploader(t)
	ctx := context.Background()

	if _, err := u.Upload(ctx, "slips/abc_1_0.jpg", "image/jpeg", []byte("first")); err != nil {
		t.Fatalf("first Upload: %v", err)
	}

	// existing path is a hard failure, never an overwrite
	_, err := u.Upload(ctx, "slips/abc_1_0.jpg", "image/jpeg", []byte("second"))
	if !errors.Is(err, common.ErrStorage) {
		t.Fatalf("second Upload error = %v, want ErrStorage", err)
	}
	var appErr *common.AppError
	if !errors.As(err, &appErr) || appErr.Code != "STORAGE_COLLISION" {
		t.Errorf("second Upload error = %v, want code STORAGE_COLLISION", err)
	}

	got, err := os.ReadFile(filepath.Join(u.root, "slips", "abc_1_0.jpg"))
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("stored bytes after collision = %q, want the original %q", got, "first")
	}
}
