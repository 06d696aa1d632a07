package ingest

import (
	"fmt"
	"testing"
	"time"
)

func TestStoragePathShape(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	got := StoragePath("slips", "subject-1", at, 0, "receipt.JPG")
	want := "slips/subject-1_1700000000000_0.jpg"
	if got != want {
		t.Errorf("StoragePath = %q, want %q", got, want)
	}
}

func TestStoragePathDistinctWithinSameMillisecond(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	seen := map[string]struct{}{}
	for i := 0; i < 5; i++ {
		p := StoragePath("slips", "subject-1", at, i, fmt.Sprintf("slip-%d.png", i))
		if _, dup := seen[p]; dup {
			t.Fatalf("duplicate path %q for index %d", p, i)
		}
		seen[p] = struct{}{}
	}
}

func TestStoragePathUnknownExtensionFallsBack(t *testing.T) {
	at := time.UnixMilli(42)
	got := StoragePath("", "s", at, 3, "weird.tiff")
	want := "s_42_3.bin"
	if got != want {
		t.Errorf("StoragePath = %q, want %q", got, want)
	}
}
