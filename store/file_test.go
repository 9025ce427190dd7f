package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileBlob(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	blob := NewFileBlob(filepath.Join(dir, "data.json"))

	exists, err := blob.Exists(ctx)
	if err != nil || exists {
		t.Fatalf("Expected missing file, got exists=%v err=%v", exists, err)
	}
	if _, err := blob.Read(ctx); !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("Expected ErrBlobNotFound, got %v", err)
	}

	for _, body := range []string{`{"restaurants":{}}`, `{"restaurants":{"A":{}}}`} {
		if err := blob.Write(ctx, []byte(body)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		got, err := blob.Read(ctx)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if string(got) != body {
			t.Errorf("Expected %s, got %s", body, got)
		}
	}

	exists, _ = blob.Exists(ctx)
	if !exists {
		t.Error("Expected file to exist after write")
	}

	// No temp files left behind
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only data.json in %s, found %d entries", dir, len(entries))
	}
}

func TestFileBlob_WriteMissingDir(t *testing.T) {
	blob := NewFileBlob(filepath.Join(t.TempDir(), "nope", "data.json"))
	if err := blob.Write(context.Background(), []byte("{}")); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}
