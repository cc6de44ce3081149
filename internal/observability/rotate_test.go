package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotatingWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, err := newRotatingWriter(path, 1024)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	defer w.Close()

	if _, err := w.Write([]byte("one\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write([]byte("two\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("content = %q, want %q", data, "one\ntwo\n")
	}
}

func TestRotatingWriterRotatesAtThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, err := newRotatingWriter(path, 32)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	defer w.Close()

	line := strings.Repeat("x", 20) + "\n"
	for i := 0; i < 3; i++ {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}

	// Current file holds only lines written after the last rotation.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if int64(len(data)) > 32 {
		t.Errorf("current file %d bytes, want <= 32", len(data))
	}
}

func TestRotatingWriterResumesExistingSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(strings.Repeat("y", 30)), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	w, err := newRotatingWriter(path, 32)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	defer w.Close()

	// 30 existing + 4 new > 32, so this write must rotate first.
	if _, err := w.Write([]byte("new\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	rotated, err := os.ReadFile(path + ".1")
	if err != nil {
		t.Fatalf("read rotated: %v", err)
	}
	if len(rotated) != 30 {
		t.Errorf("rotated file %d bytes, want 30", len(rotated))
	}
}
