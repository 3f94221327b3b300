package fileutil_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/idelchi/inflate/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")
	out := filepath.Join(dir, "out.pdf")

	if err := os.WriteFile(src, []byte("source"), 0o640); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	past := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(src, past, past); err != nil {
		t.Fatalf("setting times: %v", err)
	}

	size, err := fileutil.WriteAtomic(src, out, fileutil.Options{PreserveTimestamps: true}, func(w io.Writer) error {
		_, err := io.WriteString(w, "padded content")

		return err
	})
	if err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	if size != int64(len("padded content")) {
		t.Errorf("size = %d", size)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}

	if info.Mode().Perm() != 0o640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}

	if !info.ModTime().Equal(past) {
		t.Errorf("mod time = %v, want %v", info.ModTime(), past)
	}
}

func TestWriteAtomicCleansUp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.pdf")

	if err := os.WriteFile(src, []byte("source"), 0o600); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	boom := errors.New("boom")

	_, err := fileutil.WriteAtomic(src, filepath.Join(dir, "out.pdf"), fileutil.Options{}, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")

		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteAtomic = %v, want %v", err, boom)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}

	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the source", len(entries))
	}
}
