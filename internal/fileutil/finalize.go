// Package fileutil writes output files atomically next to their destination.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Options controls how WriteAtomic finalizes the output.
type Options struct {
	// Mode is the permission of the output; the zero value keeps the source permission bits.
	Mode os.FileMode

	// PreserveTimestamps copies the source modification time onto the output.
	PreserveTimestamps bool
}

// WriteAtomic writes the bytes produced by write to a temporary file in the
// directory of outPath and renames it into place. The temporary file is removed
// on any failure, so outPath either receives the complete content or is untouched.
// It returns the size of the written file.
func WriteAtomic(srcPath, outPath string, opts Options, write func(io.Writer) error) (size int64, err error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", srcPath, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	defer func() {
		tmp.Close() //nolint:errcheck,gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmp.Name()) //nolint:errcheck,gosec // best-effort cleanup
		}
	}()

	if err := write(tmp); err != nil {
		return 0, fmt.Errorf("writing %q: %w", outPath, err)
	}

	perm := opts.Mode
	if perm == 0 {
		perm = info.Mode().Perm()
	}

	if err := tmp.Chmod(perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return finalize(outPath, opts.PreserveTimestamps, info.ModTime())
}

// finalize optionally preserves timestamps and returns the output file size.
func finalize(outPath string, preserveTimestamps bool, modTime time.Time) (int64, error) {
	if preserveTimestamps {
		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return info.Size(), nil
}
