package logic

import (
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/idelchi/inflate/internal/config"
	"github.com/idelchi/inflate/internal/padding"
)

// RunSize prints the size, detected media type and padding target of each selected file.
func RunSize(w io.Writer, cfg *config.Config) error {
	if _, err := resolveFiles(cfg); err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	for _, file := range cfg.Files {
		info, err := os.Stat(file)
		if err != nil {
			return fmt.Errorf("stat %q: %w", file, err)
		}

		mime, err := mimetype.DetectFile(file)
		if err != nil {
			return fmt.Errorf("detecting media type of %q: %w", file, err)
		}

		size := uint64(info.Size()) //nolint:gosec // file sizes are non-negative

		fmt.Fprintf(w, "%s\t%s\t%s\ttarget %s\n", file, padding.FormatBytes(size), mime.String(),
			padding.FormatBytes(cfg.Target(size)))
	}

	return nil
}
