package logic

import (
	"errors"
	"fmt"
	"io"

	"github.com/idelchi/inflate/internal/config"
	"github.com/idelchi/inflate/internal/filter"
)

// RunCheck validates that every include/exclude pattern selects at least one file
// under the positional paths. Per-pattern counts are written to w.
func RunCheck(w io.Writer, cfg *config.Config) error {
	includes, excludes, err := loadPatterns(cfg)
	if err != nil {
		return err
	}

	if len(includes) == 0 && len(excludes) == 0 {
		return errors.New("no include or exclude patterns to check")
	}

	var failures int

	failures += checkPatterns(w, "include", includes, cfg)
	failures += checkPatterns(w, "exclude", excludes, cfg)

	if failures > 0 {
		return fmt.Errorf("%d pattern(s) matched no files", failures)
	}

	return nil
}

// checkPatterns resolves the paths once per pattern, using it as the sole include.
// Returns the number of patterns that matched zero files or failed to compile.
func checkPatterns(w io.Writer, kind string, patterns []string, cfg *config.Config) int {
	var failures int

	for _, pattern := range patterns {
		flt, err := filter.New([]string{pattern}, nil)
		if err != nil {
			fmt.Fprintf(w, "%s: %s: invalid pattern: %v\n", kind, pattern, err)

			failures++

			continue
		}

		count, err := flt.CountWalked(cfg.Files)

		switch {
		case err != nil:
			fmt.Fprintf(w, "%s: %s: %v\n", kind, pattern, err)

			failures++
		case count == 0:
			fmt.Fprintf(w, "%s: %s: 0 files (ERROR)\n", kind, pattern)

			failures++
		case !cfg.Quiet:
			fmt.Fprintf(w, "%s: %s: %d files\n", kind, pattern, count)
		}
	}

	return failures
}
