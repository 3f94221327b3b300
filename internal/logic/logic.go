// Package logic wires configuration, file selection and padding together for each command.
package logic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/inflate/internal/config"
	"github.com/idelchi/inflate/internal/filter"
	"github.com/idelchi/inflate/internal/padding"
	"github.com/idelchi/inflate/internal/processor"
)

// Run pads every selected file.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	scanned, excluded, start, done, err := preamble(cfg)
	if done || err != nil {
		return err
	}

	summary, err := processor.New(cfg, logger).ProcessFiles(ctx)

	if cfg.Stats {
		printStats(os.Stderr, scanned, excluded, summary, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// preamble resolves files and handles dry run. Returns done=true if dry run was executed.
func preamble(cfg *config.Config) (int, int, time.Time, bool, error) {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return 0, 0, start, false, fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		return scanned, excluded, start, true, dryRun(os.Stdout, cfg, scanned, excluded, start)
	}

	return scanned, excluded, start, false, nil
}

// resolveFiles expands directories and applies include/exclude filtering to cfg.Files.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	includes, excludes, err := loadPatterns(cfg)
	if err != nil {
		return 0, err
	}

	flt, err := filter.New(includes, excludes)
	if err != nil {
		return 0, fmt.Errorf("compiling patterns: %w", err)
	}

	files, scanned, err := flt.Resolve(cfg.Files)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// loadPatterns merges the inline and file-based include/exclude patterns.
func loadPatterns(cfg *config.Config) (includes, excludes []string, err error) {
	if includes, err = filter.Merge(cfg.Include, cfg.IncludeFrom); err != nil {
		return nil, nil, fmt.Errorf("loading include patterns: %w", err)
	}

	if excludes, err = filter.Merge(cfg.Exclude, cfg.ExcludeFrom); err != nil {
		return nil, nil, fmt.Errorf("loading exclude patterns: %w", err)
	}

	return includes, excludes, nil
}

// dryRun previews what would be padded without writing anything.
func dryRun(w io.Writer, cfg *config.Config, scanned, excluded int, start time.Time) error {
	var summary processor.Summary

	for _, file := range cfg.Files {
		info, err := os.Stat(file)
		if err != nil {
			return fmt.Errorf("stat %q: %w", file, err)
		}

		size := uint64(info.Size()) //nolint:gosec // file sizes are non-negative
		target := cfg.Target(size)

		summary.Processed++
		summary.TotalSize += int64(target) //nolint:gosec // bounded by validated sizes

		if !cfg.Quiet {
			fmt.Fprintf(w, "Would pad %q -> %q (%s -> %s)\n", file, cfg.OutputPath(file),
				padding.FormatBytes(size), padding.FormatBytes(target))
		}
	}

	if cfg.Stats {
		printStats(os.Stderr, scanned, excluded, summary, time.Since(start))
	}

	return nil
}

func printStats(w io.Writer, scanned, excluded int, summary processor.Summary, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(w, "  Processed: %d\n", summary.Processed)
	fmt.Fprintf(w, "  Errors:    %d\n", summary.Errored)
	//nolint:gosec // TotalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, summary.TotalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
