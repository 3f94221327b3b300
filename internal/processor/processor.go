// Package processor pads files concurrently and writes the results next to the inputs.
package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/inflate/internal/config"
	"github.com/idelchi/inflate/internal/fileutil"
	"github.com/idelchi/inflate/internal/memguard"
	"github.com/idelchi/inflate/internal/padding"
)

// sniffLen is the number of leading bytes inspected for media type detection.
const sniffLen = 3072

// Processor pads the files named in the configuration.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// padder carries the buffer and scheduling policy
	padder *padding.Padder

	// guard is shared by all workers, nil when disabled
	guard *memguard.Guard

	logger *slog.Logger

	// stdout receives the per-file result lines
	stdout io.Writer
	stderr io.Writer
}

// New creates a Processor for a validated configuration.
func New(cfg *config.Config, logger *slog.Logger) *Processor {
	padder := padding.DefaultPadder()
	padder.Logger = logger

	if cfg.Parsed.ZeroBuffer > 0 {
		padder.ZeroCapacity = cfg.Parsed.ZeroBuffer
	}

	if cfg.Parsed.RandomBuffer > 0 {
		padder.RandomCapacity = cfg.Parsed.RandomBuffer
	}

	if cfg.Parsed.ProgressEvery > 0 {
		padder.ProgressEvery = cfg.Parsed.ProgressEvery
	}

	var guard *memguard.Guard

	if cfg.MemoryFraction > 0 || cfg.Parsed.Max > 0 {
		guard = memguard.New(cfg.MemoryFraction, cfg.Parsed.Max)
		padder.Guard = guard
	}

	return &Processor{
		cfg:    cfg,
		padder: padder,
		guard:  guard,
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetOutput redirects the result lines, e.g. in tests.
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout, p.stderr = stdout, stderr
}

// Reserved returns the bytes currently held by in-flight files.
func (p *Processor) Reserved() uint64 {
	if p.guard == nil {
		return 0
	}

	return p.guard.Reserved()
}

// ProcessFiles pads all files concurrently, bounded by cfg.Parallel. A failing file
// does not stop the others; the first error is returned once all have finished.
// A single goroutine prints results as they arrive.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles(ctx context.Context) (Summary, error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	results := make(chan Result, len(p.cfg.Files))
	done := make(chan struct{})

	var summary Summary

	go func() {
		defer close(done)

		for result := range results {
			if result.Error != nil {
				summary.Errored++

				fmt.Fprintf(p.stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			summary.Processed++
			summary.TotalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.stdout, "Processed %q -> %q (%s -> %s)\n", result.Input, result.Output,
					padding.FormatBytes(result.OriginalSize),
					padding.FormatBytes(uint64(result.OutputSize)), //nolint:gosec // file sizes are non-negative
				)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			result := p.processFile(ctx, file, p.cfg.OutputPath(file))
			results <- result

			return result.Error
		})
	}

	err := group.Wait()

	close(results)

	<-done // Wait for printer to finish

	if err != nil {
		return summary, fmt.Errorf("processing files: %w", err)
	}

	return summary, nil
}

// processFile pads a single file and writes the output atomically.
func (p *Processor) processFile(ctx context.Context, filename, outPath string) Result {
	result := Result{Input: filename}

	if filepath.Clean(outPath) == filepath.Clean(filename) {
		result.Error = fmt.Errorf("%w: %q", ErrOutputIsInput, filename)

		return result
	}

	src, err := padding.ReadSource(filename)
	if err != nil {
		result.Error = err

		return result
	}

	result.OriginalSize = src.Len()

	mediaType, err := p.mediaType(src)
	if err != nil {
		result.Error = err

		return result
	}

	target := p.cfg.Target(src.Len())

	if p.cfg.Parsed.Warn > 0 && target > p.cfg.Parsed.Warn {
		p.logger.Warn("target size is very large",
			"file", filename,
			"target", padding.FormatBytes(target),
			"threshold", padding.FormatBytes(p.cfg.Parsed.Warn),
		)
	}

	onProgress := func(percent uint) {
		p.logger.Debug("generating",
			"file", filename,
			"target", padding.FormatBytes(target),
			"percent", percent,
		)
	}

	out, err := p.padder.Pad(ctx, src, target, p.cfg.Parsed.Mode, mediaType, onProgress)
	if err != nil {
		result.Error = fmt.Errorf("padding %q: %w", filename, err)

		return result
	}

	defer out.Release()

	size, err := fileutil.WriteAtomic(filename, outPath, fileutil.Options{
		PreserveTimestamps: p.cfg.PreserveTimestamps,
	}, func(w io.Writer) error {
		_, err := out.WriteTo(w)

		return err
	})
	if err != nil {
		result.Error = err

		return result
	}

	result.Output = outPath
	result.OutputSize = size
	result.MediaType = out.MediaType()

	p.logger.Debug("padded",
		"file", filename,
		"output", outPath,
		"media_type", result.MediaType,
		"size", size,
	)

	return result
}

// mediaType returns the configured media type, or the detected one.
// When a type is required, the detected type must match it.
func (p *Processor) mediaType(src *padding.Source) (string, error) {
	detected := mimetype.Detect(src.Head(sniffLen))

	if p.cfg.RequireType != "" && !detected.Is(p.cfg.RequireType) {
		return "", fmt.Errorf("%w: %q is %s, want %s", ErrTypeMismatch, src.Name(), detected.String(),
			p.cfg.RequireType)
	}

	if p.cfg.MediaType != "" {
		return p.cfg.MediaType, nil
	}

	return detected.String(), nil
}
