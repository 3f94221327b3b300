package padding

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Padder holds the buffer and scheduling policy for padding runs.
// Zero-valued fields fall back to the package defaults.
type Padder struct {
	// ZeroCapacity is the filler size in ModeZero.
	ZeroCapacity int

	// RandomCapacity is the filler size in ModeRandom.
	RandomCapacity int

	// ProgressEvery is the number of filler bytes between progress points.
	ProgressEvery uint64

	// Entropy is the random source for ModeRandom.
	Entropy io.Reader

	// Scheduler receives control at progress points.
	Scheduler Scheduler

	// Guard is consulted before the filler and output allocations.
	Guard MemoryGuard

	// Logger receives debug events.
	Logger *slog.Logger
}

// DefaultPadder returns a Padder with the default capacities and tink-backed entropy.
func DefaultPadder() *Padder {
	return &Padder{
		ZeroCapacity:   DefaultZeroCapacity,
		RandomCapacity: DefaultRandomCapacity,
		ProgressEvery:  DefaultProgressEvery,
		Entropy:        NewEntropy(),
		Scheduler:      GoScheduler{},
	}
}

// Pad pads src to target bytes with the default Padder.
func Pad(
	ctx context.Context,
	src *Source,
	target uint64,
	mode Mode,
	mediaType string,
	onProgress ProgressFunc,
) (*Output, error) {
	return DefaultPadder().Pad(ctx, src, target, mode, mediaType, onProgress)
}

// Pad appends filler to src until it is exactly target bytes long and returns the
// assembled Output. It returns either an Output of exactly target bytes or an error,
// never a partial result. src is not modified.
//
// With a Guard set, the filler reservation ends when Pad returns and the output
// reservation ends when the caller calls Output.Release.
func (p *Padder) Pad(
	ctx context.Context,
	src *Source,
	target uint64,
	mode Mode,
	mediaType string,
	onProgress ProgressFunc,
) (*Output, error) {
	if target == 0 || target <= src.Len() {
		return nil, &TargetError{Original: src.Len(), Target: target}
	}

	logger := p.logger()
	start := time.Now()

	capacity, err := p.capacity(mode)
	if err != nil {
		return nil, err
	}

	if p.Guard != nil {
		if err := p.Guard.Reserve(uint64(capacity)); err != nil { //nolint:gosec // capacity is positive
			return nil, &AllocationError{What: "filler buffer", Bytes: uint64(capacity), Err: err} //nolint:gosec
		}

		defer p.Guard.Release(uint64(capacity)) //nolint:gosec // capacity is positive
	}

	entropy := p.Entropy
	if entropy == nil && mode == ModeRandom {
		entropy = NewEntropy()
	}

	filler, err := NewFiller(mode, capacity, entropy)
	if err != nil {
		return nil, fmt.Errorf("generating filler: %w", err)
	}

	logger.Debug("filler ready",
		"mode", mode,
		"capacity", capacity,
		"elapsed", time.Since(start),
	)

	assembler, err := NewAssembler(src, target, filler, p.ProgressEvery)
	if err != nil {
		return nil, err
	}

	if err := assembler.Run(ctx, p.Scheduler, onProgress); err != nil {
		return nil, fmt.Errorf("assembling chunks: %w", err)
	}

	chunks, err := assembler.Chunks()
	if err != nil {
		return nil, fmt.Errorf("assembling chunks: %w", err)
	}

	full, truncated := assembler.Counts()

	out, err := Build(chunks, mediaType, p.Guard)
	if err != nil {
		return nil, fmt.Errorf("building output: %w", err)
	}

	logger.Debug("output assembled",
		"original", src.Len(),
		"target", target,
		"full_chunks", full,
		"truncated_chunks", truncated,
		"media_type", mediaType,
		"elapsed", time.Since(start),
	)

	return out, nil
}

func (p *Padder) capacity(mode Mode) (int, error) {
	if p.ZeroCapacity < 0 || p.RandomCapacity < 0 {
		return 0, fmt.Errorf("%w: zero=%d random=%d", ErrInvalidCapacity, p.ZeroCapacity, p.RandomCapacity)
	}

	switch mode {
	case ModeZero:
		if p.ZeroCapacity == 0 {
			return DefaultZeroCapacity, nil
		}

		return p.ZeroCapacity, nil
	case ModeRandom:
		if p.RandomCapacity == 0 {
			return DefaultRandomCapacity, nil
		}

		return p.RandomCapacity, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}

func (p *Padder) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return p.Logger
}
