package padding

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// DefaultProgressEvery is the number of generated filler bytes between progress points.
const DefaultProgressEvery = 200 * 1024 * 1024

// maxPrealloc caps the initial capacity of the chunk list; longer lists grow by append.
const maxPrealloc = 4096

// Assembler builds the ordered chunk list for one padding run.
//
// It is a resumable step machine: its fields are the complete loop state, so a host
// may call Step and Due from its own loop, or hand control to Run.
type Assembler struct {
	target uint64
	filler *Filler
	every  uint64

	chunks    []Range
	remaining uint64
	generated uint64

	// next is the generated-bytes threshold of the next progress point.
	next uint64

	// last is the highest percent reported so far.
	last     uint
	reported bool

	full      int
	truncated int
	discarded bool
}

// NewAssembler prepares a run that pads src up to target using views of filler.
// A zero every selects DefaultProgressEvery.
func NewAssembler(src *Source, target uint64, filler *Filler, every uint64) (*Assembler, error) {
	if target == 0 || target <= src.Len() {
		return nil, &TargetError{Original: src.Len(), Target: target}
	}

	if filler == nil || filler.Len() == 0 {
		return nil, fmt.Errorf("%w: empty filler", ErrInvalidCapacity)
	}

	if target > math.MaxInt {
		return nil, &AllocationError{What: "output", Bytes: target}
	}

	if every == 0 {
		every = DefaultProgressEvery
	}

	remaining := target - src.Len()

	// One original range plus ceil(remaining / filler) filler views.
	count := min(remaining/uint64(filler.Len())+2, maxPrealloc) //nolint:gosec // Len is positive

	return &Assembler{
		target:    target,
		filler:    filler,
		every:     every,
		chunks:    append(make([]Range, 0, count), src.Range()),
		remaining: remaining,
		next:      every,
	}, nil
}

// Step appends the next filler view. It returns false once nothing remains.
func (a *Assembler) Step() bool {
	if a.discarded || a.remaining == 0 {
		return false
	}

	size := uint64(a.filler.Len()) //nolint:gosec // Len is positive
	take := min(a.remaining, size)

	if take == size {
		a.chunks = append(a.chunks, a.filler.View(a.filler.Len()))
		a.full++
	} else {
		a.chunks = append(a.chunks, a.filler.View(int(take))) //nolint:gosec // take < filler length
		a.truncated++
	}

	a.remaining -= take
	a.generated += take

	return true
}

// Due reports whether a progress point has been crossed since the last call, and
// the percentage to report. It advances the threshold past the generated count.
func (a *Assembler) Due() (uint, bool) {
	if a.generated < a.next {
		return 0, false
	}

	a.next = (a.generated/a.every + 1) * a.every

	return a.Percent(), true
}

// Percent returns round((target - remaining) / target * 100).
func (a *Assembler) Percent() uint {
	done := float64(a.target - a.remaining)

	return uint(math.Round(done / float64(a.target) * 100))
}

// Run drives Step to completion. At every progress point it reports to onProgress
// and yields to sched; a yield error discards all partial state. A final
// notification of 100 is sent on completion.
func (a *Assembler) Run(ctx context.Context, sched Scheduler, onProgress ProgressFunc) error {
	if sched == nil {
		sched = GoScheduler{}
	}

	if err := ctx.Err(); err != nil {
		a.Discard()

		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	for a.Step() {
		percent, due := a.Due()
		if !due {
			continue
		}

		a.report(onProgress, percent)

		if err := sched.Yield(ctx); err != nil {
			a.Discard()

			return fmt.Errorf("%w: %w", ErrCanceled, err)
		}
	}

	if a.discarded {
		return ErrCanceled
	}

	if !a.reported || a.last < 100 {
		a.report(onProgress, 100)
	}

	return nil
}

func (a *Assembler) report(onProgress ProgressFunc, percent uint) {
	percent = min(max(percent, a.last), 100)

	a.last = percent
	a.reported = true

	if onProgress != nil {
		onProgress(percent)
	}
}

// Done reports whether the chunk list is complete.
func (a *Assembler) Done() bool {
	return !a.discarded && a.remaining == 0
}

// Remaining returns the filler bytes still to be appended.
func (a *Assembler) Remaining() uint64 {
	return a.remaining
}

// Counts returns how many full and truncated filler views were appended.
func (a *Assembler) Counts() (full, truncated int) {
	return a.full, a.truncated
}

// Chunks returns the finished chunk list: the original payload followed by filler views.
func (a *Assembler) Chunks() ([]Range, error) {
	if a.discarded {
		return nil, ErrCanceled
	}

	if a.remaining != 0 {
		return nil, errors.New("chunk list is incomplete")
	}

	return a.chunks, nil
}

// Discard drops the chunk list and the filler reference. The assembler cannot be resumed.
func (a *Assembler) Discard() {
	a.chunks = nil
	a.filler = nil
	a.discarded = true
}
