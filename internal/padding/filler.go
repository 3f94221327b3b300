package padding

import (
	"fmt"
	"io"
)

const (
	// DefaultZeroCapacity is the zero-mode filler size. Zero pages are cheap, so it is large.
	DefaultZeroCapacity = 50 * 1024 * 1024
	// DefaultRandomCapacity is the random-mode filler size.
	DefaultRandomCapacity = 10 * 1024 * 1024
	// MaxEntropyRead bounds a single request to the entropy source.
	MaxEntropyRead = 65536
)

// Filler is a fixed-size block of filler bytes. It is filled once on creation
// and is read-only afterwards; chunks reference it through Range views.
type Filler struct {
	mode Mode
	buf  []byte
}

// NewFiller allocates a filler of the given capacity. In ModeRandom the buffer is
// filled from entropy in requests of at most MaxEntropyRead bytes.
func NewFiller(mode Mode, capacity int, entropy io.Reader) (*Filler, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	if mode != ModeZero && mode != ModeRandom {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	buf, err := allocate("filler buffer", capacity)
	if err != nil {
		return nil, err
	}

	if mode == ModeRandom {
		if entropy == nil {
			return nil, fmt.Errorf("%w: no source configured", ErrEntropySource)
		}

		if err := fillRandom(buf, entropy); err != nil {
			return nil, err
		}
	}

	return &Filler{mode: mode, buf: buf}, nil
}

func fillRandom(buf []byte, entropy io.Reader) error {
	for off := 0; off < len(buf); off += MaxEntropyRead {
		end := min(off+MaxEntropyRead, len(buf))

		if _, err := io.ReadFull(entropy, buf[off:end]); err != nil {
			return fmt.Errorf("%w: filling bytes [%d, %d): %w", ErrEntropySource, off, end, err)
		}
	}

	return nil
}

// Mode returns the filler mode.
func (f *Filler) Mode() Mode {
	return f.mode
}

// Len returns the filler capacity in bytes.
func (f *Filler) Len() int {
	return len(f.buf)
}

// View returns a read-only view of the first n filler bytes, n clamped to [0, Len()].
func (f *Filler) View(n int) Range {
	n = min(max(n, 0), len(f.buf))

	return Range{data: f.buf[:n:n]}
}

// allocate makes a zeroed slice, turning the runtime's length panic into an error.
func allocate(what string, n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = &AllocationError{What: what, Bytes: uint64(max(n, 0)), Err: fmt.Errorf("%v", r)}
		}
	}()

	return make([]byte, n), nil
}
