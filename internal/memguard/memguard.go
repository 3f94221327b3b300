// Package memguard refuses allocations that the host is unlikely to satisfy.
package memguard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/mem"
)

var (
	// ErrInsufficientMemory is returned when a request exceeds the usable share of available memory.
	ErrInsufficientMemory = errors.New("insufficient memory")
	// ErrExceedsLimit is returned when a request exceeds the configured hard limit.
	ErrExceedsLimit = errors.New("allocation exceeds limit")
)

// Guard admits allocation requests against available system memory and keeps
// track of the bytes it has admitted but not yet had released.
// A Guard is safe for concurrent use and must not be copied after first use.
type Guard struct {
	// Fraction of currently available memory that all outstanding reservations may use.
	Fraction float64

	// Limit is an optional hard cap in bytes for a single request, 0 for none.
	Limit uint64

	available func() (uint64, error)

	mu       sync.Mutex
	reserved uint64
}

// New returns a Guard that admits requests up to fraction of available memory and at most limit bytes.
func New(fraction float64, limit uint64) *Guard {
	return &Guard{
		Fraction:  fraction,
		Limit:     limit,
		available: virtualAvailable,
	}
}

func virtualAvailable() (uint64, error) {
	stat, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("reading memory statistics: %w", err)
	}

	return stat.Available, nil
}

// Reserve admits n bytes or returns an error explaining why not.
// Admitted bytes count against later requests until they are released.
// When memory statistics are unavailable only the hard limit applies.
func (g *Guard) Reserve(n uint64) error {
	if g.Limit > 0 && n > g.Limit {
		return fmt.Errorf("%w: %d bytes requested, limit is %d", ErrExceedsLimit, n, g.Limit)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.available != nil && g.Fraction > 0 {
		if available, err := g.available(); err == nil {
			usable := uint64(float64(available) * min(g.Fraction, 1))

			if g.reserved > usable || n > usable-g.reserved {
				return fmt.Errorf("%w: %d bytes requested, %d already reserved, %d of %d available bytes usable",
					ErrInsufficientMemory, n, g.reserved, usable, available)
			}
		}
	}

	g.reserved += n

	return nil
}

// Release returns n previously reserved bytes.
func (g *Guard) Release(n uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.reserved -= min(n, g.reserved)
}

// Reserved returns the number of bytes currently admitted.
func (g *Guard) Reserved() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.reserved
}
