package padding

import (
	"context"
	"runtime"
)

// Scheduler is the host side of the cooperative yield contract. Yield is called at
// every progress point; returning an error abandons the run.
type Scheduler interface {
	Yield(ctx context.Context) error
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context) error

// Yield calls f(ctx).
func (f SchedulerFunc) Yield(ctx context.Context) error {
	return f(ctx)
}

// GoScheduler yields the processor to other goroutines and honors context cancellation.
type GoScheduler struct{}

// Yield calls runtime.Gosched and returns ctx.Err().
func (GoScheduler) Yield(ctx context.Context) error {
	runtime.Gosched()

	return ctx.Err()
}

// MemoryGuard is consulted before each large allocation. Every successful
// Reserve is paired with a Release of the same size once the memory is dropped.
type MemoryGuard interface {
	Reserve(n uint64) error
	Release(n uint64)
}

// ProgressFunc receives completion percentages in [0, 100], never decreasing.
type ProgressFunc func(percent uint)
