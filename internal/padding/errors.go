package padding

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when the target size does not exceed the original size.
	ErrInvalidTarget = errors.New("invalid target size")
	// ErrEntropySource is returned when the random source cannot produce filler bytes.
	ErrEntropySource = errors.New("entropy source failure")
	// ErrResourceExhaustion is returned when a filler or output allocation cannot be satisfied.
	ErrResourceExhaustion = errors.New("resource exhaustion")
	// ErrCanceled is returned when padding is abandoned at a yield point.
	ErrCanceled = errors.New("padding canceled")
	// ErrInvalidCapacity is returned for a non-positive filler capacity.
	ErrInvalidCapacity = errors.New("filler capacity must be positive")
	// ErrUnknownMode is returned for a filler mode other than zero or random.
	ErrUnknownMode = errors.New("unknown filler mode")
)

// TargetError describes a rejected target size.
type TargetError struct {
	Original uint64
	Target   uint64
}

func (e *TargetError) Error() string {
	if e.Target == 0 {
		return fmt.Sprintf("%v: target must be a positive number of bytes", ErrInvalidTarget)
	}

	return fmt.Sprintf("%v: target %d bytes must be larger than the original size of %d bytes",
		ErrInvalidTarget, e.Target, e.Original)
}

func (e *TargetError) Unwrap() error {
	return ErrInvalidTarget
}

// AllocationError reports the byte count of an allocation that could not be made.
type AllocationError struct {
	// What was being allocated ("filler buffer", "output").
	What string

	// Bytes is the size of the failed allocation.
	Bytes uint64

	// Err is the underlying cause, if any.
	Err error
}

func (e *AllocationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: allocating %s of %d bytes", ErrResourceExhaustion, e.What, e.Bytes)
	}

	return fmt.Sprintf("%v: allocating %s of %d bytes: %v", ErrResourceExhaustion, e.What, e.Bytes, e.Err)
}

func (e *AllocationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrResourceExhaustion}
	}

	return []error{ErrResourceExhaustion, e.Err}
}
