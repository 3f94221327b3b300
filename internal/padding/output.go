package padding

import (
	"fmt"
	"io"
	"math"
)

// Output is the assembled payload plus filler, tagged with a media type.
type Output struct {
	data      []byte
	mediaType string

	guard    MemoryGuard
	reserved uint64
}

// Build concatenates chunks in order into a single Output. guard may be nil;
// otherwise the output's size stays reserved until Output.Release.
func Build(chunks []Range, mediaType string, guard MemoryGuard) (*Output, error) {
	var total uint64

	for _, chunk := range chunks {
		total += uint64(chunk.Len()) //nolint:gosec // lengths are non-negative
	}

	if total > math.MaxInt {
		return nil, &AllocationError{What: "output", Bytes: total}
	}

	if guard != nil {
		if err := guard.Reserve(total); err != nil {
			return nil, &AllocationError{What: "output", Bytes: total, Err: err}
		}
	}

	data, err := allocate("output", int(total))
	if err != nil {
		if guard != nil {
			guard.Release(total)
		}

		return nil, err
	}

	offset := 0
	for _, chunk := range chunks {
		offset += chunk.CopyTo(data[offset:])
	}

	out := &Output{data: data, mediaType: mediaType}
	if guard != nil {
		out.guard, out.reserved = guard, total
	}

	if uint64(offset) != total {
		out.Release()

		return nil, fmt.Errorf("assembled %d of %d bytes", offset, total)
	}

	return out, nil
}

// Len returns the output size in bytes.
func (o *Output) Len() uint64 {
	return uint64(len(o.data))
}

// MediaType returns the media type the output was tagged with.
func (o *Output) MediaType() string {
	return o.mediaType
}

// Bytes returns the assembled bytes. The Output owns them; callers should not modify them.
func (o *Output) Bytes() []byte {
	return o.data
}

// WriteTo writes the output to w.
func (o *Output) WriteTo(w io.Writer) (int64, error) {
	return Range{data: o.data}.WriteTo(w)
}

// Release drops the assembled bytes and returns their reservation to the guard
// Build was given. The Output is empty afterwards. Release is idempotent.
func (o *Output) Release() {
	if o.guard != nil {
		o.guard.Release(o.reserved)
	}

	o.data, o.guard, o.reserved = nil, nil, 0
}
