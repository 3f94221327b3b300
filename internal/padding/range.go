package padding

import (
	"fmt"
	"io"
)

// Range is a read-only view over bytes owned by a Source or a Filler.
// Several ranges may alias the same backing storage.
type Range struct {
	data []byte
}

// Len returns the number of bytes in the view.
func (r Range) Len() int {
	return len(r.data)
}

// CopyTo copies the view into dst and returns the number of bytes copied.
func (r Range) CopyTo(dst []byte) int {
	return copy(dst, r.data)
}

// WriteTo writes the view to w.
func (r Range) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	if err != nil {
		return int64(n), fmt.Errorf("writing range: %w", err)
	}

	if n != len(r.data) {
		return int64(n), io.ErrShortWrite
	}

	return int64(n), nil
}
