package padding

import (
	"fmt"
	"os"
	"path/filepath"
)

// Source is the original payload. The package only ever reads from it.
type Source struct {
	name string
	data []byte
}

// NewSource wraps b without copying it. The caller must not modify b while it is in use.
func NewSource(b []byte) *Source {
	return &Source{data: b}
}

// ReadSource loads the file at path into a Source named after the file.
func ReadSource(path string) (*Source, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading source %q: %w", path, err)
	}

	return &Source{name: filepath.Base(path), data: data}, nil
}

// Name returns the base name of the file the source was read from, if any.
func (s *Source) Name() string {
	return s.name
}

// Len returns the payload length in bytes.
func (s *Source) Len() uint64 {
	return uint64(len(s.data))
}

// Head returns a copy of at most n leading bytes, e.g. for content sniffing.
func (s *Source) Head(n int) []byte {
	n = min(max(n, 0), len(s.data))

	head := make([]byte, n)
	copy(head, s.data[:n])

	return head
}

// Range returns a read-only view over the whole payload.
func (s *Source) Range() Range {
	return Range{data: s.data}
}
