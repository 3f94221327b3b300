package padding

import (
	"fmt"
	"io"

	"github.com/tink-crypto/tink-go/v2/subtle/random"
)

// NewEntropy returns the default cryptographically strong byte source, backed by tink.
func NewEntropy() io.Reader {
	return tinkEntropy{}
}

// tinkEntropy adapts tink's random generator to io.Reader. tink panics when the
// system source fails; that is reported as ErrEntropySource instead.
type tinkEntropy struct{}

func (tinkEntropy) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	if len(p) > MaxEntropyRead {
		p = p[:MaxEntropyRead]
	}

	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%w: %v", ErrEntropySource, r)
		}
	}()

	return copy(p, random.GetRandomBytes(uint32(len(p)))), nil //nolint:gosec // len(p) <= MaxEntropyRead
}
