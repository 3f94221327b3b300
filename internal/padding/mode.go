package padding

import (
	"fmt"
	"strings"
)

// Mode selects the kind of filler bytes appended to a payload.
type Mode byte

const (
	// ModeZero pads with zero bytes.
	ModeZero Mode = iota
	// ModeRandom pads with high-entropy bytes.
	ModeRandom
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeZero:
		return "zero"
	case ModeRandom:
		return "random"
	default:
		return fmt.Sprintf("Mode(%d)", byte(m))
	}
}

// ParseMode converts "zero" or "random" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero", "zeros":
		return ModeZero, nil
	case "random", "entropy":
		return ModeRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
