package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const mebibyte = 1024 * 1024

// ParseSize converts a size setting to bytes. A bare number is a count of MiB,
// anything else is parsed by go-humanize ("1.5GB", "700MiB", "4096 B").
// The empty string parses as 0.
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if mib, err := strconv.ParseFloat(s, 64); err == nil {
		if mib < 0 || math.IsNaN(mib) || math.IsInf(mib, 0) || mib*mebibyte > math.MaxUint64/2 {
			return 0, fmt.Errorf("size %q out of range", s)
		}

		return uint64(math.Round(mib * mebibyte)), nil
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("size %q: %w", s, err)
	}

	return n, nil
}
