package padding

import (
	"math"
	"strconv"
)

//nolint:gochecknoglobals
var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes renders n in base-1024 units with at most two decimals, e.g. "1.5 MB".
// Values beyond the terabyte range stay in TB.
func FormatBytes(n uint64) string {
	if n == 0 {
		return "0 Bytes"
	}

	value := float64(n)
	unit := 0

	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[unit]
}
