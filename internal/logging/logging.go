// Package logging builds the colored structured logger used across the tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a tint-backed slog.Logger writing to w at the given level
// ("debug", "info", "warn" or "error").
func New(w io.Writer, level string, noColor bool) (*slog.Logger, error) {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
		AddSource:  lvl == slog.LevelDebug,
		NoColor:    noColor,
	})

	return slog.New(handler), nil
}
