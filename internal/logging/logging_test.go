package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idelchi/inflate/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, err := logging.New(&buf, "warn", true)
	if err != nil {
		t.Fatalf("creating logger: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("target is large", "file", "a.pdf")

	out := buf.String()

	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}

	if !strings.Contains(out, "target is large") || !strings.Contains(out, "file=a.pdf") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNewRejectsLevel(t *testing.T) {
	t.Parallel()

	if _, err := logging.New(&bytes.Buffer{}, "loud", true); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
