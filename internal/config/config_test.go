package config_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idelchi/inflate/internal/config"
	"github.com/idelchi/inflate/internal/padding"
)

func valid() *config.Config {
	return &config.Config{
		Parallel: 2,
		LogLevel: "info",
		Mode:     "zero",
		Prefix:   "inflated_",
		Files:    []string{"a.pdf"},
	}
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"1", 1 << 20},
		{"0.5", 1 << 19},
		{" 100 ", 100 << 20},
		{"1MiB", 1 << 20},
		{"1MB", 1_000_000},
		{"1.5GiB", 3 << 29},
		{"4096 B", 4096},
		{"2.5GiB", 5 << 29},
	}

	for _, tc := range tests {
		got, err := config.ParseSize(tc.in)
		if err != nil {
			t.Errorf("ParseSize(%q) error: %v", tc.in, err)

			continue
		}

		if got != tc.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"-1", "lots", "NaN", "1e300"} {
		if _, err := config.ParseSize(in); err == nil {
			t.Errorf("ParseSize(%q) succeeded, want error", in)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Mode = "random"
	cfg.Grow = "10"
	cfg.WarnSize = "2.5GiB"
	cfg.ZeroBuffer = "64MiB"
	cfg.ProgressEvery = "100"

	if err := cfg.Validate(cfg); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	want := config.Parsed{
		Mode:          padding.ModeRandom,
		Grow:          10 << 20,
		Warn:          5 << 29,
		ZeroBuffer:    64 << 20,
		ProgressEvery: 100 << 20,
	}

	if cfg.Parsed != want {
		t.Errorf("Parsed = %+v, want %+v", cfg.Parsed, want)
	}
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{"size and grow", func(c *config.Config) { c.Size, c.Grow = "100", "10" }, "--size is mutually exclusive"},
		{"output replaces input", func(c *config.Config) { c.Prefix, c.Suffix = "", "" }, "--prefix and --suffix"},
		{"no files", func(c *config.Config) { c.Files = nil }, "Files"},
		{"no workers", func(c *config.Config) { c.Parallel = 0 }, "Parallel"},
		{"unknown mode", func(c *config.Config) { c.Mode = "ones" }, "--mode"},
		{"unknown level", func(c *config.Config) { c.LogLevel = "trace" }, "LogLevel"},
		{"zero size", func(c *config.Config) { c.Size = "0" }, "--size must be a positive size"},
		{"bad grow", func(c *config.Config) { c.Grow = "much" }, "--grow"},
		{"huge buffer", func(c *config.Config) { c.RandomBuffer = "2GiB" }, "--random-buffer"},
		{"fraction", func(c *config.Config) { c.MemoryFraction = 1.5 }, "MemoryFraction"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.modify(cfg)

			err := cfg.Validate(cfg)
			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}

			if !errors.Is(err, config.ErrUsage) {
				t.Errorf("Validate() = %q, want it to wrap %q", err, config.ErrUsage)
			}

			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestTarget(t *testing.T) {
	t.Parallel()

	cfg := valid()
	if got := cfg.Target(100); got != 100+config.DefaultGrow {
		t.Errorf("default Target(100) = %d", got)
	}

	cfg.Parsed.Grow = 1000
	if got := cfg.Target(100); got != 1100 {
		t.Errorf("grow Target(100) = %d, want 1100", got)
	}

	cfg.Parsed.Target = 5000
	if got := cfg.Target(100); got != 5000 {
		t.Errorf("absolute Target(100) = %d, want 5000", got)
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	cfg := valid()
	cfg.Suffix = ".bin"

	got := cfg.OutputPath(filepath.Join("docs", "report.pdf"))
	want := filepath.Join("docs", "inflated_report.pdf.bin")

	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}
