// Package config holds the runtime configuration of the inflate tool.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/inflate/internal/padding"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// DefaultGrow is added to a file's size when neither a target nor a growth amount is given.
const DefaultGrow = 50 * 1024 * 1024

// Config contains the settings of a run, populated from flags, environment and config file.
type Config struct {
	// Common flags
	Show     bool
	Parallel int  `validate:"min=1"`
	Quiet    bool
	Delete   bool
	Dry      bool
	Stats    bool
	LogLevel string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	NoColor  bool   `mapstructure:"no-color"`

	// Target policy
	Size string `label:"--size" mapstructure:"size" validate:"exclusive=Grow"`
	Grow string `label:"--grow" mapstructure:"grow"`
	Mode string `validate:"required"`

	// Output
	Prefix             string
	Suffix             string
	MediaType          string `mapstructure:"media-type"`
	RequireType        string `mapstructure:"require-type"`
	PreserveTimestamps bool   `mapstructure:"preserve-timestamps"`

	// Resource policy
	WarnSize       string  `mapstructure:"warn-size"`
	MaxSize        string  `mapstructure:"max-size"`
	MemoryFraction float64 `mapstructure:"memory-fraction" validate:"gte=0,lte=1"`
	ZeroBuffer     string  `mapstructure:"zero-buffer"`
	RandomBuffer   string  `mapstructure:"random-buffer"`
	ProgressEvery  string  `mapstructure:"progress-every"`

	// Selection
	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from"`
	ExcludeFrom string `mapstructure:"exclude-from"`

	// Positional arguments
	Files []string `validate:"min=1"`

	// Parsed holds the values derived from the string settings by Validate.
	Parsed Parsed `mapstructure:"-"`
}

// Parsed is the numeric form of the size settings.
type Parsed struct {
	Mode          padding.Mode
	Target        uint64
	Grow          uint64
	Warn          uint64
	Max           uint64
	ZeroBuffer    int
	RandomBuffer  int
	ProgressEvery uint64
}

// Display reports whether the configuration should be shown instead of run.
func (c *Config) Display() bool {
	return c.Show
}

// Validate checks the struct constraints of config and parses all size settings
// of c into c.Parsed. All returned errors wrap ErrUsage.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	switch errs := validator.Validate(config); {
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	if err := c.parse(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return nil
}

// parse derives c.Parsed from the string settings.
func (c *Config) parse() error {
	if filepath.Base(c.OutputPath("file")) == "file" {
		return errors.New("--prefix and --suffix may not both be empty, outputs would replace their inputs")
	}

	mode, err := padding.ParseMode(c.Mode)
	if err != nil {
		return fmt.Errorf("parsing --mode: %w", err)
	}

	c.Parsed = Parsed{Mode: mode}

	sizes := []struct {
		flag  string
		value string
		dst   *uint64
	}{
		{"--size", c.Size, &c.Parsed.Target},
		{"--grow", c.Grow, &c.Parsed.Grow},
		{"--warn-size", c.WarnSize, &c.Parsed.Warn},
		{"--max-size", c.MaxSize, &c.Parsed.Max},
		{"--progress-every", c.ProgressEvery, &c.Parsed.ProgressEvery},
	}

	for _, size := range sizes {
		if *size.dst, err = ParseSize(size.value); err != nil {
			return fmt.Errorf("parsing %s: %w", size.flag, err)
		}
	}

	if c.Parsed.ZeroBuffer, err = parseBuffer("--zero-buffer", c.ZeroBuffer); err != nil {
		return err
	}

	if c.Parsed.RandomBuffer, err = parseBuffer("--random-buffer", c.RandomBuffer); err != nil {
		return err
	}

	if c.Size != "" && c.Parsed.Target == 0 {
		return errors.New("--size must be a positive size")
	}

	if c.Grow != "" && c.Parsed.Grow == 0 {
		return errors.New("--grow must be a positive size")
	}

	return nil
}

func parseBuffer(flag, value string) (int, error) {
	n, err := ParseSize(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", flag, err)
	}

	const maxBuffer = 1 << 30

	if n > maxBuffer {
		return 0, fmt.Errorf("%s: %d bytes exceeds the 1 GiB buffer limit", flag, n)
	}

	return int(n), nil //nolint:gosec // bounded above
}

// Target returns the target size for a file of the given size.
func (c *Config) Target(original uint64) uint64 {
	switch {
	case c.Parsed.Target > 0:
		return c.Parsed.Target
	case c.Parsed.Grow > 0:
		return original + c.Parsed.Grow
	default:
		return original + DefaultGrow
	}
}

// OutputPath returns where the padded copy of filename is written.
func (c *Config) OutputPath(filename string) string {
	return filepath.Join(filepath.Dir(filename), c.Prefix+filepath.Base(filename)+c.Suffix)
}
