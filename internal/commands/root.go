package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/inflate/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding (INFLATE_*), config file loading and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	// Settings are held by the global viper instance; start each command tree from scratch.
	viper.Reset()

	a := &app{cfg: cfg}

	root := cobraext.NewDefaultRootCommand(version, readConfigFile)

	root.Use = "inflate [flags] command [flags]"
	root.Short = "Pad files to a target size"
	root.Long = `A utility that grows files to a chosen size by appending zero or random filler bytes.
The original content is kept byte-for-byte; the filler is appended after it.`

	flags := root.PersistentFlags()

	flags.String("config", "", "Path to a config file (yaml, json or toml)")
	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.Bool("no-color", false, "Disable colored log output")

	flags.String("size", "", "Target size; a bare number is MiB, or e.g. 1.5GiB, 700MB")
	flags.String("grow", "", "Amount to add to each file instead of an absolute --size (default 50MiB)")
	flags.StringP("mode", "m", "zero", "Filler mode: zero or random")

	flags.StringSliceP("include", "i", nil, "Glob patterns of files to include when walking directories")
	flags.StringSliceP("exclude", "e", nil, "Glob patterns of files to exclude when walking directories")
	flags.String("include-from", "", "JSONC file with an array of include patterns")
	flags.String("exclude-from", "", "JSONC file with an array of exclude patterns")

	root.AddCommand(NewPadCommand(a), NewSizeCommand(a), NewCheckCommand(a))

	return root
}
