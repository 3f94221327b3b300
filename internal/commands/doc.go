// Package commands provides the command-line interface for the inflate tool.
//
// It implements commands for:
//   - padding files to a target size
//   - reporting file sizes and targets
//   - checking include/exclude patterns
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/inflate/internal/config"
	"github.com/idelchi/inflate/internal/logging"
)

// app is the state shared by the commands of one invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

// readConfigFile merges the file named by --config into viper, below flags and environment.
func readConfigFile(_ *cobra.Command, _ []string) error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}

	return nil
}

// preRun is the PreRunE handler of the subcommands. It resolves positional args
// into cfg.Files, validates the configuration and sets up logging.
func (a *app) preRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		a.cfg.Files = []string{"."}
	} else {
		a.cfg.Files = args
	}

	if err := cobraext.Validate(a.cfg, a.cfg); err != nil {
		return err //nolint:wrapcheck
	}

	logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.NoColor)
	if err != nil {
		return err
	}

	a.logger = logger

	return nil
}
