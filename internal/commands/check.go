package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/inflate/internal/logic"
)

// NewCheckCommand creates a new cobra command for the check subcommand.
func NewCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check [flags] [paths...]",
		Short:   "Validate that include/exclude patterns match files",
		Args:    cobra.ArbitraryArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunCheck(cmd.ErrOrStderr(), a.cfg)
		},
	}
}
