package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/inflate/internal/logic"
)

// NewSizeCommand creates a new cobra command for the size subcommand.
func NewSizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "size [flags] [paths...]",
		Aliases: []string{"ls"},
		Short:   "Show file sizes, media types and padding targets",
		Args:    cobra.ArbitraryArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunSize(cmd.OutOrStdout(), a.cfg)
		},
	}
}
