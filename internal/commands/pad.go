package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/inflate/internal/logic"
)

// NewPadCommand creates a new cobra command for the pad subcommand.
func NewPadCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pad [flags] [paths...]",
		Aliases: []string{"p"},
		Short:   "Pad files to the target size",
		Args:    cobra.ArbitraryArgs,
		PreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cmd.Context(), a.cfg, a.logger)
		},
	}

	flags := cmd.Flags()

	flags.BoolP("delete", "d", false, "Delete the original file after successful padding")
	flags.Bool("dry", false, "Show what would be padded without writing anything")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of the input onto the output")

	flags.String("prefix", "inflated_", "Prefix of the output file name")
	flags.String("suffix", "", "Suffix of the output file name")
	flags.String("media-type", "", "Media type to tag outputs with, defaults to the detected type")
	flags.String("require-type", "", "Only pad inputs of this media type, e.g. application/pdf")

	flags.String("warn-size", "2.5GiB", "Log a warning for targets above this size")
	flags.String("max-size", "", "Refuse allocations above this size")
	flags.Float64("memory-fraction", 0.8, "Share of available memory a single allocation may use, 0 to disable")
	flags.String("zero-buffer", "50MiB", "Filler buffer size in zero mode")
	flags.String("random-buffer", "10MiB", "Filler buffer size in random mode")
	flags.String("progress-every", "200MiB", "Amount of filler between progress reports")

	return cmd
}
