package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pips/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [puzzle-file]",
	Short: "Check a puzzle file for consistency",
	Long: `Parses the puzzle document and runs the structural checks without
solving: board shape, domino inventory and region membership. Exits
non-zero when the puzzle is malformed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ValidateOptions{}
		if len(args) > 0 {
			opts.InputPath = args[0]
		}
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")

		if err := cli.Validate(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolP("quiet", "q", false, "Suppress the summary, report via exit code only")
}
