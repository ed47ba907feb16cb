package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pips/internal/cli"
	"github.com/aretw0/pips/pkg/domain"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [puzzle-file]",
	Short: "Solve a puzzle file",
	Long: `Reads a puzzle document (JSON or YAML), runs the backtracking search
and prints the solved grid with the list of placed dominoes. With no
file argument the puzzle is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.SolveOptions{}
		if len(args) > 0 {
			opts.InputPath = args[0]
		}
		opts.Timeout, _ = cmd.Flags().GetDuration("timeout")
		opts.Parallelism, _ = cmd.Flags().GetInt("parallel")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.NoColor, _ = cmd.Flags().GetBool("no-color")
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")

		if err := cli.Solve(opts); err != nil {
			// Exhaustion already printed its own message; everything
			// else is a fault worth a stderr line. Both exit non-zero.
			if !errors.Is(err, domain.ErrNoSolution) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Duration("timeout", 0, "Abort the search after this long (0 = no limit)")
	solveCmd.Flags().IntP("parallel", "p", 1, "Number of parallel search workers")
	solveCmd.Flags().Bool("json", false, "Emit the result as JSON")
	solveCmd.Flags().Bool("no-color", false, "Disable colored output")
	solveCmd.Flags().BoolP("quiet", "q", false, "Suppress the banner")

	// Make 'solve' the default when no subcommand is given.
	rootCmd.Run = solveCmd.Run
	rootCmd.Args = cobra.MaximumNArgs(1)
}
