package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pips",
	Short: "Pips is a domino puzzle solver",
	Long: `Pips solves NYT-style domino tiling puzzles: cover every cell of a
board with dominoes so that each constraint region holds. Puzzles are
plain JSON or YAML files; see 'pips guide' for the format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}
