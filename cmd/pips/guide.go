package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/pips/internal/presentation/tui"
)

//go:embed guide.md
var guideDoc string

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the puzzle file format guide",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()

		render := tui.NewRenderer()
		out, err := render(guideDoc)
		if err != nil {
			// Fall back to the raw markdown rather than failing.
			out = guideDoc
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
