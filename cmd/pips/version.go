package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/pips"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pips",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pips version %s\n", strings.TrimSpace(pips.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
