package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/pips/internal/compiler"
)

// ValidateOptions contains the configuration for the validate command.
type ValidateOptions struct {
	InputPath string
	Quiet     bool

	In  io.Reader
	Out io.Writer
}

// Validate parses and checks a puzzle without solving it. It reports
// the board shape, region count and inventory size on success.
func Validate(opts ValidateOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	data, source, err := readPuzzle(opts.In, opts.InputPath)
	if err != nil {
		return err
	}

	puzzle, err := compiler.NewParser().Parse(data)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprintf(out, "Puzzle %s is valid.\n", source)
		fmt.Fprintf(out, "  cells:    %d\n", puzzle.Board.Size())
		fmt.Fprintf(out, "  regions:  %d\n", len(puzzle.Regions))
		fmt.Fprintf(out, "  dominoes: %d\n", puzzle.Inventory.Len())
	}
	return nil
}
