// Package cli implements the command logic behind the pips binary.
// Commands stay thin: flag parsing lives in cmd/pips, everything that
// reads input, drives the solver and formats output lives here so it
// can be tested with plain buffers.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/pips/internal/logging"
)

// createLogger configures the command logger. Verbose mode writes debug
// lines to stderr so stdout stays reserved for puzzle output.
func createLogger(verbose bool) *slog.Logger {
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// readPuzzle loads the raw puzzle document from a file, or from stdin
// when path is empty or "-". The second return value names the source
// for log lines and error messages.
func readPuzzle(in io.Reader, path string) ([]byte, string, error) {
	if path == "" || path == "-" {
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, "stdin", fmt.Errorf("reading stdin: %w", err)
		}
		return data, "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, path, fmt.Errorf("file '%s' not found", path)
		}
		return nil, path, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, path, nil
}

// useColor reports whether output to w should carry ANSI colors: only
// when the user did not opt out and w is the terminal itself.
func useColor(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
