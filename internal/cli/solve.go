package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aretw0/pips/internal/compiler"
	"github.com/aretw0/pips/internal/presentation/grid"
	"github.com/aretw0/pips/internal/presentation/tui"
	"github.com/aretw0/pips/internal/solver"
	"github.com/aretw0/pips/pkg/domain"
)

// SolveOptions contains all the configuration for the solve command.
type SolveOptions struct {
	InputPath   string        // puzzle file; "" or "-" reads stdin
	Timeout     time.Duration // 0 means no limit
	Parallelism int
	JSON        bool // machine-readable output, mirrors the HTTP API
	NoColor     bool
	Quiet       bool // suppress the banner
	Verbose     bool

	// In and Out default to os.Stdin and os.Stdout. Tests inject buffers.
	In  io.Reader
	Out io.Writer
}

// solveReport is the JSON shape of a solve outcome. It matches the
// /api/solve response so scripts can consume either surface.
type solveReport struct {
	Success    bool               `json:"success"`
	Solution   string             `json:"solution,omitempty"`
	Placements []domain.Placement `json:"placements,omitempty"`
	Error      string             `json:"error,omitempty"`
	DurationMs int64              `json:"durationMs"`
	Nodes      int64              `json:"nodes"`
}

// Solve handles the 'solve' command logic: load, parse, search, report.
// A puzzle with no solution prints its message and returns
// domain.ErrNoSolution so the caller can map it to a non-zero exit
// without treating it as a fault.
func Solve(opts SolveOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := createLogger(opts.Verbose)

	data, source, err := readPuzzle(opts.In, opts.InputPath)
	if err != nil {
		return err
	}
	logger.Debug("puzzle loaded", "source", source, "bytes", len(data))

	puzzle, err := compiler.NewParser().Parse(data)
	if err != nil {
		return err
	}
	logger.Debug("puzzle parsed",
		"cells", puzzle.Board.Size(),
		"regions", len(puzzle.Regions),
		"dominoes", puzzle.Inventory.Len(),
	)

	if !opts.JSON && !opts.Quiet && useColor(out, opts.NoColor) {
		tui.PrintBanner()
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	ctx := context.Context(sigCtx)
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	eng := solver.New(
		solver.WithLogger(logger),
		solver.WithParallelism(opts.Parallelism),
	)
	sol, stats, err := eng.Solve(ctx, puzzle)

	if opts.JSON {
		return writeJSONReport(out, puzzle, sol, stats.Duration, stats.Nodes, err)
	}

	switch {
	case err == nil:
		if useColor(out, opts.NoColor) {
			fmt.Fprintln(out, colorReport(puzzle.Board, sol))
		} else {
			fmt.Fprintln(out, grid.Report(puzzle.Board, sol))
		}
		logger.Debug("solve finished", "duration", stats.Duration, "nodes", stats.Nodes)
		return nil
	case errors.Is(err, domain.ErrNoSolution):
		fmt.Fprintln(out, "No solution found.")
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("gave up after %s", opts.Timeout)
	case errors.Is(err, context.Canceled):
		if sig := sigCtx.Signal(); sig != nil {
			return fmt.Errorf("interrupted by %v", sig)
		}
		return err
	default:
		return err
	}
}

// colorReport is grid.Report with per-pip colors on the grid block.
func colorReport(board *domain.Board, sol *domain.Solution) string {
	var b strings.Builder
	b.WriteString("Solution found!\n\n")
	b.WriteString(tui.ColorizeGrid(board, sol))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Placed %d dominoes:", len(sol.Placements))
	for i, p := range sol.Placements {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, p)
	}
	return b.String()
}

func writeJSONReport(out io.Writer, puzzle *domain.Puzzle, sol *domain.Solution, elapsed time.Duration, nodes int64, solveErr error) error {
	report := solveReport{
		DurationMs: elapsed.Milliseconds(),
		Nodes:      nodes,
	}
	switch {
	case solveErr == nil:
		report.Success = true
		report.Solution = grid.Report(puzzle.Board, sol)
		report.Placements = sol.Placements
	case errors.Is(solveErr, domain.ErrNoSolution):
		report.Error = "No solution found for this puzzle"
	default:
		report.Error = solveErr.Error()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	return solveErr
}
