package ports

import (
	"context"
	"time"

	"github.com/aretw0/pips/pkg/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	// Nodes is the number of candidate placements the search examined,
	// including the ones pruned before recursion.
	Nodes int64 `json:"nodes"`
	// Duration is wall-clock time spent searching.
	Duration time.Duration `json:"duration"`
}

// Solver runs the domino placement search over a puzzle.
//
// Solve returns the first solution found, or domain.ErrNoSolution when the
// search space is exhausted. The context cancels long searches; ctx.Err()
// is returned unwrapped so callers can tell a timeout from an unsolvable
// puzzle. Stats are populated on every outcome, including failures.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, Stats, error)
}

// PuzzleParser turns a raw puzzle definition into a validated domain
// puzzle. Implementations report malformed or inconsistent definitions
// as *domain.ConfigurationError.
type PuzzleParser interface {
	Parse(data []byte) (*domain.Puzzle, error)
}
